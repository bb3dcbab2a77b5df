package handlers

import (
	"net/http"
	"strconv"

	"regulatory-consolidation/models"
	"regulatory-consolidation/services"

	"github.com/gin-gonic/gin"
)

type VersionHandler struct {
	versionService services.VersionService
	diffService    services.DiffService
}

func NewVersionHandler(versionService services.VersionService, diffService services.DiffService) *VersionHandler {
	return &VersionHandler{
		versionService: versionService,
		diffService:    diffService,
	}
}

func (h *VersionHandler) GetVersions(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	versions, err := h.versionService.GetVersionsForArticle(uint(articleID))
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"versions": versions})
}

func (h *VersionHandler) CreateVersion(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	var req models.CreateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionService.CreateVersion(uint(articleID), req)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, version)
}

func (h *VersionHandler) UpdateVersion(c *gin.Context) {
	versionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid version ID"})
		return
	}

	var req models.UpdateVersionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	version, err := h.versionService.UpdateVersion(uint(versionID), req)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, version)
}

func (h *VersionHandler) DeleteVersion(c *gin.Context) {
	versionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid version ID"})
		return
	}

	if err := h.versionService.DeleteVersionWithRepair(uint(versionID)); err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Version deleted"})
}

func (h *VersionHandler) GetHistory(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	history, err := h.diffService.GetHistory(uint(articleID))
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"history": history})
}

// GetDiff compares two versions; the caller designates the before side.
func (h *VersionHandler) GetDiff(c *gin.Context) {
	beforeID, err := strconv.ParseUint(c.Query("before"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid before version ID"})
		return
	}
	afterID, err := strconv.ParseUint(c.Query("after"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid after version ID"})
		return
	}

	result, err := h.diffService.Diff(uint(beforeID), uint(afterID))
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
