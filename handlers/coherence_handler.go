package handlers

import (
	"net/http"
	"strconv"

	"regulatory-consolidation/models"
	"regulatory-consolidation/services"

	"github.com/gin-gonic/gin"
)

type CoherenceHandler struct {
	coherenceService services.CoherenceService
}

func NewCoherenceHandler(coherenceService services.CoherenceService) *CoherenceHandler {
	return &CoherenceHandler{coherenceService: coherenceService}
}

func (h *CoherenceHandler) ListFaults(c *gin.Context) {
	faults, err := h.coherenceService.ScanTimelineFaults(c.Request.Context())
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"faults": faults})
}

func (h *CoherenceHandler) ReviewFault(c *gin.Context) {
	fingerprint := c.Param("fingerprint")

	var req models.ReviewFaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	username, _ := c.Get("username")
	actor, _ := username.(string)

	review, err := h.coherenceService.ReviewFault(fingerprint, actor, req.Note)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, review)
}

func (h *CoherenceHandler) DeactivateSuperseded(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	username, _ := c.Get("username")
	actor, _ := username.(string)

	version, err := h.coherenceService.DeactivateSupersededVersion(uint(articleID), actor)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, version)
}
