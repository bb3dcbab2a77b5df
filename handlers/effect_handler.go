package handlers

import (
	"net/http"
	"strconv"

	"regulatory-consolidation/models"
	"regulatory-consolidation/services"

	"github.com/gin-gonic/gin"
)

type EffectHandler struct {
	effectService services.EffectService
}

func NewEffectHandler(effectService services.EffectService) *EffectHandler {
	return &EffectHandler{effectService: effectService}
}

func (h *EffectHandler) CreateEffect(c *gin.Context) {
	var req models.CreateEffectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	effect, err := h.effectService.CreateEffect(req)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, effect)
}

// GetArticleEffects lists both directions for one article: effects it
// produces and repeals it receives.
func (h *EffectHandler) GetArticleEffects(c *gin.Context) {
	articleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid article ID"})
		return
	}

	produced, err := h.effectService.GetEffectsFromArticle(uint(articleID))
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	received, err := h.effectService.GetEffectsTargetingArticle(uint(articleID))
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"produced": produced,
		"received": received,
	})
}

func (h *EffectHandler) EndEffect(c *gin.Context) {
	effectID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid effect ID"})
		return
	}

	var req models.EndEffectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	endDate, err := services.ParseDate(req.DateFinEffet)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	effect, err := h.effectService.EndEffect(uint(effectID), endDate)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, effect)
}
