package handlers

import (
	"net/http"
	"strconv"
	"time"

	"regulatory-consolidation/helper"
	"regulatory-consolidation/models"
	"regulatory-consolidation/services"

	"github.com/gin-gonic/gin"
)

var httpHelper = &helper.HTTPHelper{}

type TexteHandler struct {
	texteService         services.TexteService
	consolidationService services.ConsolidationService
}

func NewTexteHandler(texteService services.TexteService, consolidationService services.ConsolidationService) *TexteHandler {
	return &TexteHandler{
		texteService:         texteService,
		consolidationService: consolidationService,
	}
}

func (h *TexteHandler) CreateTexte(c *gin.Context) {
	var req models.CreateTexteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	texte, err := h.texteService.CreateTexte(req)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, texte)
}

func (h *TexteHandler) GetTextes(c *gin.Context) {
	var params models.TexteListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 10
	}

	textes, total, err := h.texteService.GetTextes(params)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"textes":     textes,
		"pagination": httpHelper.GeneratePaging(c, 0, 0, params.Limit, params.Page, int(total)),
	})
}

func (h *TexteHandler) GetTexte(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid text ID"})
		return
	}

	texte, err := h.texteService.GetTexte(uint(id))
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, texte)
}

func (h *TexteHandler) CreateArticle(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid text ID"})
		return
	}

	var req models.CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	article, err := h.texteService.CreateArticle(uint(id), req)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, article)
}

func (h *TexteHandler) GetArticles(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid text ID"})
		return
	}

	articles, err := h.texteService.GetArticles(uint(id))
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetConsolidatedText resolves the text as it stood on the requested date;
// the date defaults to today.
func (h *TexteHandler) GetConsolidatedText(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid text ID"})
		return
	}

	date := time.Now()
	if raw := c.Query("date"); raw != "" {
		date, err = services.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	entries, err := h.consolidationService.ResolveConsolidatedText(c.Request.Context(), uint(id), date)
	if err != nil {
		c.JSON(httpHelper.GetStatusCode(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"texte_id": uint(id),
		"date":     date.Format("2006-01-02"),
		"articles": entries,
	})
}
