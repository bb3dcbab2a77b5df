package main

import (
	"log"
	"net/http"
	"os"

	"regulatory-consolidation/config"
	"regulatory-consolidation/handlers"
	"regulatory-consolidation/middleware"
	"regulatory-consolidation/repositories"
	"regulatory-consolidation/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Initialize repositories
	texteRepo := repositories.NewTextRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	versionRepo := repositories.NewVersionRepository(db)
	effectRepo := repositories.NewEffectRepository(db)
	auditRepo := repositories.NewAuditRepository(db)

	// Initialize services
	texteService := services.NewTexteService(texteRepo, articleRepo)
	versionService := services.NewVersionService(versionRepo, articleRepo)
	effectService := services.NewEffectService(effectRepo, articleRepo, texteRepo)
	consolidationService := services.NewConsolidationService(texteRepo, articleRepo, versionService, effectService)
	diffService := services.NewDiffService(versionRepo, articleRepo)
	coherenceService := services.NewCoherenceService(versionRepo, effectRepo, articleRepo, texteRepo, auditRepo)

	// Initialize handlers
	texteHandler := handlers.NewTexteHandler(texteService, consolidationService)
	versionHandler := handlers.NewVersionHandler(versionService, diffService)
	effectHandler := handlers.NewEffectHandler(effectService)
	coherenceHandler := handlers.NewCoherenceHandler(coherenceService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			// Regulatory texts and their articles
			textes := protected.Group("/textes")
			{
				textes.POST("", texteHandler.CreateTexte)
				textes.GET("", texteHandler.GetTextes)
				textes.GET("/:id", texteHandler.GetTexte)
				textes.POST("/:id/articles", texteHandler.CreateArticle)
				textes.GET("/:id/articles", texteHandler.GetArticles)
				textes.GET("/:id/consolidated", texteHandler.GetConsolidatedText)
			}

			// Article timelines, history, effects
			articles := protected.Group("/articles")
			{
				articles.GET("/:id/versions", versionHandler.GetVersions)
				articles.POST("/:id/versions", versionHandler.CreateVersion)
				articles.GET("/:id/history", versionHandler.GetHistory)
				articles.GET("/:id/effects", effectHandler.GetArticleEffects)
			}

			// Versions
			versions := protected.Group("/versions")
			{
				versions.PUT("/:id", versionHandler.UpdateVersion)
				versions.DELETE("/:id", versionHandler.DeleteVersion)
			}

			// Diff
			protected.GET("/diff", versionHandler.GetDiff)

			// Legal effects
			effects := protected.Group("/effects")
			{
				effects.POST("", effectHandler.CreateEffect)
				effects.PUT("/:id/end", effectHandler.EndEffect)
			}

			// Coherence (advisory, fix operations operator-only)
			coherence := protected.Group("/coherence")
			{
				coherence.GET("/faults", coherenceHandler.ListFaults)
				coherence.POST("/faults/:fingerprint/review",
					middleware.RequireRole("editor", "admin"), coherenceHandler.ReviewFault)
				coherence.POST("/articles/:id/deactivate-superseded",
					middleware.RequireRole("admin"), coherenceHandler.DeactivateSuperseded)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
