package router

import (
	"net/http"

	"github.com/LucasLevingston/AneisDePoder/internal/handler"
	"github.com/LucasLevingston/AneisDePoder/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// New builds the gin engine with all routes and middleware wired. Kept out
// of main so handler tests can run requests against the real engine.
func New() *gin.Engine {
	r := gin.Default()

	// The front end is served from another origin.
	r.Use(cors.Default())
	r.Use(middleware.ErrorTranslator())

	// Swagger route
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// Authentication happens inside the ring handlers, not as group
	// middleware: update and delete confirm the ring exists before looking
	// at credentials, and get-one takes no credentials at all.
	rings := r.Group("/rings")
	{
		rings.POST("", handler.CreateRing)
		rings.GET("", handler.GetAllRings)
		rings.GET("/:ringId", handler.GetRing)
		rings.PUT("/:ringId", handler.UpdateRing)
		rings.DELETE("/:ringId", handler.DeleteRing)
	}

	users := r.Group("/users")
	{
		users.POST("", handler.RegisterUser)
		users.POST("/login", handler.LoginUser)
		users.DELETE("/:userId", handler.DeleteUser)
	}

	return r
}
