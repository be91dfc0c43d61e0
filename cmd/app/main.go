package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"findflow/cmd/fx/aifx"
	"findflow/cmd/fx/authfx"
	"findflow/cmd/fx/categoryfx"
	"findflow/cmd/fx/dbfx"
	"findflow/cmd/fx/dialoguefx"
	"findflow/cmd/fx/memcachefx"
	"findflow/cmd/fx/recommendfx"
	"findflow/internal/api/controllers"
	"findflow/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		dbfx.Module,
		aifx.Module,
		memcachefx.Module,
		categoryfx.Module,
		recommendfx.Module,
		dialoguefx.Module,
		authfx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	dialogueController *controllers.DialogueController,
	categoryController *controllers.CategoryController,
	authController *controllers.AuthController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, dialogueController, categoryController, authController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	dialogueController *controllers.DialogueController,
	categoryController *controllers.CategoryController,
	authController *controllers.AuthController) {

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/ask", dialogueController.AskHandler)
	r.POST("/detect_category", categoryController.DetectCategoryHandler)
	r.GET("/categories", categoryController.ListCategoriesHandler)

	r.POST("/auth/token", authController.TokenHandler)

	admin := r.Group("/admin")
	admin.Use(middleware.JWTAuthMiddleware(), middleware.RoleMiddleware("admin"))
	admin.POST("/categories", categoryController.UpsertCategoryHandler)
	admin.PUT("/categories/:name", categoryController.UpsertCategoryHandler)
}
