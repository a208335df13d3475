package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"storefront/internal/cache"
	"storefront/internal/config"
	"storefront/internal/database"
	"storefront/internal/middleware"
	"storefront/internal/modules/auth"
	jwtsvc "storefront/internal/pkg/jwt"
	"storefront/internal/repository"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file, relying on process environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	store, err := cache.Connect(cfg.RedisURL)
	if err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)

	accessSigner := jwtsvc.New(cfg.AccessTokenSecret, cfg.AccessTokenTTL)
	refreshSigner := jwtsvc.New(cfg.RefreshTokenSecret, cfg.RefreshTokenTTL)

	tokenService := auth.NewTokenService(userRepo, store, accessSigner, refreshSigner)
	authService := auth.NewService(userRepo, tokenService)
	cookies := auth.NewCookieWriter(cfg.CookieSecure, cfg.CookieSameSite, cfg.CookiePath, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)
	authHandler := auth.NewHandler(authService, cookies)

	r := gin.Default()

	if len(cfg.CORSOrigins) > 0 {
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORSOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
			ExposeHeaders:    []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           12 * time.Hour,
		}))
	}

	authGroup := r.Group("/api/auth")
	{
		authHandler.RegisterPublicRoutes(authGroup)

		protected := authGroup.Group("/")
		protected.Use(middleware.Protect(accessSigner, userRepo))
		{
			authHandler.RegisterProtectedRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
