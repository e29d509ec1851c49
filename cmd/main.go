package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "launchbridge/docs"
	"launchbridge/pkg/cache"
	"launchbridge/pkg/credibility"
	"launchbridge/pkg/db"
	"launchbridge/pkg/discovery"
	"launchbridge/pkg/enterprises"
	"launchbridge/pkg/feedback"
	"launchbridge/pkg/launches"
	"launchbridge/pkg/reviews"
	"launchbridge/pkg/sendemail"
	"launchbridge/pkg/startups"
)

// @title           LaunchBridge API
// @version         1.0
// @description     REST API for startup credibility scoring and enterprise discovery

// @BasePath  /

// @schemes   http https

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	pool := db.Connect()
	defer pool.Close()

	var cacheClient *cache.Client
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		cacheClient = cache.New(addr, os.Getenv("REDIS_PASSWORD"), 0)
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := cacheClient.Ping(ctx); err != nil {
			log.Printf("Redis unavailable, running without score cache: %v", err)
			cacheClient = nil
		}
		cancel()
		defer cacheClient.Close()
	}

	emailService := sendemail.NewEmailService()

	startupsRepo := startups.NewPostgresStartupRepository(pool)
	startupsService := startups.NewStartupService(startupsRepo)
	startupsHandler := startups.NewStartupHandler(startupsService)

	signalRepo := credibility.NewPostgresSignalRepository(pool)
	scoreService := credibility.NewScoreService(signalRepo, startupsRepo, cacheClient)
	scoreHandler := credibility.NewScoreHandler(scoreService)

	launchesRepo := launches.NewPostgresLaunchRepository(pool)
	launchesService := launches.NewLaunchService(launchesRepo, scoreService)
	launchesHandler := launches.NewLaunchHandler(launchesService)

	reviewsRepo := reviews.NewPostgresReviewRepository(pool)
	reviewsService := reviews.NewReviewService(reviewsRepo, scoreService)
	reviewsHandler := reviews.NewReviewHandler(reviewsService)

	feedbackRepo := feedback.NewPostgresFeedbackRepository(pool)
	feedbackService := feedback.NewFeedbackService(feedbackRepo, scoreService, startupsRepo, emailService)
	feedbackHandler := feedback.NewFeedbackHandler(feedbackService)

	profilesRepo := enterprises.NewPostgresProfileRepository(pool)
	profilesService := enterprises.NewProfileService(profilesRepo)
	profilesHandler := enterprises.NewProfileHandler(profilesService)

	// Discovery setup
	pipeline := discovery.NewPipeline(startupsRepo, profilesRepo, discovery.NewDefaultMatcher())
	sessionHandler := discovery.NewSessionHandler(pipeline, debounceWindowFromEnv())
	discoveryHandler := discovery.NewHandler(pipeline, sessionHandler)

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	// CORS configuration
	allowedOrigins := os.Getenv("CORS_ALLOWED_ORIGINS")
	var origins []string
	if allowedOrigins == "" {
		origins = []string{"*"}
	} else {
		parts := strings.Split(allowedOrigins, ",")
		origins = make([]string, 0, len(parts))
		for _, p := range parts {
			o := strings.TrimSpace(p)
			if o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) == 0 {
			origins = []string{"*"}
		}
	}

	allowCreds := strings.EqualFold(os.Getenv("CORS_ALLOW_CREDENTIALS"), "true")

	corsCfg := cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCreds,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsCfg))

	startupsHandler.RegisterRoutes(router)
	scoreHandler.RegisterRoutes(router)
	launchesHandler.RegisterRoutes(router)
	reviewsHandler.RegisterRoutes(router)
	feedbackHandler.RegisterRoutes(router)
	profilesHandler.RegisterRoutes(router)
	discoveryHandler.RegisterRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	settings := loadTLSSettingsFromEnv()
	if err := settings.Validate(); err != nil {
		log.Fatalf("TLS settings invalid: %v", err)
	}

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		if settings.EnableTLS {
			port = "8443"
		} else {
			port = "8080"
		}
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		if !settings.EnableTLS {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Fatalf("listen (HTTP): %v", err)
			}
			return
		}

		srv.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
		if err := srv.ListenAndServeTLS(settings.CertPath, settings.KeyPath); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen (TLS): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exiting")
}

func debounceWindowFromEnv() time.Duration {
	raw := os.Getenv("DISCOVERY_DEBOUNCE_WINDOW")
	if raw == "" {
		return discovery.DefaultDebounceWindow
	}
	window, err := time.ParseDuration(raw)
	if err != nil || window <= 0 {
		log.Printf("invalid DISCOVERY_DEBOUNCE_WINDOW %q, using default", raw)
		return discovery.DefaultDebounceWindow
	}
	return window
}

// TLSSettings holds environment-driven TLS configuration.
type TLSSettings struct {
	EnableTLS bool
	CertPath  string
	KeyPath   string
	Env       string // "production" or "development"
}

// loadTLSSettingsFromEnv reads TLS settings from environment variables.
// Vars:
// - ENABLE_TLS: true/false
// - TLS_CERT_PATH / TLS_KEY_PATH: file paths to PEM cert/key
// - APP_ENV or ENV: "production" or "development"
func loadTLSSettingsFromEnv() TLSSettings {
	env := strings.ToLower(strings.TrimSpace(os.Getenv("APP_ENV")))
	if env == "" {
		env = strings.ToLower(strings.TrimSpace(os.Getenv("ENV")))
	}
	if env == "" {
		env = "development"
	}

	enableTLS := strings.EqualFold(os.Getenv("ENABLE_TLS"), "true")
	// Enforce TLS in production
	if env == "production" {
		enableTLS = true
	}

	return TLSSettings{
		EnableTLS: enableTLS,
		CertPath:  os.Getenv("TLS_CERT_PATH"),
		KeyPath:   os.Getenv("TLS_KEY_PATH"),
		Env:       env,
	}
}

// Validate ensures TLS settings are safe for the selected environment.
func (s TLSSettings) Validate() error {
	if s.Env == "production" && s.EnableTLS {
		if s.CertPath == "" || s.KeyPath == "" {
			return fmt.Errorf("TLS_CERT_PATH and TLS_KEY_PATH are required in production")
		}
	}
	if s.EnableTLS && (s.CertPath == "" || s.KeyPath == "") {
		return fmt.Errorf("ENABLE_TLS requires TLS_CERT_PATH and TLS_KEY_PATH")
	}
	return nil
}
