package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"artisan-market-be/internal/artisan"
	"artisan-market-be/internal/auth"
	"artisan-market-be/internal/config"
	"artisan-market-be/internal/db"
	"artisan-market-be/internal/graph"
	"artisan-market-be/internal/logger"
	"artisan-market-be/internal/middleware"
	"artisan-market-be/internal/product"
	"artisan-market-be/internal/transport"
	"artisan-market-be/internal/user"

	gqlhandler "github.com/graphql-go/handler"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	issuer := auth.NewTokenIssuer(cfg.JWTSecret)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo, issuer)

	artisanRepo := artisan.NewRepository(database)
	artisanSvc := artisan.NewService(artisanRepo)

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	resolver := &graph.Resolver{
		UserSvc:           userSvc,
		ArtisanSvc:        artisanSvc,
		ProductSvc:        productSvc,
		RequireAuthWrites: cfg.RequireAuthWrites,
	}

	schema, err := graph.NewSchema(resolver)
	if err != nil {
		log.Fatalf("Failed to build GraphQL schema: %v", err)
	}

	gqlHandler := transport.NewGraphQLHandler(schema)
	router := setupRouter(cfg, issuer, gqlHandler)

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: router,
	}

	go func() {
		logger.L().Info("🚀 GraphQL server running",
			zap.String("port", cfg.AppPort),
			zap.String("endpoint", "/graphql"),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("shutdown failed", zap.Error(err))
	}

	snap := gqlHandler.Stats()
	logger.L().Info("server stopped",
		zap.Uint64("graphql_requests", snap.Requests),
		zap.Uint64("graphql_errors", snap.Errors),
	)
}

func setupRouter(cfg *config.Config, issuer *auth.TokenIssuer, gql *transport.GraphQLHandler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/graphql", gql)
	mux.HandleFunc("/health", transport.HealthHandler)
	mux.Handle("/", gqlhandler.New(&gqlhandler.Config{
		Schema:   gql.Schema(),
		Pretty:   true,
		GraphiQL: true,
	}))

	var h http.Handler = mux
	h = middleware.RateLimitMiddleware(h)
	h = middleware.LoggingMiddleware(h)
	h = middleware.AuthMiddleware(issuer)(h)
	h = logger.RequestIDMiddleware(h)

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{cfg.FrontendOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	})
	return c.Handler(h)
}
