package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	_ "github.com/danielgtaylor/huma/v2/formats/cbor"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/LucasManfrin/Orcamentos/internal/config"
	"github.com/LucasManfrin/Orcamentos/internal/http/v1/routes"
	"github.com/LucasManfrin/Orcamentos/internal/platform/auth"
	"github.com/LucasManfrin/Orcamentos/internal/platform/firebase"
	applog "github.com/LucasManfrin/Orcamentos/internal/platform/logging"
	appmiddleware "github.com/LucasManfrin/Orcamentos/internal/platform/middleware"
	"github.com/LucasManfrin/Orcamentos/internal/platform/respond"
	"github.com/LucasManfrin/Orcamentos/internal/service/identity"
	"github.com/LucasManfrin/Orcamentos/internal/service/profile"
	"github.com/LucasManfrin/Orcamentos/internal/service/quote"
	"github.com/LucasManfrin/Orcamentos/internal/service/views"
)

// Version can be overridden at build time: -ldflags "-X main.Version=1.2.3"
var Version = "dev"

func main() {
	defer func() {
		if err := applog.Sync(); err != nil {
			applog.LogError(context.Background(), "logger sync error", err)
		}
	}()
	if err := applog.Err(); err != nil {
		applog.LogError(context.Background(), "logger init error", err)
	}

	cfg := config.Load()

	initCtx, cancelInit := context.WithTimeout(context.Background(), 30*time.Second)
	clients, err := firebase.InitializeClients(initCtx, firebase.Config{
		ProjectID:                    cfg.FirebaseProjectID,
		GoogleApplicationCredentials: cfg.GoogleApplicationCredentials,
	})
	cancelInit()
	if err != nil {
		applog.LogError(context.Background(), "firebase initialization failed", err)
		os.Exit(1)
	}
	defer func() {
		if err := clients.Close(); err != nil {
			applog.LogError(context.Background(), "firestore close error", err)
		}
	}()

	redisClient := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer func() {
		if err := redisClient.Close(); err != nil {
			applog.LogError(context.Background(), "redis close error", err)
		}
	}()

	profileService := profile.NewFirestoreStore(clients.Firestore)
	quoteService := quote.NewFirestoreStore(clients.Firestore)
	viewService := views.NewService(quoteService, views.NewRedisGuard(redisClient))

	signInClient := identity.NewClient(&http.Client{Timeout: 10 * time.Second}, cfg.FirebaseWebAPIKey)
	identityService := identity.NewGateway(clients.Auth, signInClient, profileService)

	verifier := auth.NewFirebaseVerifier(clients.Auth)

	router := chi.NewRouter()
	router.NotFound(respond.NotFoundHandler())
	router.MethodNotAllowed(respond.MethodNotAllowedHandler())

	// Base middleware stack
	router.Use(
		appmiddleware.Security("/api-docs"),
		appmiddleware.Vary(),
		appmiddleware.CORS(),
		appmiddleware.RequestID(),
		// RealIP extracts client IP from X-Real-IP or X-Forwarded-For headers.
		// SECURITY: Only use behind a trusted reverse proxy (e.g., Cloud Run, nginx).
		// Without a trusted proxy, clients can spoof their IP address.
		chimiddleware.RealIP,
		// RequestSize limits request body size to prevent memory exhaustion from large payloads.
		chimiddleware.RequestSize(1<<20), // 1 MB limit
		applog.RequestLogger(),
		applog.AccessLogger(),
		respond.Recoverer(),
	)

	// Bare liveness probe for load balancers, outside the versioned API.
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		env := respond.NewSuccessEnvelope(applog.TraceIDFromContext(r.Context()),
			map[string]string{"status": "ok"})
		if err := respond.Write(w, http.StatusOK, env); err != nil {
			applog.LogError(r.Context(), "failed to render health response", err)
		}
	})

	humaCfg := huma.DefaultConfig("OrçaFácil API", Version)
	humaCfg.DocsPath = "/api-docs"
	humaCfg.Servers = []*huma.Server{{URL: "/v1"}}

	var api huma.API
	router.Route("/v1", func(r chi.Router) {
		api = humachi.New(r, humaCfg)
	})

	// Add CBOR content type to OpenAPI requests and responses
	api.OpenAPI().OnAddOperation = append(api.OpenAPI().OnAddOperation,
		func(_ *huma.OpenAPI, op *huma.Operation) {
			if op.RequestBody != nil && op.RequestBody.Content != nil {
				if jsonContent, ok := op.RequestBody.Content["application/json"]; ok {
					op.RequestBody.Content["application/cbor"] = jsonContent
				}
			}
			for _, resp := range op.Responses {
				if resp.Content == nil {
					continue
				}
				if jsonContent, ok := resp.Content["application/json"]; ok {
					resp.Content["application/cbor"] = jsonContent
				}
			}
		},
	)

	// Register routes
	routes.Register(api, verifier, identityService, profileService, quoteService, viewService, cfg.BaseURL)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Port),
		Handler:           router,
		ReadTimeout:       5 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    64 << 10, // 64 KB
	}

	listenErr := make(chan error, 1)
	go func() {
		applog.LogInfo(context.Background(), "server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			listenErr <- err
		}
	}()

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-listenErr:
		applog.LogError(context.Background(), "listen failed", err, zap.String("addr", srv.Addr))
		os.Exit(1)
	case <-stop:
		applog.LogInfo(context.Background(), "shutdown signal received")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		applog.LogError(ctx, "server shutdown error", err)
	}
	applog.LogInfo(context.Background(), "server exited")
}
