package main

import (
	"context"
	"embed"
	"errors"
	"html/template"
	"io"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/redis/go-redis/v9"
	"wirralclean/internal/config"
	"wirralclean/internal/handlers"
	"wirralclean/internal/models"
	"wirralclean/internal/services"
)

//go:embed all:templates
var templateFS embed.FS

//go:embed all:assets
var assetsFS embed.FS

//go:embed all:content
var contentFS embed.FS

func main() {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)

	// 1. Logging
	logOut := io.Discard
	if cfg.LogFile != "" {
		lf, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o660)
		if err != nil {
			logger.Fatalf("Failed to open log file: %v", err)
		}
		defer lf.Close()
		logOut = lf
	}
	defer logger.Init("wirralclean", cfg.LogVerbose, false, logOut).Close()
	if cfg.IsProduction() && !cfg.SecureCookies {
		logger.Warning("Running in release mode without SECURE_COOKIES")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 2. Static content
	content, err := loadContent(cfg.ContentFile)
	if err != nil {
		logger.Fatalf("Failed to load content: %v", err)
	}
	if err := services.ValidateSegments(models.Segments()); err != nil {
		logger.Fatalf("Invalid wheel catalog: %v", err)
	}

	// 3. Session store
	store, err := newSessionStore(ctx, cfg)
	if err != nil {
		logger.Fatalf("Failed to set up sessions: %v", err)
	}

	// 4. Services
	relay := services.NewRelay(cfg.RelayURL, cfg.RelayTimeout)
	calculator := services.NewCalculatorService(store, relay)
	wheel := services.NewWheelService(store, relay, services.DefaultRNG())

	// 5. Templates from the embedded filesystem.
	templates, err := template.New("site").Funcs(handlers.TemplateFuncs()).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		logger.Fatalf("Failed to parse templates: %v", err)
	}

	httpHandler := handlers.NewHTTPHandler(content, calculator, wheel, relay, templates)

	// 6. Router
	r := gin.Default()
	r.Use(handlers.CORS(cfg.CORSAllowedOrigins))

	assetsSubFS, err := fs.Sub(assetsFS, "assets")
	if err != nil {
		logger.Fatalf("Failed to create assets sub-filesystem: %v", err)
	}
	r.StaticFS("/assets", http.FS(assetsSubFS))

	httpHandler.RegisterPublicRoutes(r)

	visitorRoutes := r.Group("/")
	visitorRoutes.Use(handlers.VisitorMiddleware(cfg.SessionTTL, cfg.SecureCookies))
	httpHandler.RegisterVisitorRoutes(visitorRoutes)

	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Infof("Server starting on http://localhost%s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to run server: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server shutdown: %v", err)
	}
	relay.Wait()
}

func loadContent(override string) (*models.Content, error) {
	if override != "" {
		return services.LoadContent(os.DirFS(filepath.Dir(override)), filepath.Base(override))
	}
	return services.LoadContent(contentFS, "content/site.yaml")
}

// newSessionStore picks Redis when configured, otherwise memory with a janitor.
func newSessionStore(ctx context.Context, cfg *config.Config) (services.SessionStore, error) {
	if cfg.UsesRedis() {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		store := services.NewRedisSessionStore(client, cfg.SessionTTL)
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := store.Ping(pingCtx); err != nil {
			return nil, err
		}
		logger.Infof("Visitor sessions stored in Redis at %s", cfg.Redis.Addr)
		return store, nil
	}

	store := services.NewMemorySessionStore(cfg.SessionTTL)
	// Start the background janitor to clean up inactive sessions
	go store.RunJanitor(ctx, cfg.SessionCleanupInterval)
	return store, nil
}
