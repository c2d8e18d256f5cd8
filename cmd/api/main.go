//	@title			Photofeed API
//	@version		1.0
//	@description	Backend for Photofeed — photo sharing with comments and star ratings.
//
//	@host		localhost:8080
//	@BasePath	/api/v1

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/photofeed/service/internal/comment"
	"github.com/photofeed/service/internal/config"
	"github.com/photofeed/service/internal/db"
	"github.com/photofeed/service/internal/docstore"
	appMiddleware "github.com/photofeed/service/internal/middleware"
	"github.com/photofeed/service/internal/photo"
	"github.com/photofeed/service/internal/rating"
	"github.com/photofeed/service/internal/storage"

	_ "github.com/photofeed/service/docs/swagger"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := db.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	// Collections are provisioned before traffic is accepted so that a
	// misconfigured store fails the process instead of the first request.
	photosSpec := docstore.Spec{Name: cfg.PhotosCollection, PartitionKey: "id"}
	commentsSpec := docstore.Spec{Name: cfg.CommentsCollection, PartitionKey: "photoId"}
	ratingsSpec := docstore.Spec{Name: cfg.RatingsCollection, PartitionKey: "photoId"}

	store := docstore.New(pool)
	if err := store.Provision(ctx, photosSpec, commentsSpec, ratingsSpec); err != nil {
		log.Fatalf("collection provisioning failed: %v", err)
	}

	var media storage.Storage
	if cfg.StorageEnabled {
		ms, err := storage.NewMinioStorage(
			cfg.StorageEndpoint,
			cfg.StorageAccessKey,
			cfg.StorageSecretKey,
			cfg.StorageBucket,
			cfg.StoragePublicBase,
			cfg.StorageUseSSL,
		)
		if err != nil {
			log.Fatalf("object storage init failed: %v", err)
		}
		media = ms
	} else {
		log.Println("object storage disabled; photos can only be created from URLs")
	}

	// Wire dependencies: collection → service → handler
	photoSvc := photo.NewService(docstore.NewCollection[photo.Photo](store, photosSpec), media)
	photoHandler := photo.NewHandler(photoSvc)

	commentSvc := comment.NewService(docstore.NewCollection[comment.Comment](store, commentsSpec), photoSvc)
	commentHandler := comment.NewHandler(commentSvc)

	ratingSvc := rating.NewService(docstore.NewCollection[rating.Rating](store, ratingsSpec), photoSvc)
	ratingHandler := rating.NewHandler(ratingSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(cfg.RequestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI — available at http://localhost:8080/swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/photos", func(r chi.Router) {
			r.Post("/", photoHandler.Create)
			r.Get("/", photoHandler.List)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", photoHandler.Get)
				r.Post("/comments", commentHandler.Add)
				r.Get("/comments", commentHandler.List)
				r.Post("/ratings", ratingHandler.Add)
				r.Get("/ratings/summary", ratingHandler.Summarize)
			})
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		log.Printf("swagger UI at http://localhost:%s/swagger/", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
