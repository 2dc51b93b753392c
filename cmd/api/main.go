package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"skinvision-backend/cmd"
	"skinvision-backend/internal/api"
	"skinvision-backend/internal/core"
	"skinvision-backend/internal/database"
	"skinvision-backend/internal/engine"
	"skinvision-backend/internal/imaging"
	"skinvision-backend/internal/messaging"
	"skinvision-backend/internal/storage"
	pkgapi "skinvision-backend/pkg/api"
)

type APIConfig struct {
	Debug bool   `env:"DEBUG" envDefault:"true"`
	Host  string `env:"HOST" envDefault:"0.0.0.0"`
	Port  string `env:"PORT" envDefault:"8000"`

	DatabaseURL  string `env:"DATABASE_URL" envDefault:"data/skinvision.db"`
	AllowedHosts string `env:"ALLOWED_HOSTS" envDefault:"*"`

	MaxFileSize              int64   `env:"MAX_FILE_SIZE" envDefault:"10485760"`
	UploadDirectory          string  `env:"UPLOAD_DIRECTORY" envDefault:"uploads"`
	ModelConfidenceThreshold float64 `env:"MODEL_CONFIDENCE_THRESHOLD" envDefault:"0.7"`
	FaceDetectionConfidence  float64 `env:"FACE_DETECTION_CONFIDENCE" envDefault:"0.5"`

	// When RABBITMQ_URL is empty an in-process queue is used instead.
	RabbitMQURL       string `env:"RABBITMQ_URL"`
	WorkerConcurrency int    `env:"CONCURRENCY" envDefault:"1"`

	// When UPLOAD_BUCKET_NAME is set, uploads go to S3 instead of local disk.
	UploadBucketName  string `env:"UPLOAD_BUCKET_NAME"`
	S3EndpointURL     string `env:"S3_ENDPOINT_URL"`
	S3Region          string `env:"AWS_REGION"`
	S3AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	S3SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

func main() {
	log.Println("Starting API Server...")

	cmd.LoadEnvFile()

	var cfg APIConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatalf("error parsing config: %v", err)
	}

	if cfg.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	db, err := database.NewDatabase(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	var store storage.ObjectStore
	var localStore *storage.LocalObjectStore
	if cfg.UploadBucketName != "" {
		s3Store, err := storage.NewS3ObjectStore(storage.S3ClientConfig{
			Endpoint:        cfg.S3EndpointURL,
			Region:          cfg.S3Region,
			Bucket:          cfg.UploadBucketName,
			AccessKeyID:     cfg.S3AccessKeyID,
			SecretAccessKey: cfg.S3SecretAccessKey,
		})
		if err != nil {
			log.Fatalf("Failed to create S3 object store: %v", err)
		}
		if err := s3Store.EnsureBucket(context.Background()); err != nil {
			log.Fatalf("Failed to ensure upload bucket: %v", err)
		}
		store = s3Store
	} else {
		localStore, err = storage.NewLocalObjectStore(cfg.UploadDirectory)
		if err != nil {
			log.Fatalf("Failed to create local object store: %v", err)
		}
		store = localStore
	}

	var publisher messaging.Publisher
	var reciever messaging.Reciever
	if cfg.RabbitMQURL != "" {
		rmqPublisher, err := messaging.NewRabbitMQPublisher(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		rmqReceiver, err := messaging.NewRabbitMQReceiver(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to create RabbitMQ receiver: %v", err)
		}
		publisher, reciever = rmqPublisher, rmqReceiver
	} else {
		queue := messaging.NewInMemoryQueue()
		publisher, reciever = queue, queue
	}

	recommendationEngine := engine.NewEngine()

	processor := core.NewTaskProcessor(db, publisher, reciever, recommendationEngine)
	defer processor.Stop()
	for i := 0; i < cfg.WorkerConcurrency; i++ {
		go processor.Start()
	}

	// --- Chi Router Setup ---
	r := chi.NewRouter()

	// Middleware
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   strings.Split(cfg.AllowedHosts, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Cache preflight response for 5 minutes
	}))
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)                    // Log requests
	r.Use(middleware.Recoverer)                 // Recover from panics
	r.Use(middleware.Timeout(60 * time.Second)) // Set request timeout

	// API Handlers (dependency injection)
	apiHandler := api.NewBackendService(
		db,
		store,
		publisher,
		imaging.NewProcessor(cfg.FaceDetectionConfidence),
		core.NewAnalyzer(cfg.ModelConfidenceThreshold),
		recommendationEngine,
		cfg.MaxFileSize,
	)

	r.Route("/api/v1", func(r chi.Router) {
		apiHandler.AddRoutes(r)
	})

	r.Get("/", api.RestHandler(func(r *http.Request) (any, error) {
		return map[string]any{
			"message":     "Welcome to " + api.ServiceName,
			"description": "Facial skin analysis for personalized skincare recommendations",
			"version":     api.ServiceVersion,
			"health":      "/api/v1/health",
			"conditions":  pkgapi.SupportedConditions(),
		}, nil
	}))

	// Serve uploaded images directly when they live on local disk.
	if localStore != nil {
		uploadsDir, err := filepath.Abs(localStore.BaseDir())
		if err != nil {
			log.Fatalf("Failed to resolve upload directory: %v", err)
		}
		r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(uploadsDir))))
	}

	// --- Start HTTP Server ---
	server := &http.Server{
		Addr:    cfg.Host + ":" + cfg.Port,
		Handler: r,
	}

	// Goroutine for graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("Shutting down server...")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := server.Shutdown(ctx); err != nil {
			log.Fatalf("Server forced to shutdown: %v", err)
		}
	}()

	log.Printf("API server listening on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Could not listen on %s: %v\n", server.Addr, err)
	}

	log.Println("Server stopped.")
}
