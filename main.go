package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"flora-chain/config"
	"flora-chain/models"
	"flora-chain/providers"
	"flora-chain/providers/csvfile"
	"flora-chain/providers/excel"
	"flora-chain/services"
	"flora-chain/storage"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

var (
	datasetBuildsCounter prometheus.Counter
	speciesRecordsGauge  prometheus.Gauge
)

func init() {
	datasetBuildsCounter = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "dataset_builds_total",
			Help: "Total number of completed dataset builds.",
		},
	)
	speciesRecordsGauge = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "species_records",
			Help: "Number of species records in the latest dataset.",
		},
	)
	prometheus.MustRegister(datasetBuildsCounter, speciesRecordsGauge)
}

// datasetStore guards the latest dataset for serve mode; the cron rebuild
// swaps it atomically.
type datasetStore struct {
	mu      sync.RWMutex
	dataset *models.Dataset
}

func (s *datasetStore) Set(d *models.Dataset) {
	s.mu.Lock()
	s.dataset = d
	s.mu.Unlock()
}

func (s *datasetStore) Get() *models.Dataset {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dataset
}

func apiKeyAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.APISecretKey == "" {
			c.Next()
			return
		}
		apiKey := c.GetHeader("X-API-KEY")
		if apiKey != cfg.APISecretKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized: Invalid API Key"})
			return
		}
		c.Next()
	}
}

func main() {
	logging, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("can't initialize zap logger: %v", err)
	}
	defer logging.Sync()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal("Config load error", zap.Error(err))
	}

	provider := pickProvider(cfg, logging)
	logging.Info("Row provider selected", zap.String("provider", provider.Name()), zap.String("input", cfg.InputPath))

	classifier := services.NewClassifier(services.DefaultVocabulary(), logging)
	builder := services.NewRecordBuilder(classifier, logging)
	narrative := services.NewNarrativeGenerator(logging)
	transformer := services.NewTransformService(provider, builder, narrative, logging)

	dataset, err := rebuild(transformer, cfg, logging)
	if err != nil {
		logging.Fatal("Dataset build failed", zap.Error(err))
	}

	if !cfg.ServeHTTP {
		logging.Info("Run complete",
			zap.Int("species", len(dataset.Species)),
			zap.String("output", cfg.OutputPath),
		)
		return
	}

	store := &datasetStore{}
	store.Set(dataset)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "species": len(store.Get().Species)})
	})

	api := router.Group("/api")
	api.Use(apiKeyAuthMiddleware(cfg))
	api.GET("/dataset", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Get())
	})
	api.GET("/species", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Get().Species)
	})
	api.GET("/recommendations", func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Get().Recommendations)
	})

	cronScheduler := cron.New()
	cronScheduler.AddFunc(cfg.CronSchedule, func() {
		logging.Info("Running scheduled dataset rebuild...")
		ds, err := rebuild(transformer, cfg, logging)
		if err != nil {
			logging.Error("Scheduled rebuild failed", zap.Error(err))
			return
		}
		store.Set(ds)
	})
	cronScheduler.Start()

	logging.Info("Starting server", zap.String("port", cfg.HTTPPort))
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logging.Fatal("Failed to run server", zap.Error(err))
	}
}

// pickProvider selects the row source by input file extension.
func pickProvider(cfg *config.Config, logging *zap.Logger) providers.Provider {
	switch strings.ToLower(filepath.Ext(cfg.InputPath)) {
	case ".csv":
		return csvfile.NewFetcher(cfg, logging)
	default:
		return excel.NewFetcher(cfg, logging)
	}
}

// rebuild runs the pipeline once, writes the artifact and optionally uploads
// it. The run is atomic: a failed build leaves the previous artifact intact.
func rebuild(transformer *services.TransformService, cfg *config.Config, logging *zap.Logger) (*models.Dataset, error) {
	dataset, err := transformer.Run(context.Background())
	if err != nil {
		return nil, err
	}
	if err := storage.WriteDataset(cfg.OutputPath, dataset); err != nil {
		return nil, err
	}
	logging.Info("Dataset written", zap.String("path", cfg.OutputPath), zap.Int("species", len(dataset.Species)))

	if cfg.S3Enabled {
		client, err := storage.NewS3Client(cfg)
		if err != nil {
			return nil, fmt.Errorf("creating S3 client: %w", err)
		}
		data, err := storage.MarshalDataset(dataset)
		if err != nil {
			return nil, err
		}
		link, err := storage.UploadDataset(client, cfg, filepath.Base(cfg.OutputPath), data)
		if err != nil {
			return nil, fmt.Errorf("uploading dataset: %w", err)
		}
		logging.Info("Dataset uploaded", zap.String("link", link))
	}

	datasetBuildsCounter.Inc()
	speciesRecordsGauge.Set(float64(len(dataset.Species)))
	return dataset, nil
}
