package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"statement-insights-backend/internal/config"
	"statement-insights-backend/internal/events"
	"statement-insights-backend/internal/insights"
	"statement-insights-backend/internal/logger"
	"statement-insights-backend/internal/pdftext"
	"statement-insights-backend/internal/pipeline"
	"statement-insights-backend/internal/statement"
	"statement-insights-backend/internal/upload"
)

var (
	cfg       *config.Config
	log       = zerolog.Nop()
	engine    *pipeline.Engine
	extractor pdftext.Extractor
	uploads   *upload.Store
	publisher *events.Publisher
)

func main() {
	migrateCmd := flag.Bool("migrate", false, "Run parse history migrations and exit")
	parseFile := flag.String("parse", "", "Parse a statement file and print the result as JSON")
	flag.Parse()

	cfg = config.Load()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log = logger.New(cfg.LogLevel, cfg.IsProduction())

	if *migrateCmd {
		if cfg.DatabaseURL == "" {
			log.Fatal().Msg("DATABASE_URL is required to run migrations")
		}
		if err := runMigrations(cfg.DatabaseURL); err != nil {
			log.Fatal().Err(err).Msg("Migration failed")
		}
		log.Info().Msg("Migration completed successfully")
		return
	}

	engine = newEngine(cfg)
	extractor = pdftext.New(cfg.PdftotextPath, cfg.ExtractTimeout)

	if *parseFile != "" {
		if err := printParse(context.Background(), os.Stdout, *parseFile); err != nil {
			log.Fatal().Err(err).Str("file", *parseFile).Msg("Failed to parse statement")
		}
		return
	}

	var err error
	uploads, err = upload.New(cfg.UploadDir)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to prepare upload directory")
	}

	// Parse history
	if cfg.DatabaseURL != "" {
		if err := initDB(cfg.DatabaseURL); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize database, continuing without parse history")
			db = nil
		} else {
			defer db.Close()
			if err := runMigrations(cfg.DatabaseURL); err != nil {
				log.Warn().Err(err).Msg("Failed to migrate database, continuing without parse history")
				db = nil
			}
		}
	}

	// Result cache
	if cfg.RedisURL != "" {
		if err := initRedis(cfg.RedisURL); err != nil {
			log.Warn().Err(err).Msg("Failed to initialize Redis, continuing without cache")
			redisClient = nil
		} else {
			defer redisClient.Close()
		}
	}

	// Parse notifications
	if cfg.AMQPURL != "" {
		publisher, err = events.NewPublisher(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, log)
		if err != nil {
			log.Warn().Err(err).Msg("Failed to connect to AMQP, continuing without notifications")
			publisher = nil
		} else {
			defer publisher.Close()
		}
	}

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Msg("Server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}

func newEngine(c *config.Config) *pipeline.Engine {
	st := statement.DefaultConfig()
	st.Year = c.StatementYear
	return pipeline.New(pipeline.Options{
		Statement: st,
		Insights: insights.Config{
			MinVisualShare:   c.MinVisualShare,
			PeerAverageShare: c.PeerAverageShare,
		},
	})
}

// setupRouter wires middleware and routes onto a new gin engine.
func setupRouter() *gin.Engine {
	r := gin.New()
	r.MaxMultipartMemory = int64(cfg.MaxUploadMB) << 20

	r.Use(gin.Recovery(), requestLogger())

	// CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", requestIDHeader},
		ExposeHeaders: []string{"Content-Length", requestIDHeader, cacheHeader},
		MaxAge:        12 * time.Hour,
	}))

	// Routes
	r.GET("/health", healthCheck)
	api := r.Group("/api")
	api.GET("", apiIndex)
	api.POST("/upload", uploadStatement)
	api.POST("/parse", parseStatement)
	api.GET("/history", listHistory)

	if cfg.StaticDir != "" {
		r.NoRoute(serveFrontend)
	}

	return r
}

// printParse runs one file through the pipeline and writes the bundle.
func printParse(ctx context.Context, w io.Writer, path string) error {
	lines, err := extractor.Lines(ctx, path)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(engine.Run(lines))
}
