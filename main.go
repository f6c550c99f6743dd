package main

import (
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/cadesk/challan-extractor/config"
	"github.com/cadesk/challan-extractor/handler"
	"github.com/cadesk/challan-extractor/service"
)

func main() {
	cfg, err := config.LoadFromFlags()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)
	logger := slog.Default()

	// Initialize PDF processor
	pdfProcessor := service.NewPDFProcessor()

	// Initialize service layer
	esicService := service.NewESICService(pdfProcessor, logger, cfg.ExtractTimeout)
	ptService := service.NewPTService(pdfProcessor, logger, cfg.ExtractTimeout)
	tdsService := service.NewTDSService(pdfProcessor, logger, cfg.ExtractTimeout)
	exportService := service.NewExportService()

	// Initialize handler layer
	challanHandler := handler.NewChallanHandler(esicService, ptService, tdsService, exportService)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = cfg.MaxUploadSize

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "Challan Extractor",
		})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		challan := api.Group("/challan")
		{
			challan.POST("/esic", challanHandler.ExtractESIC)
			challan.POST("/pt", challanHandler.ExtractPT)
			challan.POST("/tds", challanHandler.ExtractTDS)
		}
	}

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("starting challan extractor", "addr", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func initLogger(cfg *config.Config) {
	var level slog.Level
	switch cfg.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}
