package service

import (
	"log/slog"

	"complexity-analyzer/internal/algorithm"
	"complexity-analyzer/internal/analyzer"
	"complexity-analyzer/internal/chart"
	"complexity-analyzer/internal/config"
	"complexity-analyzer/internal/store"

	"gorm.io/gorm"
)

type ServiceContext struct {
	Config          *config.Config
	Logger          *slog.Logger
	AnalysisService *AnalysisService
}

func NewServiceContext(cfg *config.Config, db *gorm.DB, logger *slog.Logger) *ServiceContext {
	registry := algorithm.Default()
	a := analyzer.New(
		registry,
		analyzer.NewHarness(cfg.Analyzer.MeasureTimeout),
		chart.NewPNGRenderer(cfg.Artifacts.Dir),
	)
	limits := Limits{MaxN: cfg.Analyzer.MaxN, MaxSteps: cfg.Analyzer.MaxSteps}

	return &ServiceContext{
		Config:          cfg,
		Logger:          logger,
		AnalysisService: NewAnalysisService(registry, a, store.NewRunStore(db), limits, logger),
	}
}
