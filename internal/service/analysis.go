package service

import (
	"context"
	"fmt"
	"log/slog"

	"complexity-analyzer/internal/algorithm"
	"complexity-analyzer/internal/analyzer"
	"complexity-analyzer/internal/apperr"
	"complexity-analyzer/internal/metrics"
	"complexity-analyzer/internal/model"
	"complexity-analyzer/internal/store"
)

// RunRepository 运行记录存储
type RunRepository interface {
	Save(ctx context.Context, f store.RunFields) (uint, error)
	Get(ctx context.Context, id uint) (*model.RunRecord, error)
	Latest(ctx context.Context, algorithmID string) (*model.RunRecord, error)
	List(ctx context.Context, algorithmID string, limit int) ([]model.RunRecord, error)
}

// Limits 调用方对请求规模的限制，0 表示不限制
type Limits struct {
	MaxN     int
	MaxSteps int
}

type AnalysisService struct {
	registry *algorithm.Registry
	analyzer *analyzer.Analyzer
	runs     RunRepository
	limits   Limits
	logger   *slog.Logger
}

func NewAnalysisService(registry *algorithm.Registry, a *analyzer.Analyzer, runs RunRepository, limits Limits, logger *slog.Logger) *AnalysisService {
	return &AnalysisService{
		registry: registry,
		analyzer: a,
		runs:     runs,
		limits:   limits,
		logger:   logger,
	}
}

// Analyze 执行一次完整分析，结果不落库
func (s *AnalysisService) Analyze(ctx context.Context, algorithmID string, n, steps int) (*analyzer.RunResult, error) {
	if s.limits.MaxN > 0 && n > s.limits.MaxN {
		return nil, fmt.Errorf("n=%d 超过上限 %d: %w", n, s.limits.MaxN, apperr.ErrInvalidArgument)
	}
	if s.limits.MaxSteps > 0 && steps > s.limits.MaxSteps {
		return nil, fmt.Errorf("steps=%d 超过上限 %d: %w", steps, s.limits.MaxSteps, apperr.ErrInvalidArgument)
	}

	res, err := s.analyzer.Run(ctx, algorithmID, n, steps)
	metrics.AnalysesTotal.WithLabelValues(s.metricLabel(algorithmID), metrics.Outcome(err)).Inc()

	if err != nil {
		s.logger.Warn("分析失败", "algorithm", algorithmID, "n", n, "steps", steps, "kind", apperr.Kind(err), "error", err)
		return nil, err
	}

	for _, sample := range res.Samples {
		metrics.MeasurementSeconds.WithLabelValues(algorithmID).Observe(sample.ElapsedSeconds)
	}
	s.logger.Info("分析完成",
		"algorithm", algorithmID,
		"n", n,
		"steps", steps,
		"label", res.DeclaredLabel,
		"seconds", res.TotalElapsedSeconds,
		"artifact", res.ArtifactRef,
	)
	return res, nil
}

// metricLabel 只有目录里的算法ID才能当指标标签，其余一律 unknown
func (s *AnalysisService) metricLabel(algorithmID string) string {
	if _, err := s.registry.Resolve(algorithmID); err != nil {
		return "unknown"
	}
	return algorithmID
}

// SaveRun 保存一条运行记录，返回存储生成的ID
func (s *AnalysisService) SaveRun(ctx context.Context, f store.RunFields) (uint, error) {
	id, err := s.runs.Save(ctx, f)
	metrics.RunsSavedTotal.WithLabelValues(metrics.Outcome(err)).Inc()
	if err != nil {
		s.logger.Error("保存运行记录失败", "algorithm", f.AlgorithmID, "kind", apperr.Kind(err), "error", err)
		return 0, err
	}
	s.logger.Info("运行记录已保存", "id", id, "algorithm", f.AlgorithmID)
	return id, nil
}

// SaveResult 把一次分析结果转成记录保存
func (s *AnalysisService) SaveResult(ctx context.Context, res *analyzer.RunResult) (uint, error) {
	return s.SaveRun(ctx, FieldsFromResult(res))
}

func (s *AnalysisService) GetRun(ctx context.Context, id uint) (*model.RunRecord, error) {
	return s.runs.Get(ctx, id)
}

// LatestRun 某个算法最近一次保存的记录
func (s *AnalysisService) LatestRun(ctx context.Context, algorithmID string) (*model.RunRecord, error) {
	if _, err := s.registry.Resolve(algorithmID); err != nil {
		return nil, err
	}
	return s.runs.Latest(ctx, algorithmID)
}

func (s *AnalysisService) ListRuns(ctx context.Context, algorithmID string, limit int) ([]model.RunRecord, error) {
	return s.runs.List(ctx, algorithmID, limit)
}

// RunReport 渲染某条记录的 Markdown 报告
func (s *AnalysisService) RunReport(ctx context.Context, id uint) (string, error) {
	rec, err := s.runs.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return RenderRunMarkdown(rec), nil
}

func (s *AnalysisService) Algorithms() []algorithm.Entry {
	return s.registry.Entries()
}

func FieldsFromResult(res *analyzer.RunResult) store.RunFields {
	return store.RunFields{
		AlgorithmID:   res.AlgorithmID,
		Items:         res.RequestedN,
		Steps:         res.Steps,
		StartTime:     res.StartTime,
		EndTime:       res.EndTime,
		TotalTimeMs:   res.TotalElapsedSeconds * 1000,
		DeclaredLabel: string(res.DeclaredLabel),
		ArtifactPath:  res.ArtifactRef,
	}
}
