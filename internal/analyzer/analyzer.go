package analyzer

import (
	"context"
	"fmt"
	"time"

	"complexity-analyzer/internal/algorithm"
	"complexity-analyzer/internal/apperr"
	"complexity-analyzer/internal/chart"

	"github.com/google/uuid"
)

// Renderer 把 (规模, 耗时) 曲线渲染成图表产物
type Renderer interface {
	Render(ctx context.Context, s chart.Series) (chart.Artifact, error)
}

// RunResult 一次完整分析的结果，只存在于请求期间，是否落库由调用方决定
type RunResult struct {
	RunKey              string               `json:"run_key"`
	AlgorithmID         string               `json:"algorithm"`
	RequestedN          int                  `json:"items"`
	Steps               int                  `json:"steps"`
	DeclaredLabel       algorithm.Complexity `json:"time_complexity"`
	Samples             []Sample             `json:"results"`
	StartTime           float64              `json:"start_time"`
	EndTime             float64              `json:"end_time"`
	TotalElapsedSeconds float64              `json:"total_analysis_time_seconds"`
	ArtifactRef         string               `json:"artifact"`

	Artifact chart.Artifact `json:"-"`
}

type Analyzer struct {
	registry *algorithm.Registry
	harness  *Harness
	renderer Renderer
	newKey   func() string
}

func New(registry *algorithm.Registry, harness *Harness, renderer Renderer) *Analyzer {
	return &Analyzer{
		registry: registry,
		harness:  harness,
		renderer: renderer,
		newKey:   uuid.NewString,
	}
}

// Run 生成规模序列 -> 逐个测量 -> 查标签 -> 渲染。
// 任一测量失败整次运行作废，不返回缺样本的结果
func (a *Analyzer) Run(ctx context.Context, algorithmID string, n, steps int) (*RunResult, error) {
	if n <= 0 {
		return nil, fmt.Errorf("n=%d 必须为正整数: %w", n, apperr.ErrInvalidArgument)
	}
	sizes, err := StepSizes(n, steps)
	if err != nil {
		return nil, err
	}
	entry, err := a.registry.Resolve(algorithmID)
	if err != nil {
		return nil, err
	}

	key := a.newKey()
	start := monotonicSeconds()

	samples := make([]Sample, 0, len(sizes))
	for _, size := range sizes {
		s, err := a.harness.Measure(ctx, entry, size)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}

	label, err := a.registry.Classify(algorithmID)
	if err != nil {
		return nil, err
	}

	series := chart.Series{
		Name:  fmt.Sprintf("%s_%s", algorithmID, key),
		Title: fmt.Sprintf("Time Complexity Analysis: %s", algorithmID),
		X:     make([]float64, len(samples)),
		Y:     make([]float64, len(samples)),
	}
	for i, s := range samples {
		series.X[i] = float64(s.InputSize)
		series.Y[i] = s.ElapsedSeconds
	}
	art, err := a.renderer.Render(ctx, series)
	if err != nil {
		return nil, fmt.Errorf("渲染图表失败: %w", err)
	}

	end := monotonicSeconds()
	return &RunResult{
		RunKey:              key,
		AlgorithmID:         algorithmID,
		RequestedN:          n,
		Steps:               steps,
		DeclaredLabel:       label,
		Samples:             samples,
		StartTime:           start,
		EndTime:             end,
		TotalElapsedSeconds: end - start,
		ArtifactRef:         art.Path,
		Artifact:            art,
	}, nil
}

var processEpoch = time.Now()

// 进程内单调时钟，单位秒，起点是进程启动
func monotonicSeconds() float64 {
	return time.Since(processEpoch).Seconds()
}
