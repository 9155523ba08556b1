package analyzer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"complexity-analyzer/internal/algorithm"
	"complexity-analyzer/internal/apperr"
)

// Sample 一次测量
type Sample struct {
	InputSize      int     `json:"n"`
	ElapsedSeconds float64 `json:"time_seconds"`
}

// Harness 对单个规模执行一次算法并计时。
// 只对实现调用本身计时，不重试
type Harness struct {
	timeout time.Duration
}

// NewHarness timeout 为 0 表示不设单次测量期限
func NewHarness(timeout time.Duration) *Harness {
	return &Harness{timeout: timeout}
}

type outcome struct {
	elapsed time.Duration
	err     error
}

func (h *Harness) Measure(ctx context.Context, entry algorithm.Entry, size int) (Sample, error) {
	if err := ctx.Err(); err != nil {
		return Sample{}, contextError(entry.ID, size, err)
	}

	if h.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, h.timeout)
		defer cancel()
	}

	var res outcome
	if ctx.Done() == nil {
		// 不可取消：直接在当前 goroutine 上同步执行
		res = invoke(ctx, entry, size)
	} else {
		done := make(chan outcome, 1)
		go func() {
			done <- invoke(ctx, entry, size)
		}()
		select {
		case res = <-done:
		case <-ctx.Done():
			// 实现若不检查 ctx 会在后台跑完，结果被丢弃
			return Sample{}, contextError(entry.ID, size, ctx.Err())
		}
	}

	if res.err != nil {
		if errors.Is(res.err, context.DeadlineExceeded) || errors.Is(res.err, context.Canceled) {
			if ctx.Err() != nil {
				return Sample{}, contextError(entry.ID, size, ctx.Err())
			}
		}
		return Sample{}, fmt.Errorf("算法 %s 在 n=%d 执行失败: %v: %w", entry.ID, size, res.err, apperr.ErrExecution)
	}

	return Sample{InputSize: size, ElapsedSeconds: res.elapsed.Seconds()}, nil
}

func invoke(ctx context.Context, entry algorithm.Entry, size int) (res outcome) {
	defer func() {
		if p := recover(); p != nil {
			res = outcome{err: fmt.Errorf("panic: %v", p)}
		}
	}()
	start := time.Now()
	err := entry.Run(ctx, size)
	return outcome{elapsed: time.Since(start), err: err}
}

func contextError(id string, size int, err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("算法 %s 在 n=%d 测量超时: %w", id, size, apperr.ErrTimeout)
	}
	return fmt.Errorf("算法 %s 在 n=%d 测量被取消: %w", id, size, apperr.ErrCanceled)
}
