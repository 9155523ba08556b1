package analyzer

import (
	"fmt"

	"complexity-analyzer/internal/apperr"
)

// StepSizes 生成采样规模序列：size[i] = floor((i+1)*n/steps)。
// 序列长度恒为 steps 且单调不减；steps 整除 n 时末项等于 n。
// n < steps 时会出现重复规模，这里不拒绝
func StepSizes(n, steps int) ([]int, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("steps=%d 必须为正整数: %w", steps, apperr.ErrInvalidArgument)
	}
	if n < 0 {
		return nil, fmt.Errorf("n=%d 不能为负数: %w", n, apperr.ErrInvalidArgument)
	}

	// 拆成商和余数，避免 (i+1)*n 溢出
	q, r := n/steps, n%steps
	sizes := make([]int, steps)
	for i := range sizes {
		k := i + 1
		sizes[i] = k*q + k*r/steps
	}
	return sizes, nil
}
