package algorithm

import (
	"context"
	"fmt"

	"complexity-analyzer/internal/apperr"
)

// Complexity 目录里声明的渐进复杂度标签（静态元数据，不从测量数据推断）
type Complexity string

const (
	Logarithmic  Complexity = "O(log n)"
	Linear       Complexity = "O(n)"
	Linearithmic Complexity = "O(n log n)"
	Quadratic    Complexity = "O(n^2)"
)

// Func 算法实现：按 size 自行构造输入并完成计算。
// ctx 过期后实现应尽快返回 ctx.Err()
type Func func(ctx context.Context, size int) error

type Entry struct {
	ID    string     `json:"id"`
	Label Complexity `json:"label"`
	Run   Func       `json:"-"`
}

// Registry 固定的算法目录，构造后只读，可并发使用
type Registry struct {
	entries map[string]Entry
	ids     []string
}

func NewRegistry(entries ...Entry) (*Registry, error) {
	r := &Registry{
		entries: make(map[string]Entry, len(entries)),
		ids:     make([]string, 0, len(entries)),
	}
	for _, e := range entries {
		if e.ID == "" {
			return nil, fmt.Errorf("算法ID为空: %w", apperr.ErrInvalidArgument)
		}
		if e.Run == nil {
			return nil, fmt.Errorf("算法 %q 缺少实现: %w", e.ID, apperr.ErrInvalidArgument)
		}
		if e.Label == "" {
			return nil, fmt.Errorf("算法 %q 缺少复杂度标签: %w", e.ID, apperr.ErrInvalidArgument)
		}
		if _, dup := r.entries[e.ID]; dup {
			return nil, fmt.Errorf("算法 %q 重复注册: %w", e.ID, apperr.ErrInvalidArgument)
		}
		r.entries[e.ID] = e
		r.ids = append(r.ids, e.ID)
	}
	return r, nil
}

// Resolve 按ID查找目录项，未知ID返回 ErrNotFound
func (r *Registry) Resolve(id string) (Entry, error) {
	e, ok := r.entries[id]
	if !ok {
		return Entry{}, fmt.Errorf("算法 %q: %w", id, apperr.ErrNotFound)
	}
	return e, nil
}

// Classify 返回目录声明的复杂度标签。
// 与 Resolve 共用同一张表，未知ID同样返回 ErrNotFound，不做默认值
func (r *Registry) Classify(id string) (Complexity, error) {
	e, err := r.Resolve(id)
	if err != nil {
		return "", err
	}
	return e.Label, nil
}

// Entries 按注册顺序返回全部目录项
func (r *Registry) Entries() []Entry {
	out := make([]Entry, 0, len(r.ids))
	for _, id := range r.ids {
		out = append(out, r.entries[id])
	}
	return out
}
