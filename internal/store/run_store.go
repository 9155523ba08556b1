package store

import (
	"context"
	"errors"
	"fmt"

	"complexity-analyzer/internal/apperr"
	"complexity-analyzer/internal/model"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// RunFields 保存运行记录所需的全部字段。ID 由存储生成，不接受外部传入
type RunFields struct {
	AlgorithmID   string  `json:"algorithm" validate:"required,max=64"`
	Items         int     `json:"items" validate:"gt=0"`
	Steps         int     `json:"steps" validate:"gt=0"`
	StartTime     float64 `json:"start_time" validate:"gte=0"`
	EndTime       float64 `json:"end_time" validate:"gtefield=StartTime"`
	TotalTimeMs   float64 `json:"total_time_ms" validate:"gte=0"`
	DeclaredLabel string  `json:"time_complexity" validate:"required,max=32"`
	ArtifactPath  string  `json:"artifact_path" validate:"required,max=500"`
}

// RunStore 只追加的运行记录存储：没有更新和删除
type RunStore struct {
	db       *gorm.DB
	validate *validator.Validate
}

func NewRunStore(db *gorm.DB) *RunStore {
	return &RunStore{db: db, validate: validator.New()}
}

// Save 校验后在事务中插入，返回存储生成的ID。失败时事务回滚
func (s *RunStore) Save(ctx context.Context, f RunFields) (uint, error) {
	if err := s.validate.Struct(f); err != nil {
		return 0, fmt.Errorf("运行记录校验失败: %w: %w", apperr.ErrValidation, err)
	}

	rec := model.RunRecord{
		AlgorithmID:   f.AlgorithmID,
		Items:         f.Items,
		Steps:         f.Steps,
		StartTime:     f.StartTime,
		EndTime:       f.EndTime,
		TotalTimeMs:   f.TotalTimeMs,
		DeclaredLabel: f.DeclaredLabel,
		ArtifactPath:  f.ArtifactPath,
	}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(&rec).Error
	})
	if err != nil {
		return 0, fmt.Errorf("保存运行记录失败: %w: %w", apperr.ErrPersistence, err)
	}
	return rec.ID, nil
}

func (s *RunStore) Get(ctx context.Context, id uint) (*model.RunRecord, error) {
	if id == 0 {
		return nil, fmt.Errorf("运行记录 %d: %w", id, apperr.ErrNotFound)
	}
	var rec model.RunRecord
	if err := s.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		return nil, lookupError(fmt.Sprintf("运行记录 %d", id), err)
	}
	return &rec, nil
}

// Latest 某个算法最新（ID最大）的记录
func (s *RunStore) Latest(ctx context.Context, algorithmID string) (*model.RunRecord, error) {
	var rec model.RunRecord
	err := s.db.WithContext(ctx).
		Where("algorithm_id = ?", algorithmID).
		Order("id DESC").
		First(&rec).Error
	if err != nil {
		return nil, lookupError(fmt.Sprintf("算法 %q 的运行记录", algorithmID), err)
	}
	return &rec, nil
}

// List 按ID倒序列出记录，algorithmID 为空时不过滤，limit<=0 不限制条数
func (s *RunStore) List(ctx context.Context, algorithmID string, limit int) ([]model.RunRecord, error) {
	query := s.db.WithContext(ctx).Order("id DESC")
	if algorithmID != "" {
		query = query.Where("algorithm_id = ?", algorithmID)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	records := make([]model.RunRecord, 0)
	if err := query.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("查询运行记录失败: %w: %w", apperr.ErrPersistence, err)
	}
	return records, nil
}

func lookupError(what string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%s: %w", what, apperr.ErrNotFound)
	}
	return fmt.Errorf("查询%s失败: %w: %w", what, apperr.ErrPersistence, err)
}
