package model

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrImmutable = errors.New("运行记录创建后不可修改或删除")

// RunRecord 一次已完成分析的持久化记录，只追加不修改
type RunRecord struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	AlgorithmID string `gorm:"type:varchar(64);not null;index" json:"algorithm"`
	Items       int    `gorm:"not null" json:"items"`
	Steps       int    `gorm:"not null" json:"steps"`
	// 进程内单调时钟的秒数，不是日历时间
	StartTime   float64 `gorm:"not null" json:"start_time"`
	EndTime     float64 `gorm:"not null" json:"end_time"`
	TotalTimeMs float64 `gorm:"not null" json:"total_time_ms"`

	DeclaredLabel string `gorm:"type:varchar(32);not null" json:"time_complexity"`
	ArtifactPath  string `gorm:"type:varchar(500);not null" json:"artifact_path"`
}

func (r *RunRecord) BeforeUpdate(tx *gorm.DB) error {
	return ErrImmutable
}

func (r *RunRecord) BeforeDelete(tx *gorm.DB) error {
	return ErrImmutable
}
