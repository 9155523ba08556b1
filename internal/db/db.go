package db

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"complexity-analyzer/internal/config"
	"complexity-analyzer/internal/model"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// InitDB 连接数据库并自动迁移
func InitDB(cfg *config.Config) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg.Database)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: newGormLogger(slog.Default()),
	})
	if err != nil {
		return nil, fmt.Errorf("连接数据库失败: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	slog.Info("数据库初始化成功", "driver", cfg.Database.Driver)
	return db, nil
}

// newGormLogger 让 gorm 的告警和慢查询走 slog，跟随 log.format
func newGormLogger(l *slog.Logger) logger.Interface {
	return logger.New(slog.NewLogLogger(l.Handler(), slog.LevelWarn), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&model.RunRecord{}); err != nil {
		return fmt.Errorf("数据库迁移失败: %w", err)
	}
	return nil
}

func dialectorFor(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=True&loc=Local",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
		)
		return mysql.Open(dsn), nil
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("创建数据库目录失败: %w", err)
			}
		}
		dsn := cfg.Path + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("不支持的数据库驱动: %q", cfg.Driver)
	}
}
