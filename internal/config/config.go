package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Artifacts ArtifactsConfig `yaml:"artifacts"`
	Log       LogConfig       `yaml:"log"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type DatabaseConfig struct {
	// mysql / sqlite
	Driver string `yaml:"driver"`

	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Charset  string `yaml:"charset"`

	// sqlite 文件路径
	Path string `yaml:"path"`
}

type AnalyzerConfig struct {
	// 请求上限，0 表示不限制
	MaxN     int `yaml:"max_n"`
	MaxSteps int `yaml:"max_steps"`
	// 单次测量期限，0 表示不设期限
	MeasureTimeout time.Duration `yaml:"measure_timeout"`
}

type ArtifactsConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	// debug/info/warn/error
	Level string `yaml:"level"`
	// text/json
	Format string `yaml:"format"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件失败: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("解析配置文件失败: %w", err)
	}

	config.ApplyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// 没有配置文件时的请求上限，与 config/config.yaml 一致
const (
	DefaultMaxN     = 100000
	DefaultMaxSteps = 100
)

// Default 不读文件时使用的配置
func Default() *Config {
	var config Config
	config.ApplyDefaults()
	config.Analyzer.MaxN = DefaultMaxN
	config.Analyzer.MaxSteps = DefaultMaxSteps
	return &config
}

func (c *Config) ApplyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 3000
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Driver == "mysql" {
		if c.Database.Port == 0 {
			c.Database.Port = 3306
		}
		if c.Database.Charset == "" {
			c.Database.Charset = "utf8mb4"
		}
	}
	if c.Database.Driver == "sqlite" && c.Database.Path == "" {
		c.Database.Path = "data/complexity.db"
	}
	if c.Artifacts.Dir == "" {
		c.Artifacts.Dir = "outputs"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

func (c *Config) Validate() error {
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port 超出范围: %d", c.Server.Port)
	}
	switch c.Database.Driver {
	case "mysql":
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("mysql 需要 database.host 和 database.dbname")
		}
	case "sqlite":
	default:
		return fmt.Errorf("不支持的数据库驱动: %q", c.Database.Driver)
	}
	if c.Analyzer.MaxN < 0 || c.Analyzer.MaxSteps < 0 {
		return fmt.Errorf("analyzer.max_n / analyzer.max_steps 不能为负数")
	}
	if c.Analyzer.MeasureTimeout < 0 {
		return fmt.Errorf("analyzer.measure_timeout 不能为负数")
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("不支持的日志级别: %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("不支持的日志格式: %q", c.Log.Format)
	}
	return nil
}
