package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"complexity-analyzer/internal/config"
	"complexity-analyzer/internal/db"
	"complexity-analyzer/internal/logging"
	"complexity-analyzer/internal/service"

	"github.com/spf13/cobra"
)

type analyzeOptions struct {
	algo  string
	n     int
	steps int
	save  bool
}

func newAnalyzeCmd(configPath *string) *cobra.Command {
	var opts analyzeOptions

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Run one analysis and print the result as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfigOrDefault(*configPath)
			if err != nil {
				return err
			}
			logger := logging.New(cfg.Log, os.Stderr)
			slog.SetDefault(logger)

			gdb, err := db.InitDB(cfg)
			if err != nil {
				return fmt.Errorf("初始化数据库失败: %w", err)
			}
			svc := service.NewServiceContext(cfg, gdb, logger).AnalysisService

			ctx := cmd.Context()
			result, err := svc.Analyze(ctx, opts.algo, opts.n, opts.steps)
			if err != nil {
				return err
			}

			out := map[string]any{"result": result}
			if opts.save {
				id, err := svc.SaveResult(ctx, result)
				if err != nil {
					return err
				}
				out["run_id"] = id
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&opts.algo, "algo", "", "algorithm identifier")
	cmd.Flags().IntVar(&opts.n, "n", 1000, "largest input size")
	cmd.Flags().IntVar(&opts.steps, "steps", 10, "number of input sizes to sample")
	cmd.Flags().BoolVar(&opts.save, "save", false, "persist the run record")
	_ = cmd.MarkFlagRequired("algo")
	return cmd
}

// 一次性分析允许没有配置文件
func loadConfigOrDefault(path string) (*config.Config, error) {
	cfg, err := config.LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config.Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("加载配置失败: %w", err)
	}
	return cfg, nil
}
