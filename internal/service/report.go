package service

import (
	"fmt"
	"strings"
	"time"

	"complexity-analyzer/internal/model"
)

func RenderRunMarkdown(rec *model.RunRecord) string {
	var b strings.Builder
	b.WriteString("# 时间复杂度分析报告\n\n")
	b.WriteString(fmt.Sprintf("- run_id: %d\n", rec.ID))
	b.WriteString(fmt.Sprintf("- algorithm: %s\n", rec.AlgorithmID))
	b.WriteString(fmt.Sprintf("- time_complexity: %s\n", rec.DeclaredLabel))
	b.WriteString(fmt.Sprintf("- created_at: %s\n\n", rec.CreatedAt.Format(time.RFC3339)))

	b.WriteString("## 运行参数\n\n")
	b.WriteString("| 项 | 值 |\n")
	b.WriteString("| --- | ---: |\n")
	b.WriteString(fmt.Sprintf("| items | %d |\n", rec.Items))
	b.WriteString(fmt.Sprintf("| steps | %d |\n", rec.Steps))
	b.WriteString(fmt.Sprintf("| start_time (s) | %.6f |\n", rec.StartTime))
	b.WriteString(fmt.Sprintf("| end_time (s) | %.6f |\n", rec.EndTime))
	b.WriteString(fmt.Sprintf("| total_time_ms | %.3f |\n", rec.TotalTimeMs))
	b.WriteString("\n")

	b.WriteString("## 图表\n\n")
	b.WriteString(fmt.Sprintf("![%s](%s)\n", rec.AlgorithmID, rec.ArtifactPath))
	return b.String()
}
