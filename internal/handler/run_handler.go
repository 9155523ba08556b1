package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"complexity-analyzer/internal/apperr"
	"complexity-analyzer/internal/service"
	"complexity-analyzer/internal/store"

	"github.com/gin-gonic/gin"
)

type RunHandler struct {
	svc *service.AnalysisService
}

func NewRunHandler(svc *service.AnalysisService) *RunHandler {
	return &RunHandler{svc: svc}
}

// SaveRun 保存运行记录。除 id 外所有字段必填，id 由存储生成
func (h *RunHandler) SaveRun(c *gin.Context) {
	var req struct {
		AlgorithmID   *string  `json:"algorithm" binding:"required"`
		Items         *int     `json:"items" binding:"required"`
		Steps         *int     `json:"steps" binding:"required"`
		StartTime     *float64 `json:"start_time" binding:"required"`
		EndTime       *float64 `json:"end_time" binding:"required"`
		TotalTimeMs   *float64 `json:"total_time_ms" binding:"required"`
		DeclaredLabel *string  `json:"time_complexity" binding:"required"`
		ArtifactPath  *string  `json:"artifact_path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	id, err := h.svc.SaveRun(c.Request.Context(), store.RunFields{
		AlgorithmID:   *req.AlgorithmID,
		Items:         *req.Items,
		Steps:         *req.Steps,
		StartTime:     *req.StartTime,
		EndTime:       *req.EndTime,
		TotalTimeMs:   *req.TotalTimeMs,
		DeclaredLabel: *req.DeclaredLabel,
		ArtifactPath:  *req.ArtifactPath,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id": id,
	})
}

// ListRuns 按ID倒序列出记录
func (h *RunHandler) ListRuns(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		l, err := strconv.Atoi(v)
		if err != nil || l < 0 {
			respondError(c, fmt.Errorf("limit=%q 不是非负整数: %w", v, apperr.ErrInvalidArgument))
			return
		}
		limit = l
	}

	runs, err := h.svc.ListRuns(c.Request.Context(), c.Query("algorithm"), limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"runs": runs,
	})
}

// GetRun 获取单条记录
func (h *RunHandler) GetRun(c *gin.Context) {
	id, ok := parseRunID(c)
	if !ok {
		return
	}

	run, err := h.svc.GetRun(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run": run,
	})
}

// LatestRun 某个算法最近一次保存的记录
func (h *RunHandler) LatestRun(c *gin.Context) {
	run, err := h.svc.LatestRun(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"run": run,
	})
}

// GetRunReport 记录的 Markdown 报告
func (h *RunHandler) GetRunReport(c *gin.Context) {
	id, ok := parseRunID(c)
	if !ok {
		return
	}

	md, err := h.svc.RunReport(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(md))
}

func parseRunID(c *gin.Context) (uint, bool) {
	raw := c.Param("id")
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		respondError(c, fmt.Errorf("运行记录ID %q 不合法: %w", raw, apperr.ErrInvalidArgument))
		return 0, false
	}
	return uint(id), true
}
