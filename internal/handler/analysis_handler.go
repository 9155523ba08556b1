package handler

import (
	"net/http"

	"complexity-analyzer/internal/analyzer"
	"complexity-analyzer/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalysisHandler struct {
	svc *service.AnalysisService
}

func NewAnalysisHandler(svc *service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

type analyzeResponse struct {
	*analyzer.RunResult
	GraphBase64 string `json:"graph_base64,omitempty"`
	RunID       uint   `json:"run_id,omitempty"`
}

// Home 健康检查
func (h *AnalysisHandler) Home(c *gin.Context) {
	c.String(http.StatusOK, "Complexity Analyzer Running")
}

// ListAlgorithms 列出目录里的算法及其复杂度标签
func (h *AnalysisHandler) ListAlgorithms(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"algorithms": h.svc.Algorithms(),
	})
}

// Analyze 只使用查询参数里的 algo/n/steps；save=true 时顺带落库。
// n/steps 用指针绑定：缺参数是校验错误，0 和负数交给分析器按非法参数处理
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req struct {
		Algo   string `form:"algo" binding:"required"`
		N      *int   `form:"n" binding:"required"`
		Steps  *int   `form:"steps" binding:"required"`
		Inline bool   `form:"inline"`
		Save   bool   `form:"save"`
	}
	if err := c.ShouldBindQuery(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ctx := c.Request.Context()
	result, err := h.svc.Analyze(ctx, req.Algo, *req.N, *req.Steps)
	if err != nil {
		respondError(c, err)
		return
	}

	resp := analyzeResponse{RunResult: result}
	if req.Inline {
		resp.GraphBase64 = result.Artifact.Base64()
	}
	if req.Save {
		id, err := h.svc.SaveResult(ctx, result)
		if err != nil {
			respondError(c, err)
			return
		}
		resp.RunID = id
	}

	c.JSON(http.StatusOK, resp)
}
