package handler

import (
	"errors"
	"net/http"

	"complexity-analyzer/internal/apperr"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func statusFor(err error) int {
	switch {
	case errors.Is(err, apperr.ErrInvalidArgument), errors.Is(err, apperr.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, apperr.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, apperr.ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, apperr.ErrCanceled):
		return http.StatusRequestTimeout
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	c.JSON(statusFor(err), gin.H{
		"error": err.Error(),
		"kind":  apperr.Kind(err),
	})
}

// 绑定失败：缺字段算 validation_error，类型/格式错误算 invalid_argument
func respondBindError(c *gin.Context, err error) {
	kind := apperr.Kind(apperr.ErrInvalidArgument)
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		kind = apperr.Kind(apperr.ErrValidation)
	}
	c.JSON(http.StatusBadRequest, gin.H{
		"error": err.Error(),
		"kind":  kind,
	})
}
