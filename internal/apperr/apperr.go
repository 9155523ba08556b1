package apperr

import "errors"

// 错误分类：调用方统一用 errors.Is 判断
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrPersistence     = errors.New("persistence error")
	ErrExecution       = errors.New("execution failure")
	ErrTimeout         = errors.New("timeout")
	ErrCanceled        = errors.New("canceled")
)

var kinds = []struct {
	err  error
	name string
}{
	{ErrInvalidArgument, "invalid_argument"},
	{ErrNotFound, "not_found"},
	{ErrValidation, "validation_error"},
	{ErrPersistence, "persistence_error"},
	{ErrExecution, "execution_failure"},
	{ErrTimeout, "timeout"},
	{ErrCanceled, "canceled"},
}

// Kind 返回错误对应的分类名，未分类的错误返回 "internal"
func Kind(err error) string {
	if err == nil {
		return ""
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "internal"
}
