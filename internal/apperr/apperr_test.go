package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKind(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, ""},
		{ErrNotFound, "not_found"},
		{fmt.Errorf("algorithm %q: %w", "x", ErrNotFound), "not_found"},
		{fmt.Errorf("outer: %w", fmt.Errorf("inner: %w", ErrTimeout)), "timeout"},
		{fmt.Errorf("steps: %w", ErrInvalidArgument), "invalid_argument"},
		{ErrValidation, "validation_error"},
		{ErrPersistence, "persistence_error"},
		{ErrExecution, "execution_failure"},
		{ErrCanceled, "canceled"},
		{errors.New("boom"), "internal"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Kind(c.err), "err=%v", c.err)
	}
}
