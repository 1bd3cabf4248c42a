//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"parking-allocator/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMarkClassification(t *testing.T) {
	sentinel := errors.New("configuration unavailable")
	cause := errors.New("db exploded")

	t.Run("Is sees the mark", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.True(t, errs.Is(err, sentinel))
		assert.True(t, errs.Is(err, cause))
	})

	t.Run("mark survives wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(cause, sentinel), "loading config")
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)
		assert.True(t, errs.Is(err, sentinel))
	})

	t.Run("unrelated sentinel does not match", func(t *testing.T) {
		err := errs.Mark(cause, sentinel)
		assert.False(t, errs.Is(err, errors.New("schedule missing")))
	})
}
