package wallerr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewWrapsKind(t *testing.T) {
	err := New(ErrInvalidColumn, "column %q not in %s", "J", "ifsc")
	assert.True(t, errors.Is(err, ErrInvalidColumn))
	assert.False(t, errors.Is(err, ErrInvalidFormat))
	assert.Equal(t, `invalid column: column "J" not in ifsc`, err.Error())

	wrapped := fmt.Errorf("segment 2: %w", err)
	assert.True(t, errors.Is(wrapped, ErrInvalidColumn))
}

func TestKindOf(t *testing.T) {
	err := fmt.Errorf("loading: %w", New(ErrMissingAnchor, "big.svg"))
	assert.Equal(t, ErrMissingAnchor, KindOf(err))
	assert.Nil(t, KindOf(errors.New("disk failure")))
	assert.Nil(t, KindOf(nil))
}
