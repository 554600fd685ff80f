package util

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverseG(t *testing.T) {
	arr := []int{1, 2, 3, 4}
	rev := ReverseG(arr)
	assert.Equal(t, []int{4, 3, 2, 1}, rev)
	assert.Equal(t, []int{1, 2, 3, 4}, arr)
	assert.Empty(t, ReverseG([]int{}))
}

func TestRoundFloat(t *testing.T) {
	assert.Equal(t, 1.23, RoundFloat(1.2345, 2))
	assert.Equal(t, 12.0, RoundFloat(12, 3))
}

func TestWrapErrorf(t *testing.T) {
	cause := errors.New("route not found")
	err := WrapErrorf(cause, ErrNotFound, "no route from %d to %d", 1, 2)

	assert.Equal(t, "no route from 1 to 2: route not found", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, ErrNotFound, CodeOf(err))

	wrapped := fmt.Errorf("router: %w", err)
	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.Equal(t, ErrUnknown, CodeOf(cause))

	plain := NewErrorf(ErrBadParamInput, "bad lat %f", 91.0)
	assert.Equal(t, "bad lat 91.000000", plain.Error())
	assert.Nil(t, errors.Unwrap(plain))
}
