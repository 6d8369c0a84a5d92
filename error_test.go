package fanza_test

import (
	"fmt"
	"testing"

	"github.com/fwojciec/fanza"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := fanza.Errorf(fanza.ENOTFOUND, "product %q not found", "views_0001")

	assert.Equal(t, fanza.ENOTFOUND, fanza.ErrorCode(err))
	assert.Equal(t, "product \"views_0001\" not found", fanza.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, fanza.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, fanza.ErrorMessage(nil))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("extract views_0001: %w", fanza.Errorf(fanza.EINVALID, "invalid review average"))

	assert.Equal(t, fanza.EINVALID, fanza.ErrorCode(err))
	assert.Equal(t, "invalid review average", fanza.ErrorMessage(err))
}

func TestErrorCode_ForeignError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("connection reset")

	assert.Equal(t, fanza.EINTERNAL, fanza.ErrorCode(err))
	assert.Equal(t, "Internal error.", fanza.ErrorMessage(err))
}
