// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"io/fs"
	"testing"

	"github.com/arthur-debert/persist-make/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "source_not_found",
			code:    errors.ErrSourceNotFound,
			message: "source entry missing",
			wantStr: "[SOURCE_NOT_FOUND] source entry missing",
		},
		{
			name:    "invalid_input",
			code:    errors.ErrInvalidInput,
			message: "path must be absolute",
			wantStr: "[INVALID_INPUT] path must be absolute",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrPermissionSync, "cannot set mode %o on %s", 0644, "c.txt")
	assert.Equal(t, "cannot set mode 644 on c.txt", err.Message)
}

func TestWrap(t *testing.T) {
	baseErr := stderrors.New("base error")

	t.Run("wrap_non_nil_error", func(t *testing.T) {
		err := errors.Wrap(baseErr, errors.ErrCreate, "cannot create entry")

		assert.Equal(t, errors.ErrCreate, err.Code)
		assert.Same(t, baseErr, err.Wrapped)
		assert.Equal(t, "[CREATE] cannot create entry: base error", err.Error())
	})

	t.Run("wrap_nil_error_returns_nil", func(t *testing.T) {
		assert.Nil(t, errors.Wrap(nil, errors.ErrCreate, "cannot create entry"))
		assert.Nil(t, errors.Wrapf(nil, errors.ErrCreate, "cannot create %s", "x"))
	})
}

func TestWithDetails(t *testing.T) {
	err := errors.New(errors.ErrOwnership, "chown rejected").
		WithDetail(errors.DetailPath, "/dst/a").
		WithDetails(map[string]interface{}{errors.DetailOp: "chown", "uid": 1000})

	assert.Equal(t, "/dst/a", err.Details[errors.DetailPath])
	assert.Equal(t, "chown", err.Details[errors.DetailOp])
	assert.Equal(t, 1000, err.Details["uid"])
	assert.Equal(t, "/dst/a", errors.GetErrorPath(err))
}

func TestIs(t *testing.T) {
	err1 := errors.New(errors.ErrTypeMismatch, "error 1")
	err2 := errors.New(errors.ErrTypeMismatch, "error 2")
	err3 := errors.New(errors.ErrCreate, "error 3")

	assert.True(t, err1.Is(err2))
	assert.False(t, err1.Is(err3))
	assert.True(t, stderrors.Is(err1, err2))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     errors.ErrorCode
		expected bool
	}{
		{"matching_code", errors.New(errors.ErrMetadataRead, "x"), errors.ErrMetadataRead, true},
		{"different_code", errors.New(errors.ErrMetadataRead, "x"), errors.ErrInternal, false},
		{"wrapped_error", errors.Wrap(fs.ErrPermission, errors.ErrOwnership, "denied"), errors.ErrOwnership, true},
		{"standard_error", stderrors.New("standard error"), errors.ErrUnknown, false},
		{"nil_error", nil, errors.ErrSourceNotFound, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, errors.IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, errors.ErrUnsupportedKind, errors.GetErrorCode(errors.New(errors.ErrUnsupportedKind, "symlink")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("standard error")))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))
	assert.Nil(t, errors.GetErrorDetails(stderrors.New("standard error")))
	assert.Empty(t, errors.GetErrorPath(nil))
}

func TestErrorChaining(t *testing.T) {
	rootCause := &fs.PathError{Op: "chmod", Path: "/dst/a", Err: fs.ErrPermission}
	syncErr := errors.Wrap(rootCause, errors.ErrPermissionSync, "cannot set permissions")
	topErr := errors.Wrap(syncErr, errors.ErrConfigLoad, "outer")

	assert.True(t, errors.IsErrorCode(topErr, errors.ErrConfigLoad))

	var inner *errors.PersistError
	require.True(t, stderrors.As(topErr.Unwrap(), &inner))
	assert.Equal(t, errors.ErrPermissionSync, inner.Code)

	assert.ErrorIs(t, topErr, fs.ErrPermission)
	var pathErr *fs.PathError
	require.ErrorAs(t, topErr, &pathErr)
	assert.Equal(t, "/dst/a", pathErr.Path)
}
