package errors_test

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, errors.KindNotFound.Status())
	assert.Equal(t, http.StatusBadRequest, errors.KindValidation.Status())
	assert.Equal(t, http.StatusInternalServerError, errors.KindInternal.Status())
}

func TestExplainCopies(t *testing.T) {
	e := errors.NotFound.Explain("Player %s not found", "abc")
	assert.Equal(t, "Player abc not found", e.Message)
	assert.Equal(t, "Resource not found", errors.NotFound.Message)
	assert.True(t, errors.Is(e, errors.NotFound))
	assert.False(t, errors.Is(e, errors.Validation))
}

func TestWrapKeepsCause(t *testing.T) {
	cause := stderrors.New("connection refused")
	e := errors.Internal.Wrap(cause)

	assert.True(t, errors.Is(e, cause))
	assert.Contains(t, e.Error(), "connection refused")
	assert.Nil(t, errors.Internal.Unwrap())
}

func TestWithFieldsUsesFirstMessage(t *testing.T) {
	e := errors.Validation.WithFields([]errors.FieldError{
		errors.NewFieldError("name", "Name must be 3 characters or long"),
		errors.NewFieldError("age", "Player must be at least 16 years old"),
	})
	assert.Equal(t, "Name must be 3 characters or long", e.Message)
	assert.Len(t, e.Fields, 2)
	assert.Empty(t, errors.Validation.Fields)
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("get player: %w", errors.NotFound)
	assert.Equal(t, errors.KindNotFound, errors.KindOf(wrapped))
	assert.Equal(t, errors.KindInternal, errors.KindOf(stderrors.New("boom")))
	assert.Equal(t, "Validation", errors.KindValidation.String())
}
