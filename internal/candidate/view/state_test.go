package view

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "leaders/pkg/domain-errors"
)

func TestFailedClassifiesCategories(t *testing.T) {
	offline := Failed(dErrors.New(dErrors.CodeUnavailable, "Database binding not configured"))
	assert.Equal(t, StatusOffline, offline.Status)

	server := Failed(dErrors.New(dErrors.CodeInternal, "Failed to fetch candidates"))
	assert.Equal(t, StatusServerError, server.Status)

	notFound := Failed(dErrors.New(dErrors.CodeNotFound, "Candidate not found"))
	assert.Equal(t, StatusNotFound, notFound.Status)

	unclassified := Failed(dErrors.New(dErrors.CodeBadRequest, "bad input"))
	assert.Equal(t, StatusFailed, unclassified.Status)
}

func TestFailedMessagesAreDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, err := range []error{
		dErrors.New(dErrors.CodeUnavailable, "a"),
		dErrors.New(dErrors.CodeInternal, "b"),
		dErrors.New(dErrors.CodeNotFound, "c"),
		dErrors.New(dErrors.CodeBadRequest, "d"),
	} {
		state := Failed(err)
		assert.NotEmpty(t, state.Message)
		assert.False(t, seen[state.Message], "duplicate message %q", state.Message)
		seen[state.Message] = true
	}
}

func TestRawErrorsClassifyAsServerFailure(t *testing.T) {
	state := Failed(errors.New("boom"))
	assert.Equal(t, StatusServerError, state.Status)
}

func TestRetryable(t *testing.T) {
	assert.True(t, Failed(dErrors.New(dErrors.CodeUnavailable, "x")).Retryable())
	assert.True(t, Failed(dErrors.New(dErrors.CodeInternal, "x")).Retryable())
	assert.False(t, Failed(dErrors.New(dErrors.CodeNotFound, "x")).Retryable())
	assert.False(t, Ready().Retryable())
	assert.False(t, Loading().Retryable())
}

// TestRetryResetsToLoading documents the manual-retry contract: retry must
// pass through the loading placeholder before a fetch re-issues. There is
// no cancellation of in-flight fetches; a stale response can only land by
// replacing the whole state, which is why state is swapped wholesale.
func TestRetryResetsToLoading(t *testing.T) {
	failed := Failed(dErrors.New(dErrors.CodeInternal, "x"))
	assert.Equal(t, Loading(), failed.Retry())
}
