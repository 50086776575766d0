package jobcrawl_test

import (
	"errors"
	"testing"

	"github.com/dabrock/jobcrawl"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := jobcrawl.Errorf(jobcrawl.EINVALID, "invalid URL: %q", "not-a-url")

	assert.Equal(t, jobcrawl.EINVALID, jobcrawl.ErrorCode(err))
	assert.Equal(t, "invalid URL: \"not-a-url\"", jobcrawl.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobcrawl.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jobcrawl.EINTERNAL, jobcrawl.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobcrawl.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", jobcrawl.ErrorMessage(errors.New("boom")))
}
