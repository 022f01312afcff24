package feedscan_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/feedscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := feedscan.Errorf(feedscan.EUNPROCESSABLE, "malformed feed file %q", "bad.xml")

	assert.Equal(t, feedscan.EUNPROCESSABLE, feedscan.ErrorCode(err))
	assert.Equal(t, "malformed feed file \"bad.xml\"", feedscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, feedscan.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, feedscan.EINTERNAL, feedscan.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, feedscan.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", feedscan.ErrorMessage(errors.New("boom")))
}
