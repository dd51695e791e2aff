package httpx

import (
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNetworkError(t *testing.T) {
	err := fmt.Errorf("lookup: %w", &NetworkError{Op: "fetch", URL: "https://example.test/a", Err: io.ErrUnexpectedEOF})

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
	assert.Equal(t, "fetch", netErr.Op)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.Equal(t, "lookup: fetch https://example.test/a: unexpected EOF", err.Error())
}

func TestNewClient(t *testing.T) {
	assert.Equal(t, DefaultTimeout, NewClient(0).Timeout)
	assert.Equal(t, 5*time.Second, NewClient(5*time.Second).Timeout)
}
