package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaptureWriterCapsBufferNotResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	cw := &captureWriter{ResponseWriter: rec, status: http.StatusOK, limit: 10}

	body := strings.Repeat("x", 25)
	n, err := cw.Write([]byte(body))
	require.NoError(t, err)
	assert.Equal(t, 25, n)

	// The client still gets the whole body; only the capture buffer is
	// capped, and size records what actually went out.
	assert.Equal(t, body, rec.Body.String())
	assert.Equal(t, 10, cw.buf.Len())
	assert.Equal(t, int64(25), cw.size)
}

func TestCacheableSkipsOversizedAndNon200(t *testing.T) {
	assert.True(t, cacheable(http.StatusOK, 100, 1000))
	assert.True(t, cacheable(http.StatusOK, 100, 0)) // no limit

	// A body that outgrew the capture buffer is only held truncated
	// and must never be stored.
	assert.False(t, cacheable(http.StatusOK, 1001, 1000))
	assert.False(t, cacheable(http.StatusNotFound, 10, 1000))
	assert.False(t, cacheable(http.StatusInternalServerError, 10, 1000))
}

func TestPayloadRoundTrip(t *testing.T) {
	hdr := http.Header{"Content-Type": []string{"application/json"}}
	payload, err := encodePayload(http.StatusOK, hdr, []byte(`{"ok":true}`))
	require.NoError(t, err)

	status, gotHdr, body, ok := decodePayload(payload)
	require.True(t, ok)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, hdr, gotHdr)
	assert.Equal(t, `{"ok":true}`, string(body))

	_, _, _, ok = decodePayload([]byte("short"))
	assert.False(t, ok)
}
