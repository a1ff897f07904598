package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-blog/internal/logger"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestHandler returns a Handler with a nop logger and nothing else.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func executeWithTraceID(h *Handler, incoming string) (*httptest.ResponseRecorder, *http.Request) {
	var captured *http.Request
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = r
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}

	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr, captured
}

func TestWithTraceID(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		wantSame bool
	}{
		{name: "incoming id is reused", incoming: "my-custom-trace-id", wantSame: true},
		{name: "uuid is reused", incoming: "550e8400-e29b-41d4-a716-446655440000", wantSame: true},
		{name: "missing id is generated", incoming: ""},
		{name: "id with spaces is replaced", incoming: "bad trace id"},
		{name: "overlong id is replaced", incoming: strings.Repeat("a", maxTraceIDLength+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr, req := executeWithTraceID(newTestHandler(), tt.incoming)

			require.NotNil(t, req, "next handler must be called")
			assert.Equal(t, http.StatusOK, rr.Code)

			got := rr.Header().Get(traceIDHeader)
			if tt.wantSame {
				assert.Equal(t, tt.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err, "generated trace id must be a uuid, got %q", got)
		})
	}
}

func TestWithTraceID_ContextLogger(t *testing.T) {
	_, req := executeWithTraceID(newTestHandler(), "trace-1")

	require.NotNil(t, req)
	assert.NotNil(t, logger.FromRequest(req))
}

func TestWithTraceID_UniquePerRequest(t *testing.T) {
	h := newTestHandler()
	seen := make(map[string]struct{})

	for range 20 {
		rr, _ := executeWithTraceID(h, "")
		id := rr.Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "trace id %q generated twice", id)
		seen[id] = struct{}{}
	}
}

func TestValidTraceID(t *testing.T) {
	assert.True(t, validTraceID("abc-123"))
	assert.True(t, validTraceID(strings.Repeat("x", maxTraceIDLength)))
	assert.False(t, validTraceID(""))
	assert.False(t, validTraceID("line\nbreak"))
	assert.False(t, validTraceID("юникод"))
}
