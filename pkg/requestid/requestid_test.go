package requestid_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apkdrop/pkg/requestid"
)

func TestMiddleware(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "no header", incoming: "", keep: false},
		{name: "valid header", incoming: "abc-123_XYZ", keep: true},
		{name: "invalid characters", incoming: "abc 123;drop", keep: false},
		{name: "too long", incoming: strings.Repeat("a", 129), keep: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var fromCtx string
			h := requestid.Middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				fromCtx = requestid.FromContext(r.Context())
			}))

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.incoming != "" {
				req.Header.Set(requestid.Header, tc.incoming)
			}
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)

			got := rec.Header().Get(requestid.Header)
			assert.Equal(t, got, fromCtx)
			if tc.keep {
				assert.Equal(t, tc.incoming, got)
				return
			}
			_, err := uuid.Parse(got)
			assert.NoError(t, err)
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	id, err := uuid.Parse(requestid.New())
	require.NoError(t, err)
	assert.Equal(t, uuid.Version(7), id.Version())
	assert.NotEqual(t, requestid.New(), requestid.New())
}

func TestLoggerExtractor(t *testing.T) {
	t.Parallel()

	ex := requestid.LoggerExtractor()
	_, ok := ex(context.Background())
	assert.False(t, ok)

	attr, ok := ex(requestid.WithContext(context.Background(), "rid"))
	assert.True(t, ok)
	assert.Equal(t, "request_id", attr.Key)
	assert.Equal(t, "rid", attr.Value.String())
	assert.Empty(t, requestid.FromContext(nil)) //nolint:staticcheck
}
