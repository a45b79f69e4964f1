package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	apperrors "github.com/chainsafe/interchain-gateway/pkg/app/errors"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"ok", nil, http.StatusOK, ""},
		{"not found", apperrors.ResourceNotFoundError(nil, "message not found"), http.StatusNotFound, `{"error":"message not found","code":404}`},
		{"dependency", apperrors.DependencyFailureError(errors.New("dial"), "failed to query verifier"), http.StatusBadGateway, `{"error":"failed to query verifier","code":502}`},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError, `{"error":"Unexpected Service Error","code":500}`},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h := HandleError(func(w http.ResponseWriter, _ *http.Request) error {
				if tc.err == nil {
					w.WriteHeader(http.StatusOK)
				}
				return tc.err
			})
			rec := httptest.NewRecorder()
			h(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tc.wantCode, rec.Code)
			if tc.wantBody != "" {
				assert.JSONEq(t, tc.wantBody, rec.Body.String())
			}
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"sui"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "sui", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	err := DecodeJSON(req, &v)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))

	big := `{"name":"` + strings.Repeat("a", MaxBodySize) + `"}`
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(big))
	err = DecodeJSON(req, &v)
	assert.True(t, apperrors.Is(err, apperrors.CategoryDataError))
}

func TestRequestID(t *testing.T) {
	var seen string
	h := RequestID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "abc")
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, "abc", seen)
	assert.Equal(t, "abc", rec.Header().Get(HeaderRequestID))
}

func TestAccessLog(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := RequestID(AccessLog(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/fail" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte("ok"))
	})))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ok", nil))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/fail", nil))

	entries := logs.AllUntimed()
	require.Len(t, entries, 2)
	assert.Equal(t, "HTTP request", entries[0].Message)
	assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status"])
	assert.Equal(t, "HTTP request failed", entries[1].Message)
	assert.Equal(t, int64(http.StatusInternalServerError), entries[1].ContextMap()["status"])
}
