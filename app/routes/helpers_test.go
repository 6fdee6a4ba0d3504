package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"bloghub/app/config"
	"bloghub/app/repositories"
	"bloghub/app/validation"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

// admin:qwerty
const authHeader = "Basic YWRtaW46cXdlcnR5"

type testServer struct {
	t       *testing.T
	handler http.Handler
	store   *repositories.Store
}

func testConfig() *config.Config {
	return &config.Config{
		HTTP: config.HTTPConfig{Addr: ":0", ReadTimeout: time.Second, WriteTimeout: time.Second},
		Auth: config.AuthConfig{Username: "admin", Password: "qwerty"},
		Log:  config.LogConfig{Level: "debug"},
	}
}

func newTestServer(t *testing.T, configure ...func(*config.Config)) *testServer {
	t.Helper()

	cfg := testConfig()
	for _, fn := range configure {
		fn(cfg)
	}

	store, err := repositories.NewStore("", nil)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	handler, err := NewRouter(Dependencies{
		Store:    store,
		Config:   cfg,
		Logger:   zerolog.Nop(),
		Registry: prometheus.NewRegistry(),
	})
	require.NoError(t, err)

	return &testServer{t: t, handler: handler, store: store}
}

func (s *testServer) do(method, path, body string, authorized bool) *httptest.ResponseRecorder {
	s.t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	if authorized {
		req.Header.Set("Authorization", authHeader)
	}

	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}

func (s *testServer) get(path string) *httptest.ResponseRecorder {
	return s.do(http.MethodGet, path, "", false)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func list[T any](t *testing.T, s *testServer, path string) []T {
	t.Helper()
	w := s.get(path)
	require.Equal(t, http.StatusOK, w.Code)
	return decode[[]T](t, w)
}

func assertViolations(t *testing.T, w *httptest.ResponseRecorder, want ...validation.Violation) {
	t.Helper()
	require.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
	got := decode[validation.Errors](t, w)
	assert.Equal(t, want, got.Messages)
}

func violation(field, message string) validation.Violation {
	return validation.Violation{Message: message, Field: field}
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}

// rawField returns the raw JSON of a top-level field in body.
func rawField(t *testing.T, body []byte, field string) []byte {
	t.Helper()
	result := gjson.GetBytes(body, field)
	require.True(t, result.Exists(), "field %s missing", field)
	return []byte(result.Raw)
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.handler.ServeHTTP(w, req)
	return w
}
