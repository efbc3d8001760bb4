package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// injectLogger puts zerolog.Logger into request context the same way
// withTraceID middleware does (via zerolog/log.Ctx).
func injectLogger(r *http.Request, l zerolog.Logger) *http.Request {
	return r.WithContext(l.WithContext(r.Context()))
}

func TestWithLogging_TableTest(t *testing.T) {
	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		handlerStatus    int
		handlerResponse  string
		checkLogContains []string
	}{
		{
			name:            "GET 200",
			method:          http.MethodGet,
			path:            "/scholarships",
			handlerStatus:   http.StatusOK,
			handlerResponse: "[]",
			checkLogContains: []string{
				`"method":"GET"`,
				`"uri":"/scholarships"`,
				`"status":200`,
				`"duration":`,
				`"size":2`,
			},
		},
		{
			name:            "POST with body",
			method:          http.MethodPost,
			path:            "/reviews",
			body:            `{"rating":5}`,
			handlerStatus:   http.StatusOK,
			handlerResponse: "{}",
			checkLogContains: []string{
				`"method":"POST"`,
				`"body":"{\"rating\":5}"`,
			},
		},
		{
			name:          "query parameters",
			method:        http.MethodGet,
			path:          "/reviews/myReviews?email=a@x.com",
			handlerStatus: http.StatusOK,
			checkLogContains: []string{
				`"uri":"/reviews/myReviews?email=a@x.com"`,
				`"query":{"email":["a@x.com"]}`,
			},
		},
		{
			name:          "error status",
			method:        http.MethodDelete,
			path:          "/reviews/1",
			handlerStatus: http.StatusBadRequest,
			checkLogContains: []string{
				`"status":400`,
				`"size":0`,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var logBuf bytes.Buffer
			var seenBody string

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				b, _ := io.ReadAll(r.Body)
				seenBody = string(b)
				w.WriteHeader(tt.handlerStatus)
				if tt.handlerResponse != "" {
					_, _ = w.Write([]byte(tt.handlerResponse))
				}
			})

			var body io.Reader
			if tt.body != "" {
				body = strings.NewReader(tt.body)
			}
			req := httptest.NewRequest(tt.method, tt.path, body)
			req = injectLogger(req, zerolog.New(&logBuf))
			rr := httptest.NewRecorder()

			withLogging(next).ServeHTTP(rr, req)

			assert.Equal(t, tt.handlerStatus, rr.Code)
			assert.Equal(t, tt.body, seenBody, "handler must still see the whole body")

			logOutput := logBuf.String()
			for _, expected := range tt.checkLogContains {
				assert.Contains(t, logOutput, expected)
			}
		})
	}
}

func TestWithLogging_PathParams(t *testing.T) {
	var logBuf bytes.Buffer

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, injectLogger(r, zerolog.New(&logBuf)))
		})
	})
	router.Use(withLogging)
	router.Get("/users/admin/{email}", func(w http.ResponseWriter, r *http.Request) {})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/users/admin/a@x.com", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, logBuf.String(), `"params":{"email":"a@x.com"}`)
}

func TestWithLogging_LongBodyIsTruncatedInLogOnly(t *testing.T) {
	var logBuf bytes.Buffer
	long := strings.Repeat("x", maxLoggedBody+100)
	var seen int

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		seen = len(b)
	})

	req := injectLogger(httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(long)), zerolog.New(&logBuf))
	withLogging(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, len(long), seen)
	assert.NotContains(t, logBuf.String(), long)
}
