package http

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/MKhiriev/scholarship-portal/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// maxLoggedBody caps how much of a request body ends up in the access log.
const maxLoggedBody = 4 << 10

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()

		uri := r.RequestURI
		method := r.Method
		body := peekBody(r)

		lw := &responseWriter{
			ResponseWriter: w,
		}

		next.ServeHTTP(lw, r)

		duration := time.Since(start)

		event := log.Info().
			Str("uri", uri).
			Str("method", method).
			Any("query", r.URL.Query()).
			Dict("params", routeParams(r)).
			Int("status", lw.status).
			Dur("duration", duration).
			Int("size", lw.size)
		if len(body) > 0 {
			event = event.Bytes("body", body)
		}
		event.Send()
	})
}

// peekBody reads up to maxLoggedBody bytes of the request body and puts them
// back so the handler still sees the whole body.
func peekBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}

	head, err := io.ReadAll(io.LimitReader(r.Body, maxLoggedBody))
	if err != nil {
		return nil
	}
	r.Body = readCloser{
		Reader: io.MultiReader(bytes.NewReader(head), r.Body),
		Closer: r.Body,
	}

	return head
}

type readCloser struct {
	io.Reader
	io.Closer
}

// routeParams returns the path parameters chi matched for r. It is only
// meaningful after the router has served the request.
func routeParams(r *http.Request) *zerolog.Event {
	params := zerolog.Dict()

	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return params
	}
	for i, key := range rctx.URLParams.Keys {
		if key == "*" || i >= len(rctx.URLParams.Values) {
			continue
		}
		params.Str(key, rctx.URLParams.Values[i])
	}

	return params
}
