package http

import (
	"net/http"

	"github.com/MKhiriev/scholarship-portal/internal/utils"
	"github.com/rs/zerolog"
)

const (
	traceIDHeader   = "X-Trace-ID"
	requestIDHeader = "X-Request-ID"

	// maxTraceIDLength bounds client supplied ids that end up in every log line.
	maxTraceIDLength = 128
)

var traceIDs = utils.NewUUIDGenerator()

// withTraceID attaches a child logger carrying trace_id to the request and
// echoes the id in the X-Trace-ID response header. The id is taken from
// X-Trace-ID, then X-Request-ID, and generated when neither is usable.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := incomingTraceID(r)
		if traceID == "" {
			traceID = traceIDs.Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func incomingTraceID(r *http.Request) string {
	for _, header := range []string{traceIDHeader, requestIDHeader} {
		id := r.Header.Get(header)
		if id != "" && len(id) <= maxTraceIDLength {
			return id
		}
	}
	return ""
}
