package http

import "net/http"

// responseWriter decorates http.ResponseWriter to record what the handler
// wrote: the status code, the running byte count and the last body chunk.
// The access-log middleware reads these after the handler returns.
//
// WriteHeader is forwarded to the underlying writer at most once; later
// calls are ignored, matching the http.ResponseWriter contract.
type responseWriter struct {
	http.ResponseWriter

	// status is the code from the first WriteHeader call; zero until then.
	status int

	wroteHeader bool

	// size accumulates bytes written across all Write calls.
	size int

	// body is the slice passed to the most recent Write call only, not a
	// concatenation of the whole response.
	body []byte
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write forwards to the underlying writer, implicitly sending a 200 header
// first when the handler never called WriteHeader.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	w.body = b
	return n, err
}
