package handlers

import (
	"compress/gzip"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/9ssi7/nanoid"
)

type (
	responseData struct {
		status int
		size   int
	}

	loggingResponseWriter struct {
		http.ResponseWriter
		responseData *responseData
	}
)

// Write overrides the Write method of the http.ResponseWriter interface and
// records the size of the written response for logging.
func (r *loggingResponseWriter) Write(b []byte) (int, error) {
	size, err := r.ResponseWriter.Write(b)
	r.responseData.size += size
	return size, err
}

// WriteHeader overrides the WriteHeader method of the http.ResponseWriter
// interface and records the status code for logging.
func (r *loggingResponseWriter) WriteHeader(statusCode int) {
	r.ResponseWriter.WriteHeader(statusCode)
	r.responseData.status = statusCode
}

// gzipWriter wraps http.ResponseWriter to support gzip response compression.
type gzipWriter struct {
	http.ResponseWriter
	Writer io.Writer
}

// Write writes compressed data to the HTTP response.
func (w gzipWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

// respondJSON writes v as a JSON response body with the given status.
func respondJSON(res http.ResponseWriter, status int, v any) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(status)
	_ = json.NewEncoder(res).Encode(v)
}

// errorJSON writes a JSON error body carrying a human-readable detail message.
func errorJSON(res http.ResponseWriter, detail string, status int) {
	respondJSON(res, status, map[string]string{"detail": detail})
}

// newRequestID generates a short identifier attached to request log lines.
func newRequestID() string {
	id, _ := nanoid.New()
	return id
}

// LoggingMiddleware logs method, URI, status, size, and duration of each
// request under a per-request ID.
func (con *Controller) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		start := time.Now()

		rd := &responseData{}
		lw := loggingResponseWriter{
			ResponseWriter: res,
			responseData:   rd,
		}

		next.ServeHTTP(&lw, req)

		con.sugar.Infoln(
			"request_id", newRequestID(),
			"method", req.Method,
			"uri", req.RequestURI,
			"status", rd.status,
			"size", rd.size,
			"duration", time.Since(start),
		)
	})
}

// GzipEncodeMiddleware compresses the response when the client accepts gzip.
// File attachments are passed through untouched.
func (con *Controller) GzipEncodeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		if !strings.Contains(req.Header.Get("Accept-Encoding"), "gzip") || servesAttachment(req) {
			next.ServeHTTP(res, req)
			return
		}

		gz := gzip.NewWriter(res)
		defer func() {
			if err := gz.Close(); err != nil {
				con.sugar.Errorf("gzip close error: %s", err.Error())
			}
		}()

		res.Header().Set("Content-Encoding", "gzip")
		next.ServeHTTP(gzipWriter{ResponseWriter: res, Writer: gz}, req)
	})
}

// servesAttachment reports whether the request will answer with a file
// attachment, which must not be wrapped in gzip.
func servesAttachment(req *http.Request) bool {
	if strings.HasPrefix(req.URL.Path, "/download/") {
		return true
	}
	if req.URL.Path == "/" || req.URL.Path == "/export" {
		mode := req.URL.Query().Get("mode")
		return mode == "" || mode == "file"
	}
	return false
}

// PanicRecoveryMiddleware converts handler panics into a 500 response.
func (con *Controller) PanicRecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(res http.ResponseWriter, req *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				con.sugar.Errorf("panic recovered: %v", rec)
				errorJSON(res, "Internal Server Error", http.StatusInternalServerError)
			}
		}()
		next.ServeHTTP(res, req)
	})
}
