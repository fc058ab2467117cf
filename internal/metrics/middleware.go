package metrics

import (
	"net/http"
	"strconv"
)

// ResponseWriterInterceptor captures the status code and body size written
// by the wrapped handler.
type ResponseWriterInterceptor struct {
	http.ResponseWriter
	StatusCode   int
	BytesWritten int
}

// NewResponseWriterInterceptor creates a new ResponseWriterInterceptor.
func NewResponseWriterInterceptor(w http.ResponseWriter) *ResponseWriterInterceptor {
	// Default to 200 OK if WriteHeader is not called.
	return &ResponseWriterInterceptor{ResponseWriter: w, StatusCode: http.StatusOK}
}

// WriteHeader captures the status code and calls the original WriteHeader.
func (rwi *ResponseWriterInterceptor) WriteHeader(code int) {
	rwi.StatusCode = code
	rwi.ResponseWriter.WriteHeader(code)
}

func (rwi *ResponseWriterInterceptor) Write(b []byte) (int, error) {
	n, err := rwi.ResponseWriter.Write(b)
	rwi.BytesWritten += n
	return n, err
}

// Middleware wraps an http.Handler to record endpoint responses.
func Middleware(next http.Handler, endpointPath string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		interceptor := NewResponseWriterInterceptor(w)
		next.ServeHTTP(interceptor, r)
		EndpointResponses.WithLabelValues(endpointPath, strconv.Itoa(interceptor.StatusCode)).Inc()
		ResponseBytes.WithLabelValues(endpointPath).Add(float64(interceptor.BytesWritten))
	})
}
