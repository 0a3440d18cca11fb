package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/middleware"
)

// logBodyLimit is how much of a request or response body ends up in a log
// line. The rest still reaches the handler or the client.
const logBodyLimit = 4 << 10

const redacted = "[FILTERED]"

// redactedKeys match any header or JSON key containing them, case-insensitively.
var redactedKeys = []string{
	"password",
	"token",
	"authorization",
	"secret",
	"credential",
	"bank_details",
	"address",
	"dob",
}

func isRedacted(key string) bool {
	key = strings.ToLower(key)
	for _, k := range redactedKeys {
		if strings.Contains(key, k) {
			return true
		}
	}
	return false
}

// LoggingMiddleware logs each request and its response with personal and
// credential fields masked.
func LoggingMiddleware(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqLogger := logger.With("request_id", middleware.GetReqID(r.Context()))

			head := peekBody(r)
			reqLogger.Info("incoming request",
				"method", r.Method,
				"path", r.URL.Path,
				"query", r.URL.RawQuery,
				"remote_addr", r.RemoteAddr,
				"user_agent", r.UserAgent(),
				"headers", redactHeaders(r.Header),
				"body", redactBody(head),
			)

			rec := &recorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= http.StatusInternalServerError:
				level = slog.LevelError
			case rec.status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}
			reqLogger.Log(r.Context(), level, "response",
				"method", r.Method,
				"path", r.URL.Path,
				"status_code", rec.status,
				"duration_ms", time.Since(start).Milliseconds(),
				"response_size", rec.size,
				"body", redactBody(rec.head.Bytes()),
			)
		})
	}
}

// peekBody reads at most logBodyLimit bytes and puts them back in front of
// the unread remainder. Size limits applied to r.Body keep working.
func peekBody(r *http.Request) []byte {
	if r.Body == nil || r.Body == http.NoBody {
		return nil
	}
	head, _ := io.ReadAll(io.LimitReader(r.Body, logBodyLimit))
	r.Body = struct {
		io.Reader
		io.Closer
	}{io.MultiReader(bytes.NewReader(head), r.Body), r.Body}
	return head
}

// recorder keeps the status, the size and the first logBodyLimit bytes of
// the response.
type recorder struct {
	http.ResponseWriter
	status int
	size   int
	head   bytes.Buffer
}

func (rec *recorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *recorder) Write(b []byte) (int, error) {
	if room := logBodyLimit - rec.head.Len(); room > 0 {
		rec.head.Write(b[:min(room, len(b))])
	}
	n, err := rec.ResponseWriter.Write(b)
	rec.size += n
	return n, err
}

func redactHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for name, values := range headers {
		if isRedacted(name) {
			out[name] = redacted
			continue
		}
		out[name] = strings.Join(values, ", ")
	}
	return out
}

// redactBody masks redacted keys at any depth of a JSON body. Text that is
// not JSON, including a body cut at logBodyLimit, is dropped whole when it
// mentions a redacted key.
func redactBody(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		text := string(body)
		for _, k := range redactedKeys {
			if strings.Contains(strings.ToLower(text), k) {
				return "[FILTERED - Contains sensitive data]"
			}
		}
		return text
	}

	out, err := json.Marshal(redactValue(doc))
	if err != nil {
		return "[ERROR - Failed to marshal filtered JSON]"
	}
	return string(out)
}

func redactValue(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if isRedacted(k) {
				out[k] = redacted
				continue
			}
			out[k] = redactValue(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = redactValue(val)
		}
		return out
	default:
		return v
	}
}
