package http

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/light-bringer/inventory-service/internal/platform/logger"
)

const (
	headerRequestID = "X-Request-Id"
	headerTraceID   = "X-Trace-Id"

	requestIDKey = "request_id"
	traceIDKey   = "trace_id"
)

// AttachRequestContext assigns a request id (honouring an incoming one) and
// exposes the active trace id.
func AttachRequestContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := strings.TrimSpace(c.GetHeader(headerRequestID))
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(requestIDKey, reqID)
		c.Writer.Header().Set(headerRequestID, reqID)

		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			traceID := sc.TraceID().String()
			c.Set(traceIDKey, traceID)
			c.Writer.Header().Set(headerTraceID, traceID)
		}
		c.Next()
	}
}

// RequestLogger logs one line per request: 5xx at error, 4xx at warn.
func RequestLogger(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		if log == nil {
			return
		}

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		fields := []interface{}{
			"method", strings.ToUpper(c.Request.Method),
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"request_id", c.GetString(requestIDKey),
		}
		if traceID := c.GetString(traceIDKey); traceID != "" {
			fields = append(fields, "trace_id", traceID)
		}

		switch {
		case status >= 500:
			log.Error("HTTP request", fields...)
		case status >= 400:
			log.Warn("HTTP request", fields...)
		default:
			log.Info("HTTP request", fields...)
		}
	}
}

// CORS allows the configured origins; "*" allows any.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Content-Type", "Authorization", headerRequestID},
		ExposeHeaders: []string{headerRequestID, headerTraceID},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cors.New(cfg)
}
