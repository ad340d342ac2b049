package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tripcraft/pkg/utils"
)

const TraceIDHeader = "X-Trace-ID"

// TraceIDMiddleware tags each request with a trace id, reusing the caller's
// X-Trace-ID when it is a valid UUID.
func TraceIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		traceID := c.GetHeader(TraceIDHeader)
		if _, err := uuid.Parse(traceID); err != nil {
			traceID = uuid.New().String()
		}
		c.Set("trace_id", traceID)
		c.Request = c.Request.WithContext(utils.ContextWithTraceID(c.Request.Context(), traceID))
		c.Writer.Header().Set(TraceIDHeader, traceID)
		c.Next()
	}
}
