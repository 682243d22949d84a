package log

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

// ContextKey type for context keys
type ContextKey string

const (
	// LoggerContextKey is the context key for the logger
	LoggerContextKey ContextKey = "logger"

	ginLoggerKey = "logger"
)

// NewContext returns a copy of ctx carrying logger.
func NewContext(ctx context.Context, logger *Logger) context.Context {
	return context.WithValue(ctx, LoggerContextKey, logger)
}

// FromContext extracts a logger from the context
func FromContext(ctx context.Context) *Logger {
	if ctx != nil {
		if logger, ok := ctx.Value(LoggerContextKey).(*Logger); ok {
			return logger
		}
	}
	return &Logger{
		Logger:    slog.Default(),
		component: "unknown",
	}
}

// Middleware stores logger in both the gin context and the request context
func Middleware(logger *Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetGin(c, logger)
		c.Next()
	}
}

// SetGin replaces the logger carried by the gin context and its request.
func SetGin(c *gin.Context, logger *Logger) {
	c.Set(ginLoggerKey, logger)
	c.Request = c.Request.WithContext(NewContext(c.Request.Context(), logger))
}

// FromGin extracts the request logger from a gin context
func FromGin(c *gin.Context) *Logger {
	if v, ok := c.Get(ginLoggerKey); ok {
		if logger, ok := v.(*Logger); ok {
			return logger
		}
	}
	return FromContext(c.Request.Context())
}

// ComponentMiddleware adds component context to the request logger
func ComponentMiddleware(component string) gin.HandlerFunc {
	return func(c *gin.Context) {
		SetGin(c, FromGin(c).WithComponent(component))
		c.Next()
	}
}

// StructuredLogger provides structured logging methods with context awareness
type StructuredLogger struct {
	logger *Logger
}

// NewStructuredLogger creates a new structured logger
func NewStructuredLogger(logger *Logger) *StructuredLogger {
	return &StructuredLogger{
		logger: logger,
	}
}

// LogTransactionCreated logs successful transaction creation
func (sl *StructuredLogger) LogTransactionCreated(ctx context.Context, fields LogFields) {
	sl.logger.WithComponent(ComponentTransaction).
		InfoContext(ctx, "Transaction created successfully", fields.WithOperation(OpCreate).ToSlice()...)
}

// LogError logs an error with structured context
func (sl *StructuredLogger) LogError(ctx context.Context, msg string, err error, component string, operation string, fields LogFields) {
	if fields == nil {
		fields = NewFields()
	}
	allFields := fields.
		WithError(err).
		WithOperation(operation)

	sl.logger.WithComponent(component).ErrorContext(ctx, msg, allFields.ToSlice()...)
}
