package middleware

import (
	"log/slog"
	"time"

	"athan/config"
	deliverycontext "athan/internal/delivery/context"
	"athan/internal/domain/constants"

	"github.com/labstack/echo/v4"
)

// LoggerMiddleware logs trigger requests; probe endpoints are logged only in debug mode
type LoggerMiddleware struct {
	logger *slog.Logger
	debug  bool
	quiet  map[string]struct{}
}

// NewLoggerMiddleware creates a new logger middleware
func NewLoggerMiddleware(logger *slog.Logger, config *config.Config) *LoggerMiddleware {
	return &LoggerMiddleware{
		logger: logger,
		debug:  config.Env.Debug,
		quiet: map[string]struct{}{
			"/health":  {},
			"/metrics": {},
		},
	}
}

// Handle processes request logging
func (m *LoggerMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if _, ok := m.quiet[c.Request().URL.Path]; ok && !m.debug {
			return next(c)
		}

		start := time.Now()
		err := next(c)
		m.logRequest(c, start, err)

		return err
	}
}

func (m *LoggerMiddleware) logRequest(c echo.Context, start time.Time, err error) {
	req := c.Request()
	res := c.Response()

	fields := []slog.Attr{
		slog.String("method", req.Method),
		slog.String("uri", req.URL.Path),
		slog.Int("status", res.Status),
		slog.Duration("latency", time.Since(start)),
		slog.String("remote_ip", c.RealIP()),
		slog.String("user_agent", req.UserAgent()),
	}

	if tickID := deliverycontext.GetTickID(req.Context()); tickID != "" {
		fields = append(fields, slog.String(constants.LogKeyTickID, tickID))
	}
	if job := req.Header.Get(deliverycontext.HeaderCloudSchedulerJob); job != "" {
		fields = append(fields, slog.String("scheduler_job", job))
	}
	if err != nil {
		fields = append(fields, slog.Any("error", err))
	}

	logLevel := slog.LevelInfo
	if res.Status >= 400 {
		logLevel = slog.LevelWarn
	}
	if res.Status >= 500 {
		logLevel = slog.LevelError
	}

	// The request-scoped logger already carries request_id.
	logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)
	logger.LogAttrs(req.Context(), logLevel, "HTTP Request", fields...)
}
