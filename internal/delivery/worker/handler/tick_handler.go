package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"athan/config"
	deliverycontext "athan/internal/delivery/context"
	"athan/internal/delivery/worker/response"
	"athan/internal/domain/constants"
	"athan/internal/domain/entity"
	domainerrors "athan/internal/domain/errors"
	"athan/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenValidator matches idtoken.Validate
type tokenValidator func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

// TickHandler triggers a dispatch tick from an HTTP scheduler call
type TickHandler struct {
	verifyAuth  bool
	audience    string
	logger      *slog.Logger
	dispatchSvc usecase.DispatchUsecase
	validate    tokenValidator
}

// TickHandlerParams holds dependencies for the TickHandler
type TickHandlerParams struct {
	fx.In

	Config      *config.Config
	Logger      *slog.Logger
	DispatchSvc usecase.DispatchUsecase
}

// NewTickHandler creates a new tick trigger handler
func NewTickHandler(params TickHandlerParams) *TickHandler {
	return &TickHandler{
		verifyAuth:  params.Config.Scheduler.VerifyAuth,
		audience:    params.Config.Scheduler.Audience,
		logger:      params.Logger,
		dispatchSvc: params.DispatchSvc,
		validate:    idtoken.Validate,
	}
}

// HandleTick runs one tick and maps its result to a status the scheduler understands:
// 200 with the report, 409 when another tick holds the lock, 503 when it aborted.
func (h *TickHandler) HandleTick(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	if h.verifyAuth {
		if err := h.verifyTriggerToken(c.Request()); err != nil {
			logger.Warn("[Worker] Invalid tick trigger token", slog.Any("error", err))

			return response.HandleAppError(c, domainerrors.ErrUnauthorizedTrigger, nil)
		}
	}

	// RunTick scopes its own logger with the tick ID.
	tickID := uuid.New().String()
	ctx = deliverycontext.WithTickID(ctx, tickID)
	c.SetRequest(c.Request().WithContext(ctx))

	logger.Debug("[Worker] Tick triggered",
		slog.String(constants.LogKeyTickID, tickID),
		slog.String("job", c.Request().Header.Get(deliverycontext.HeaderCloudSchedulerJob)),
	)

	report, err := h.dispatchSvc.RunTick(ctx)
	if err != nil {
		return response.HandleAppError(c, domainerrors.ErrTickAborted.WrapMessage(err.Error()), report)
	}

	if report != nil && report.Skipped == entity.TickSkippedLocked {
		return response.HandleAppError(c, domainerrors.ErrTickInProgress, report)
	}

	return response.Success(c, http.StatusOK, report)
}

// verifyTriggerToken validates the OIDC token Cloud Scheduler attaches to HTTP targets
func (h *TickHandler) verifyTriggerToken(req *http.Request) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	audience := h.audience
	if audience == "" {
		scheme := "https"
		if req.TLS == nil {
			scheme = "http"
		}
		audience = fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
	}

	payload, err := h.validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
