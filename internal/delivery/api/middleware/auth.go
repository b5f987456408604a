package middleware

import (
	"log/slog"
	"strings"

	"tasker/config"
	deliverycontext "tasker/internal/delivery/context"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/repository"
	"tasker/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	bearerPrefix = "Bearer "
	keyUserID    = "userID"
)

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
	UserRepo     repository.UserRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// AuthMiddleware guards routes with a bearer access token.
type AuthMiddleware struct {
	tokenSvc         service.TokenService
	userRepo         repository.UserRepository
	verifyUserExists bool
	logger           *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	verify := params.Config != nil && params.Config.Auth != nil && params.Config.Auth.VerifyUserExists

	return &AuthMiddleware{
		tokenSvc:         params.TokenService,
		userRepo:         params.UserRepo,
		verifyUserExists: verify,
		logger:           params.Logger,
	}
}

// Authenticate validates the bearer token and exposes its user id to the
// handlers. Every rejection returns the same error so callers cannot tell the
// causes apart.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		logger := deliverycontext.GetLoggerOrDefault(ctx, m.logger)

		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
		if !ok || strings.TrimSpace(tokenString) == "" {
			logger.Debug("Rejected request without bearer token")

			return domainerrors.ErrNotAuthorized
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimSpace(tokenString))
		if err != nil {
			logger.Debug("Rejected invalid token", slog.Any("error", err))

			return domainerrors.ErrNotAuthorized
		}

		if m.verifyUserExists {
			if _, err := m.userRepo.FindByID(ctx, claims.UserID); err != nil {
				if !errors.Is(err, repository.ErrUserNotFound) {
					logger.Error("Failed to verify token subject", slog.Any("error", err))
				}

				return domainerrors.ErrNotAuthorized
			}
		}

		SetUserID(c, claims.UserID)
		ctx = deliverycontext.WithUserID(ctx, claims.UserID)
		ctx = deliverycontext.WithLogger(ctx, logger.With(slog.String("user_id", claims.UserID)))
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// SetUserID stores the authenticated user id on the echo context.
func SetUserID(c echo.Context, userID string) {
	c.Set(keyUserID, userID)
}

// GetUserID returns the user id stored by Authenticate.
func GetUserID(c echo.Context) (string, bool) {
	userID, ok := c.Get(keyUserID).(string)

	return userID, ok && userID != ""
}
