package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

// maxRequestBodyBytes bounds JSON payloads accepted by write endpoints.
const maxRequestBodyBytes = 1 << 20

type Handler struct {
	authService       *usecase.AuthService
	userService       *usecase.UserService
	groupService      *usecase.GroupService
	matchService      *usecase.MatchService
	predictionService *usecase.PredictionService
	adminService      *usecase.AdminService
	logger            *logging.Logger
	validator         *validator.Validate
}

func NewHandler(
	authService *usecase.AuthService,
	userService *usecase.UserService,
	groupService *usecase.GroupService,
	matchService *usecase.MatchService,
	predictionService *usecase.PredictionService,
	adminService *usecase.AdminService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		authService:       authService,
		userService:       userService,
		groupService:      groupService,
		matchService:      matchService,
		predictionService: predictionService,
		adminService:      adminService,
		logger:            logger,
		validator:         validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeAndValidate reads a strict JSON body into dst and runs struct validation.
func (h *Handler) decodeAndValidate(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func currentUser(ctx context.Context) (user.User, error) {
	current, ok := userFromContext(ctx)
	if !ok || current.ID == "" {
		return user.User{}, fmt.Errorf("%w: user is missing from request context", usecase.ErrUnauthenticated)
	}
	return current, nil
}
