package httpapi

import (
	"net/http"

	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

// RouterOptions toggles the optional outer layers of the router.
type RouterOptions struct {
	SwaggerEnabled         bool
	CORSAllowedOrigins     []string
	SecurityHeadersEnabled bool
	IsDevelopment          bool
}

func NewRouter(
	handler *Handler,
	resolver TokenResolver,
	logger *logging.Logger,
	opts RouterOptions,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, opts.SwaggerEnabled)
	registerAuthRoutes(mux, handler, resolver)
	registerAuthorizedRoutes(mux, handler, resolver)

	var root http.Handler = CORS(opts.CORSAllowedOrigins, recoverPanic(logger, mux))
	if opts.SecurityHeadersEnabled {
		root = SecurityHeaders(opts.IsDevelopment, root)
	}
	return RequestTracing(RequestLogging(logger, root))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec, "path", r.URL.Path)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
