package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/prediction-league/internal/config"
	"github.com/riskibarqy/prediction-league/internal/domain/group"
	"github.com/riskibarqy/prediction-league/internal/domain/match"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/credential"
	repocache "github.com/riskibarqy/prediction-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/prediction-league/internal/interfaces/httpapi"
	basecache "github.com/riskibarqy/prediction-league/internal/platform/cache"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

const dbPingTimeout = 5 * time.Second

// Repositories is the Entity Store selected by STORE_BACKEND.
type Repositories struct {
	Users       user.Repository
	Groups      group.Repository
	Matches     match.Repository
	Predictions prediction.Repository

	close func() error
}

// Close releases the backing database handle, if any.
func (r Repositories) Close() error {
	if r.close == nil {
		return nil
	}
	return r.close()
}

// OpenRepositories builds the configured store and loads the demo dataset when STORE_SEED is on.
// User lookups are served through a read cache when USER_CACHE_TTL is positive.
func OpenRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, err := openStore(ctx, cfg, logger)
	if err != nil {
		return Repositories{}, err
	}
	if cfg.UserCacheTTL > 0 {
		repos.Users = repocache.NewUserRepository(repos.Users, basecache.NewStore[user.User](cfg.UserCacheTTL))
	}
	return repos, nil
}

func openStore(ctx context.Context, cfg config.Config, logger *logging.Logger) (Repositories, error) {
	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return Repositories{}, err
		}
		repos := Repositories{
			Users:       postgres.NewUserRepository(db),
			Groups:      postgres.NewGroupRepository(db),
			Matches:     postgres.NewMatchRepository(db),
			Predictions: postgres.NewPredictionRepository(db),
			close:       db.Close,
		}
		if cfg.StoreSeed {
			hash, err := seedPasswordHash(cfg)
			if err != nil {
				_ = db.Close()
				return Repositories{}, err
			}
			if err := postgres.BootstrapSeed(ctx, db, hash, time.Now()); err != nil {
				_ = db.Close()
				return Repositories{}, fmt.Errorf("seed postgres store: %w", err)
			}
			logger.Info("postgres store seeded")
		}
		logger.Info("store ready", "backend", config.StorePostgres, "db", dbNameFromURL(cfg.DBURL))
		return repos, nil
	default:
		store := memory.NewStore()
		if cfg.StoreSeed {
			hash, err := seedPasswordHash(cfg)
			if err != nil {
				return Repositories{}, err
			}
			if err := store.Seed(ctx, hash, time.Now()); err != nil {
				return Repositories{}, fmt.Errorf("seed memory store: %w", err)
			}
			logger.Info("memory store seeded")
		}
		logger.Info("store ready", "backend", config.StoreMemory)
		return Repositories{
			Users:       store.Users,
			Groups:      store.Groups,
			Matches:     store.Matches,
			Predictions: store.Predictions,
		}, nil
	}
}

func seedPasswordHash(cfg config.Config) (string, error) {
	hash, err := credential.NewBcryptHasher(cfg.AuthBcryptCost).Hash(memory.SeedPassword)
	if err != nil {
		return "", fmt.Errorf("hash seed password: %w", err)
	}
	return hash, nil
}

func openPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dbURL := normalizeDBURL(cfg.DBURL, cfg.DBBinaryParameters)
	db, err := otelsqlx.Open("postgres", dbURL,
		otelsql.WithDBName(dbNameFromURL(dbURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxOpenConns)
	db.SetMaxIdleConns(cfg.DBMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: ping postgres: %v", usecase.ErrDependencyUnavailable, err)
	}
	return db, nil
}

// Services bundles the usecase layer built over one store.
type Services struct {
	Auth        *usecase.AuthService
	Users       *usecase.UserService
	Groups      *usecase.GroupService
	Matches     *usecase.MatchService
	Predictions *usecase.PredictionService
	Admin       *usecase.AdminService
}

func NewServices(cfg config.Config, repos Repositories) Services {
	ids := idgen.NewUUIDGenerator()
	guard := usecase.NewRoleGuard(cfg.AuthEnforceAdminRoles)
	hasher := credential.NewBcryptHasher(cfg.AuthBcryptCost)
	tokens := credential.NewJWTIssuer(cfg.AuthJWTSecret, cfg.AuthTokenTTL, cfg.ServiceName)

	return Services{
		Auth:  usecase.NewAuthService(repos.Users, hasher, tokens, ids),
		Users: usecase.NewUserService(repos.Users),
		Groups: usecase.NewGroupService(repos.Groups, ids, idgen.NewRandomCodeGenerator(), usecase.GroupServiceConfig{
			InviteCodeLength:      cfg.GroupInviteCodeLength,
			InviteCodeMaxAttempts: cfg.GroupInviteCodeMaxAttempts,
			InviteLinkBaseURL:     cfg.InviteLinkBaseURL,
		}),
		Matches:     usecase.NewMatchService(repos.Matches, repos.Predictions, guard, ids),
		Predictions: usecase.NewPredictionService(repos.Matches, repos.Predictions, ids),
		Admin:       usecase.NewAdminService(repos.Users, repos.Groups, repos.Matches, repos.Predictions, guard),
	}
}

// NewHTTPServer wires the router over the configured store. The returned
// Repositories must be closed after the server stops.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, Repositories, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, Repositories{}, fmt.Errorf("http server addr cannot be empty")
	}

	repos, err := OpenRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, Repositories{}, err
	}

	services := NewServices(cfg, repos)
	handler := httpapi.NewHandler(
		services.Auth,
		services.Users,
		services.Groups,
		services.Matches,
		services.Predictions,
		services.Admin,
		logger,
	)
	router := httpapi.NewRouter(handler, services.Auth, logger, httpapi.RouterOptions{
		SwaggerEnabled:         cfg.SwaggerEnabled,
		CORSAllowedOrigins:     cfg.CORSAllowedOrigins,
		SecurityHeadersEnabled: cfg.SecurityHeadersEnabled,
		IsDevelopment:          cfg.AppEnv == config.EnvDev,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return server, repos, nil
}
