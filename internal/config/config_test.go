package config

import (
	"testing"
	"time"
)

func TestLoad_AppEnvValidation(t *testing.T) {
	t.Setenv("APP_ENV", "invalid")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid APP_ENV")
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("AUTH_JWT_SECRET", "")
	t.Setenv("AUTH_TOKEN_TTL", "")
	t.Setenv("GROUP_INVITE_CODE_LENGTH", "")
	t.Setenv("GROUP_INVITE_CODE_MAX_ATTEMPTS", "")
	t.Setenv("INVITE_LINK_BASE_URL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreBackend != StoreMemory {
		t.Fatalf("expected memory store by default, got %q", cfg.StoreBackend)
	}
	if !cfg.StoreSeed {
		t.Fatalf("expected memory store to be seeded in dev by default")
	}
	if cfg.AuthTokenTTL != 30*time.Minute {
		t.Fatalf("unexpected token ttl: %s", cfg.AuthTokenTTL)
	}
	if cfg.AuthJWTSecret == "" {
		t.Fatalf("expected dev jwt secret fallback")
	}
	if cfg.GroupInviteCodeLength != 8 || cfg.GroupInviteCodeMaxAttempts != 5 {
		t.Fatalf("unexpected invite code settings: length=%d attempts=%d", cfg.GroupInviteCodeLength, cfg.GroupInviteCodeMaxAttempts)
	}
	if cfg.InviteLinkBaseURL != "http://localhost:3000" {
		t.Fatalf("unexpected invite link base url: %q", cfg.InviteLinkBaseURL)
	}
	if cfg.AuthEnforceAdminRoles {
		t.Fatalf("expected admin role enforcement disabled by default")
	}
}

func TestLoad_ProdRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_ENV", EnvProd)
	t.Setenv("AUTH_JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when AUTH_JWT_SECRET is empty in prod")
	}
}

func TestLoad_StoreBackendValidation(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BACKEND", "mongo")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for unknown STORE_BACKEND")
	}
}

func TestLoad_PostgresDisablesSeedByDefault(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("STORE_BACKEND", StorePostgres)
	t.Setenv("STORE_SEED", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.StoreSeed {
		t.Fatalf("expected STORE_SEED=false for postgres backend")
	}
}

func TestLoad_InviteCodeBounds(t *testing.T) {
	t.Run("length too short", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("GROUP_INVITE_CODE_LENGTH", "2")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for short invite code length")
		}
	})

	t.Run("attempts must be positive", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("GROUP_INVITE_CODE_LENGTH", "")
		t.Setenv("GROUP_INVITE_CODE_MAX_ATTEMPTS", "0")
		if _, err := Load(); err == nil {
			t.Fatalf("expected error for zero invite code attempts")
		}
	})
}

func TestLoad_InviteLinkBaseURLTrimsTrailingSlash(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("INVITE_LINK_BASE_URL", "https://play.example.com/")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.InviteLinkBaseURL != "https://play.example.com" {
		t.Fatalf("unexpected invite link base url: %q", cfg.InviteLinkBaseURL)
	}
}

func TestLoad_UserCacheTTL(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("USER_CACHE_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UserCacheTTL != time.Minute {
		t.Fatalf("unexpected user cache ttl: %s", cfg.UserCacheTTL)
	}

	t.Setenv("USER_CACHE_TTL", "-1s")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for negative USER_CACHE_TTL")
	}
}

func TestLoad_UptraceRequiresDSNWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when UPTRACE_ENABLED=true without UPTRACE_DSN")
	}
}

func TestLoad_UptraceDSNFromOTLPHeaders(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("UPTRACE_ENABLED", "true")
	t.Setenv("UPTRACE_DSN", "")
	t.Setenv("OTEL_EXPORTER_OTLP_HEADERS", "uptrace-dsn='https://token@api.uptrace.dev/1'")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.UptraceDSN != "https://token@api.uptrace.dev/1" {
		t.Fatalf("unexpected uptrace dsn: %q", cfg.UptraceDSN)
	}
}

func TestLoad_DefaultsByEnv(t *testing.T) {
	t.Run("prod disables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvProd)
		t.Setenv("AUTH_JWT_SECRET", "prod-secret")
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=false in prod by default")
		}
		if cfg.StoreSeed {
			t.Fatalf("expected STORE_SEED=false in prod by default")
		}
	})

	t.Run("dev enables swagger by default", func(t *testing.T) {
		t.Setenv("APP_ENV", EnvDev)
		t.Setenv("SWAGGER_ENABLED", "")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("load config: %v", err)
		}
		if !cfg.SwaggerEnabled {
			t.Fatalf("expected SwaggerEnabled=true in dev by default")
		}
	})
}

func TestLoad_PprofDefaultsAddrWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PPROF_ENABLED", "true")
	t.Setenv("PPROF_ADDR", "  ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load config: %v", err)
	}
	if cfg.PprofAddr != ":6060" {
		t.Fatalf("expected default pprof addr :6060, got %q", cfg.PprofAddr)
	}
}

func TestLoad_PyroscopeRequiresServerAddressWhenEnabled(t *testing.T) {
	t.Setenv("APP_ENV", EnvDev)
	t.Setenv("PYROSCOPE_ENABLED", "true")
	t.Setenv("PYROSCOPE_SERVER_ADDRESS", "")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error when PYROSCOPE_ENABLED=true without PYROSCOPE_SERVER_ADDRESS")
	}
}

func TestParseLogLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"debug":   "debug",
		"WARNING": "warn",
		"error":   "error",
		"":        "info",
		"verbose": "info",
	}
	for input, want := range cases {
		if got := parseLogLevel(input).String(); got != want {
			t.Fatalf("parseLogLevel(%q) = %q, want %q", input, got, want)
		}
	}
}
