package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	fleetbackend "github.com/manyinyire/fleetbackend-sub008"
	"github.com/manyinyire/fleetbackend-sub008/modules/account"
	"github.com/manyinyire/fleetbackend-sub008/pkg/auth"
	"github.com/manyinyire/fleetbackend-sub008/pkg/config"
	"github.com/manyinyire/fleetbackend-sub008/pkg/cookie"
	"github.com/manyinyire/fleetbackend-sub008/pkg/httpserver"
	"github.com/manyinyire/fleetbackend-sub008/pkg/logger"
	"github.com/manyinyire/fleetbackend-sub008/pkg/pg"
	"github.com/manyinyire/fleetbackend-sub008/pkg/ratelimit"
	"github.com/manyinyire/fleetbackend-sub008/pkg/rbac"
	"github.com/manyinyire/fleetbackend-sub008/pkg/redis"
	"github.com/manyinyire/fleetbackend-sub008/pkg/requestid"
	"github.com/manyinyire/fleetbackend-sub008/pkg/session"
	"github.com/manyinyire/fleetbackend-sub008/pkg/tenant"
	"github.com/manyinyire/fleetbackend-sub008/pkg/tenantdb"
)

type appConfig struct {
	Env       string     `env:"APP_ENV" envDefault:"development"`
	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"INFO"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"json"`

	CookieSecrets  []string      `env:"COOKIE_SECRETS,required" envSeparator:","`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	JWTIssuer      string        `env:"JWT_ISSUER" envDefault:"fleetbackend"`
	TenantCacheTTL time.Duration `env:"TENANT_CACHE_TTL" envDefault:"30s"`

	HTTP      httpserver.Config
	PG        pg.Config
	Redis     redis.Config
	Session   session.Config
	LoginRate ratelimit.Config `envPrefix:"LOGIN_"`
}

func main() {
	if err := run(context.Background()); err != nil {
		slog.Error("server exited", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithLevel(cfg.LogLevel),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithService("fleetbackend"),
		logger.WithAttr(slog.String("env", cfg.Env)),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			auth.LoggerExtractor(),
			tenant.LoggerExtractor(),
		),
	)

	pool, err := pg.Connect(ctx, cfg.PG)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pg.Migrate(ctx, pool, cfg.PG, log); err != nil {
		return err
	}

	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return err
	}
	defer redisClient.Close()

	cookieMgr, err := cookie.New(cfg.CookieSecrets)
	if err != nil {
		return err
	}

	// Browser clients carry the session in an encrypted cookie, API clients
	// in a signed bearer token; both resolve to the same session store.
	transport := session.NewCompositeTransport(
		session.NewCookieTransport(cookieMgr, cfg.Session.CookieName, cfg.Session.SecureCookies),
		session.NewBearerTransport(cfg.JWTSecret, cfg.JWTIssuer),
	)
	sessions := session.NewManager(session.NewRedisStore(redisClient), transport, cfg.Session)

	identity := auth.NewPGStore(pool)
	resolver := auth.NewResolver(sessions, identity, log)

	tenants := tenant.NewCachedProvider(tenant.NewPGProvider(pool), cfg.TenantCacheTTL)

	authz, err := rbac.NewAuthorizer(ctx, rbac.NewMemorySource(rbac.DefaultRoles()))
	if err != nil {
		return err
	}

	deps := &fleetbackend.Deps{
		Resolver: resolver,
		DB:       tenantdb.NewFactory(pool),
		Tenants:  tenants,
		Authz:    authz,
		Log:      log,
	}

	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(requestid.Middleware)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", httpserver.HealthCheckHandler(log))
	router.Get("/readyz", httpserver.HealthCheckHandler(log,
		pg.Healthcheck(pool),
		redis.Healthcheck(redisClient),
	))

	loginLimiter, err := ratelimit.New(ratelimit.NewRedisStore(redisClient), cfg.LoginRate)
	if err != nil {
		return err
	}

	router.Mount("/auth", account.NewService(identity, sessions,
		account.WithLoginLimiter(loginLimiter)).Router(deps))

	// Example of a tenant-scoped route: the handle in ctx.DB() only sees the
	// caller's rows, enforced by the vehicles table policy.
	router.Get("/vehicles/count", fleetbackend.Wrap(deps, fleetbackend.RequireTenant(),
		func(ctx *fleetbackend.Context) (fleetbackend.Response, error) {
			var count int
			row := ctx.DB().QueryRow(ctx, `SELECT count(*) FROM vehicles`)
			if err := row.Scan(&count); err != nil {
				return nil, err
			}
			return fleetbackend.JSON(map[string]int{"count": count}), nil
		}))

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log.With(logger.Component("httpserver"))))

	log.InfoContext(ctx, "starting server",
		slog.String("addr", cfg.HTTP.Addr),
		slog.String("env", cfg.Env))

	return srv.Run(ctx, router)
}
