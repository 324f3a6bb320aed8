package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/SahithiKaruparthi/planPro/internal/application/auth"
	"github.com/SahithiKaruparthi/planPro/internal/application/calendar"
	"github.com/SahithiKaruparthi/planPro/internal/application/plans"
	"github.com/SahithiKaruparthi/planPro/internal/application/ports"
	"github.com/SahithiKaruparthi/planPro/internal/config"
	infraauth "github.com/SahithiKaruparthi/planPro/internal/infrastructure/auth"
	httprouter "github.com/SahithiKaruparthi/planPro/internal/infrastructure/http"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/http/handlers"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/http/middleware"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/lockout"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/persistence/postgres"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/queue"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/security"
	"github.com/SahithiKaruparthi/planPro/internal/infrastructure/webhook"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatal().Err(err).Msg("connect to database")
	}
	defer pool.Close()
	if err := pool.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("ping database")
	}

	var redisClient *redis.Client
	if cfg.Redis.URL != "" {
		opt, err := redis.ParseURL(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("parse REDIS_URL")
		}
		redisClient = redis.NewClient(opt)
		defer redisClient.Close()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis ping failed; continuing without redis")
			redisClient = nil
		}
	}

	userRepo := postgres.NewUserRepository(pool)
	planRepo := postgres.NewPlanRepository(pool)
	tokenStore := postgres.NewTokenStore(pool)

	var emitter ports.WebhookEmitter
	if cfg.Webhook.URL != "" {
		emitter = webhook.NewHTTPEmitter(cfg.Webhook.URL)
	} else {
		emitter = webhook.NewNoopEmitter()
	}

	var reminders ports.ReminderEnqueuer
	var asynqWorker *queue.Worker
	if redisClient != nil {
		redisOpt, _ := redis.ParseURL(cfg.Redis.URL)
		asynqOpt := asynq.RedisClientOpt{Addr: redisOpt.Addr, Password: redisOpt.Password, DB: redisOpt.DB}
		enq, err := queue.NewAsynqEnqueuer(asynqOpt, log)
		if err != nil {
			log.Fatal().Err(err).Msg("create asynq enqueuer")
		}
		defer enq.Close()
		reminders = enq
		asynqWorker = queue.NewWorker(asynqOpt, emitter, log)
		go func() {
			if err := asynqWorker.Run(); err != nil {
				log.Warn().Err(err).Msg("asynq worker stopped")
			}
		}()
	} else {
		reminders = queue.NewNoopEnqueuer()
	}

	hasher := security.NewArgon2Hasher(security.Argon2Params{
		Memory:      cfg.Argon2.Memory,
		Iterations:  cfg.Argon2.Iterations,
		Parallelism: cfg.Argon2.Parallelism,
		SaltLength:  16,
		KeyLength:   32,
	})

	pemBytes, err := cfg.LoadJWTPrivateKey()
	if err != nil {
		log.Fatal().Err(err).Msg("load JWT private key")
	}
	privateKey, err := infraauth.LoadRSAPrivateKeyFromPEM(pemBytes)
	if err != nil {
		log.Fatal().Err(err).Msg("parse JWT private key")
	}
	issuer := infraauth.NewTokenIssuer(privateKey, cfg.JWT.Issuer, cfg.JWT.Audience)

	lockoutStore := lockout.NewMemoryStore(cfg.Lockout.MaxAttempts, cfg.Lockout.CooldownSecs)

	registerUC := auth.NewRegisterUser(userRepo, hasher, issuer, tokenStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	loginUC := auth.NewLogin(userRepo, hasher, issuer, tokenStore, lockoutStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	refreshUC := auth.NewRefresh(userRepo, issuer, tokenStore, cfg.JWT.AccessExpiry, cfg.JWT.RefreshExpiry)
	logoutUC := auth.NewLogout(tokenStore)

	createPlanUC := plans.NewCreatePlan(planRepo, reminders)
	listPlansUC := plans.NewListPlans(planRepo)
	getPlanUC := plans.NewGetPlan(planRepo)
	updateTaskUC := plans.NewUpdateTask(planRepo, reminders)
	calendarUC := calendar.NewListItems(planRepo)

	authHandler := handlers.NewAuthHandler(registerUC, loginUC, refreshUC, logoutUC, log)
	plansHandler := handlers.NewPlansHandler(createPlanUC, listPlansUC, getPlanUC, log)
	calendarHandler := handlers.NewCalendarHandler(calendarUC, updateTaskUC, log)
	healthHandler := handlers.NewHealthHandler(pool, redisClient)
	usersHandler := handlers.NewUsersHandler(userRepo)

	ipLimit, err := middleware.NewIPRateLimiter(cfg.RateLimit.RatePerIP)
	if err != nil {
		log.Fatal().Err(err).Msg("create IP rate limiter")
	}
	userLimit, err := middleware.NewUserRateLimiter(cfg.RateLimit.RatePerUser)
	if err != nil {
		log.Fatal().Err(err).Msg("create user rate limiter")
	}
	secureMiddleware := middleware.NewSecure(middleware.SecureOptions(cfg.Secure.IsDevelopment))
	requireJWT := middleware.NewAuthValidator(issuer).Handler

	router := httprouter.NewRouter(httprouter.RouterConfig{
		AuthHandler:     authHandler,
		PlansHandler:    plansHandler,
		CalendarHandler: calendarHandler,
		UsersHandler:    usersHandler,
		HealthHandler:   healthHandler,
		RequireJWT:      requireJWT,
		Log:             log,
		Secure:          secureMiddleware,
		CORS:            middleware.CORS(cfg.CORS.AllowedOrigins),
		IPRateLimit:     ipLimit,
		UserRateLimit:   userLimit,
		APIVersion:      "1",
		Metrics:         true,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Server.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown")
	}
	if asynqWorker != nil {
		asynqWorker.Shutdown()
	}
	log.Info().Msg("server stopped")
}
