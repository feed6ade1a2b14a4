package main

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"barrigudo/internal/config"
	"barrigudo/internal/database"
	"barrigudo/internal/domain/catalog"
	"barrigudo/internal/domain/geo"
	"barrigudo/internal/domain/lead"
	"barrigudo/internal/domain/portfolio"
	"barrigudo/internal/domain/quote"
	"barrigudo/internal/domain/review"
	"barrigudo/internal/domain/settings"
	"barrigudo/internal/domain/storage"
	"barrigudo/internal/middleware"
	jwtsvc "barrigudo/internal/pkg/jwt"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if cfg.AppEnv == "dev" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	leadStore, reviewStore, portfolioStore, settingsStore, err := buildStores(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to initialize persistence")
	}

	// Collaborators are injected explicitly; nothing reads a backend
	// choice from ambient state.
	zips := geo.NewClient(cfg.ZipAPIBaseURL)
	objects := storage.NewDisk(cfg.UploadsDir, cfg.PublicBaseURL+"/static/uploads")
	feed := lead.NewFeed()

	sessions := quote.NewSessions(
		cfg.OrgID,
		filepath.Join(os.TempDir(), "barrigudo-quote"),
		cfg.SessionTTL,
		zips,
		leadStore,
		objects,
	)
	sessions.StartJanitor(context.Background())

	j := jwtsvc.New(cfg.JWTSecret, 24*time.Hour)

	catalogHandler := catalog.NewHandler()
	quoteHandler := quote.NewHandler(sessions, feed, leadStore)
	leadHandler := lead.NewHandler(lead.NewService(leadStore, feed), feed, cfg.OrgID)
	reviewHandler := review.NewHandler(reviewStore, cfg.OrgID)
	portfolioHandler := portfolio.NewHandler(portfolioStore, cfg.OrgID)
	settingsHandler := settings.NewHandler(settingsStore)

	r := gin.New()
	r.Use(middleware.RequestLogger(log.Logger))
	r.Use(middleware.CORS(cfg.CORSOrigins))
	r.Static("/static/uploads", cfg.UploadsDir)

	v1 := r.Group("/api/v1")
	{
		// public
		catalog.RegisterRoutes(v1, catalogHandler)
		quote.RegisterRoutes(v1, quoteHandler)
		review.RegisterPublicRoutes(v1, reviewHandler)
		portfolio.RegisterPublicRoutes(v1, portfolioHandler)

		// staff back office
		admin := v1.Group("/admin")
		admin.Use(middleware.StaffAuth(j), middleware.StaffOnly())
		{
			lead.RegisterAdminRoutes(admin, leadHandler)
			review.RegisterAdminRoutes(admin, reviewHandler)
			portfolio.RegisterAdminRoutes(admin, portfolioHandler)
			settings.RegisterAdminRoutes(admin, settingsHandler)
		}
	}

	log.Info().
		Str("addr", cfg.Addr).
		Bool("hosted_backend", cfg.HostedBackend()).
		Str("org", cfg.OrgID).
		Msg("starting API")

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func buildStores(cfg *config.Config) (lead.Store, review.Store, portfolio.Store, settings.Store, error) {
	if cfg.HostedBackend() {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, nil, err
		}

		leads := lead.NewGormStore(db)
		reviews := review.NewGormStore(db)
		projects := portfolio.NewGormStore(db)
		siteSettings := settings.NewGormStore(db)

		for _, migrate := range []func() error{leads.Migrate, reviews.Migrate, projects.Migrate, siteSettings.Migrate} {
			if err := migrate(); err != nil {
				return nil, nil, nil, nil, err
			}
		}
		return leads, reviews, projects, siteSettings, nil
	}

	log.Info().Str("dir", cfg.DataDir).Msg("no DATABASE_URL set, using on-disk JSON stores")

	leads, err := lead.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	reviews, err := review.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	projects, err := portfolio.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	siteSettings, err := settings.NewFileStore(cfg.DataDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	return leads, reviews, projects, siteSettings, nil
}
