package main

import (
	"context"
	"encoding/json"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"barrigudo/internal/config"
	"barrigudo/internal/database"
	"barrigudo/internal/domain/lead"
	"barrigudo/internal/domain/portfolio"
	"barrigudo/internal/domain/review"
	"barrigudo/internal/domain/settings"
	jwtsvc "barrigudo/internal/pkg/jwt"
)

// Seeds demo content for local development against whichever backend the
// environment selects.
func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	var (
		leadStore     lead.Store
		reviewStore   review.Store
		projectStore  portfolio.Store
		settingsStore settings.Store
	)

	if cfg.HostedBackend() {
		db, err := database.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Fatal().Err(err).Msg("database connection failed")
		}
		leads := lead.NewGormStore(db)
		reviews := review.NewGormStore(db)
		projects := portfolio.NewGormStore(db)
		siteSettings := settings.NewGormStore(db)
		for _, migrate := range []func() error{leads.Migrate, reviews.Migrate, projects.Migrate, siteSettings.Migrate} {
			if err := migrate(); err != nil {
				log.Fatal().Err(err).Msg("migration failed")
			}
		}
		leadStore, reviewStore, projectStore, settingsStore = leads, reviews, projects, siteSettings
	} else {
		var err error
		if leadStore, err = lead.NewFileStore(cfg.DataDir); err != nil {
			log.Fatal().Err(err).Msg("lead store init failed")
		}
		if reviewStore, err = review.NewFileStore(cfg.DataDir); err != nil {
			log.Fatal().Err(err).Msg("review store init failed")
		}
		if projectStore, err = portfolio.NewFileStore(cfg.DataDir); err != nil {
			log.Fatal().Err(err).Msg("portfolio store init failed")
		}
		if settingsStore, err = settings.NewFileStore(cfg.DataDir); err != nil {
			log.Fatal().Err(err).Msg("settings store init failed")
		}
	}

	ctx := context.Background()

	log.Info().Msg("seeding leads...")
	leads := []*lead.Lead{
		{
			OrgID:        cfg.OrgID,
			ServiceSlug:  "plumbing",
			Option:       "Leak Repair",
			LocationType: "Home / Residence",
			FullName:     "Maria Santos",
			Address:      "42 Oak Street, Cambridge, MA",
			Email:        "maria@example.com",
			Phone:        "617-555-0142",
			Details:      "Kitchen sink has been dripping for a week.",
			Status:       lead.StatusNew,
			StatusHistory: []lead.StatusChange{
				{Status: lead.StatusNew, Timestamp: time.Now()},
			},
		},
		{
			OrgID:        cfg.OrgID,
			ServiceSlug:  "hvac",
			Option:       "Air Conditioning",
			Subtype:      "Repair",
			LocationType: "Business / Commercial",
			FullName:     "James Park",
			Address:      "200 Main Street, Somerville, MA",
			Email:        "jpark@example.com",
			Phone:        "(617) 555-0199",
			Status:       lead.StatusContacted,
			StatusHistory: []lead.StatusChange{
				{Status: lead.StatusNew, Timestamp: time.Now().Add(-48 * time.Hour)},
				{Status: lead.StatusContacted, Timestamp: time.Now()},
			},
		},
	}
	for _, l := range leads {
		if err := leadStore.Create(ctx, l); err != nil {
			log.Fatal().Err(err).Msg("lead seed failed")
		}
	}

	log.Info().Msg("seeding reviews...")
	reviews := []*review.Review{
		{OrgID: cfg.OrgID, Author: "Ana R.", Rating: 5, Comment: "Fast, tidy, fair price. The leak was gone the same day.", ServiceSlug: "plumbing", Published: true},
		{OrgID: cfg.OrgID, Author: "Derek M.", Rating: 4, Comment: "Rewired our garage, solid work.", ServiceSlug: "electrical", Published: true},
		{OrgID: cfg.OrgID, Author: "Priya K.", Rating: 5, Comment: "Great painting crew.", ServiceSlug: "painting", Published: false},
	}
	for _, r := range reviews {
		if err := reviewStore.Create(ctx, r); err != nil {
			log.Fatal().Err(err).Msg("review seed failed")
		}
	}

	log.Info().Msg("seeding portfolio...")
	projects := []*portfolio.Project{
		{OrgID: cfg.OrgID, Title: "Full bathroom repipe", ServiceSlug: "plumbing", Description: "1920s copper replaced with PEX in two days.", Published: true},
		{OrgID: cfg.OrgID, Title: "Victorian exterior repaint", ServiceSlug: "painting", Published: true},
	}
	for _, p := range projects {
		if err := projectStore.Create(ctx, p); err != nil {
			log.Fatal().Err(err).Msg("portfolio seed failed")
		}
	}

	log.Info().Msg("seeding settings...")
	hours, _ := json.Marshal(map[string]string{"weekdays": "8:00–18:00", "saturday": "9:00–14:00", "sunday": "closed"})
	if _, err := settingsStore.Put(ctx, "business_hours", hours); err != nil {
		log.Fatal().Err(err).Msg("settings seed failed")
	}

	// A ready-to-paste staff token so the admin endpoints are usable right
	// after seeding, without the external identity provider.
	token, err := jwtsvc.New(cfg.JWTSecret, 24*time.Hour).GenerateToken("dev-admin", "admin")
	if err != nil {
		log.Fatal().Err(err).Msg("dev token mint failed")
	}
	log.Info().Str("authorization", "Bearer "+token).Msg("dev admin token (24h)")

	log.Info().Msg("seed complete")
}
