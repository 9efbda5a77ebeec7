package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"industrial-site-be/internal/config"
	"industrial-site-be/internal/mapper"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/metrics"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/repository/memory"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/internal/service"
	"industrial-site-be/pkg/database"
	"industrial-site-be/pkg/richtext"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/alecthomas/kong"
)

// Global is shared state handed to every command's Run.
type Global struct {
	Out io.Writer
}

// CLI is the root command tree.
type CLI struct {
	Verbose bool             `short:"v" help:"Log SQL and service output"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	ApproveEmail ApproveEmailCmd `cmd:"" help:"Add an email to the admin allow-list"`
	RevokeEmail  RevokeEmailCmd  `cmd:"" help:"Remove an email from the admin allow-list"`
	CreateAdmin  CreateAdminCmd  `cmd:"" help:"Create or reset a password admin account"`
	Slug         SlugCmd         `cmd:"" help:"Print the slug derived from a title"`
	Doc          DocCmd          `cmd:"" help:"Inspect, render and import rich-text documents"`
	Seed         SeedCmd         `cmd:"" help:"Load services, markets and team members from a YAML fixture"`
	Events       EventsCmd       `cmd:"" help:"Tail content events from NATS JetStream"`
}

// backend is the slice of the server container that database-backed commands need.
type backend struct {
	cfg            *config.Config
	approvedEmails service.IApprovedEmailService
	auth           service.IAuthService
	catalog        service.ICatalogService
	markets        service.IMarketService
	team           service.ITeamService
	close          func()
}

func openBackend(verbose bool) (*backend, error) {
	cfg := config.Load()

	db, err := database.Open(cfg.Database.Driver, cfg.Database.Connection)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	var log logger.ILogger = logger.NewNopLogger()
	if verbose {
		log = logger.NewZapLogger(cfg.App.LogFilePath, false)
	}

	registry := metrics.New()
	uowFactory := unitofwork.NewRepositoryFactory(db, mapper.NewDocumentCodec(log, registry))
	presenter := service.NewPresenter(richtext.NewRenderer(), registry)

	// Nothing consumes content events in the CLI; the server's caches expire on their own TTL.
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermill.NewStdLogger(false, false))
	publisher := service.NewPublisherService(pubSub, service.ContentChangedTopic, log)

	approvedEmails := service.NewApprovedEmailService(uowFactory, memory.NewAllowListCache(cfg.Cache.AllowListTTL), nil, log)
	sessions := serverutils.NewSessionIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.CookieName)

	return &backend{
		cfg:            cfg,
		approvedEmails: approvedEmails,
		auth:           service.NewAuthService(uowFactory, sessions, approvedEmails, log),
		catalog:        service.NewCatalogService(uowFactory, presenter, publisher),
		markets:        service.NewMarketService(uowFactory, presenter, publisher),
		team:           service.NewTeamService(uowFactory, presenter, publisher),
		close: func() {
			_ = pubSub.Close()
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}, nil
}

func readDocumentFile(path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(os.Stdin)
	}
	return os.ReadFile(path)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
