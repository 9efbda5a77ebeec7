package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"industrial-site-be/internal/config"
	"industrial-site-be/internal/controller"
	"industrial-site-be/internal/dto"
	"industrial-site-be/internal/handler"
	"industrial-site-be/internal/mapper"
	"industrial-site-be/internal/pkg/logger"
	"industrial-site-be/internal/pkg/mailer"
	"industrial-site-be/internal/pkg/metrics"
	"industrial-site-be/internal/pkg/serverutils"
	"industrial-site-be/internal/repository/cache"
	"industrial-site-be/internal/repository/memory"
	"industrial-site-be/internal/repository/unitofwork"
	"industrial-site-be/internal/service"
	"industrial-site-be/internal/websocket"
	pktNats "industrial-site-be/pkg/nats"
	"industrial-site-be/pkg/richtext"
	"industrial-site-be/pkg/storage"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	PublicController       controller.IPublicController
	AuthController         controller.IAuthController
	AdminController        controller.IAdminController
	ContentControllers     []controller.IContentController
	SubServiceController   controller.ISubServiceController
	ProjectImageController controller.IProjectImageController

	// WebSockets
	EditorHandler *handler.EditorHandler
	WebSocketHub  *websocket.Hub

	// Admin gate
	Sessions  *serverutils.SessionIssuer
	AllowList serverutils.AllowList

	// Background Services (started by Start)
	ConsumerService  service.IConsumerService
	SchedulerService service.ISchedulerService

	Metrics *metrics.Registry
	Logger  logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	registry := metrics.New()
	codec := mapper.NewDocumentCodec(sysLogger, registry)
	uowFactory := unitofwork.NewRepositoryFactory(db, codec)
	presenter := service.NewPresenter(richtext.NewRenderer(), registry)

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
		cfg.SMTP.ContactRecipient,
	)

	fileStorage, err := newFileStorage(cfg.Storage)
	if err != nil {
		return nil, err
	}

	c := &Container{Metrics: registry, Logger: sysLogger}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. Optional infrastructure
	rdb := newRedisClient(cfg.App.RedisURL)
	if rdb != nil {
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}

	var sink service.EventSink
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			sink = natsPub
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	var pageCache cache.PageCache = cache.NewNoopPageCache(registry)
	if rdb != nil {
		pageCache = cache.NewRedisPageCache(rdb, cfg.Cache.PageTTL, registry, sysLogger)
	}

	// WebSocket Hub
	editorLogger := logger.NewIsolatedLogger(cfg.App.EditorLogFilePath)
	wsHub := websocket.NewHub(rdb, editorLogger)

	// 4. Services
	publisherService := service.NewPublisherService(pubSub, service.ContentChangedTopic, sysLogger)
	consumerService := service.NewConsumerService(
		pubSub,
		service.ContentChangedTopic,
		pageCache,
		sink,
		wsHub,
		registry,
		sysLogger,
	)

	allowListCache := memory.NewAllowListCache(cfg.Cache.AllowListTTL)
	approvedEmailService := service.NewApprovedEmailService(uowFactory, allowListCache, wsHub, sysLogger)

	sessions := serverutils.NewSessionIssuer(cfg.Auth.JWTSecret, cfg.Auth.SessionTTL, cfg.Auth.CookieName)
	authService := service.NewAuthService(uowFactory, sessions, approvedEmailService, sysLogger)
	oauthService := service.NewOAuthService(uowFactory, authService, cfg.OAuth, sysLogger)

	catalogService := service.NewCatalogService(uowFactory, presenter, publisherService)
	marketService := service.NewMarketService(uowFactory, presenter, publisherService)
	projectService := service.NewProjectService(uowFactory, presenter, publisherService)
	newsService := service.NewNewsService(uowFactory, presenter, publisherService)
	careerService := service.NewCareerService(uowFactory, presenter, publisherService, sysLogger)
	locationService := service.NewLocationService(uowFactory, presenter, publisherService)
	teamService := service.NewTeamService(uowFactory, presenter, publisherService)

	publicService := service.NewPublicService(uowFactory, presenter, pageCache)
	contactService := service.NewContactService(emailService, sysLogger)
	dashboardService := service.NewDashboardService(uowFactory)
	documentService := service.NewDocumentService(presenter)
	uploadService := service.NewUploadService(fileStorage, cfg.Storage.DefaultBucket, sysLogger)
	logService := service.NewLogService(sysLogger)

	schedulerService, err := service.NewSchedulerService(careerService, cfg.Scheduler.JobExpiryInterval, sysLogger)
	if err != nil {
		return nil, err
	}

	// 5. Controllers
	c.PublicController = controller.NewPublicController(publicService, contactService)
	c.AuthController = controller.NewAuthController(authService, oauthService, sessions, cfg.App.ClientURL, cfg.IsProduction(), sysLogger)
	c.AdminController = controller.NewAdminController(dashboardService, documentService, approvedEmailService, uploadService, logService)
	c.ContentControllers = []controller.IContentController{
		controller.NewContentController[dto.ServiceRequest, dto.ServiceDetailResponse]("/services", "service", catalogService),
		controller.NewContentController[dto.MarketRequest, dto.MarketResponse]("/markets", "market", marketService),
		controller.NewContentController[dto.ProjectRequest, dto.ProjectDetailResponse]("/projects", "project", projectService),
		controller.NewContentController[dto.NewsRequest, dto.NewsResponse]("/news", "news", newsService),
		controller.NewContentController[dto.JobPostingRequest, dto.JobPostingResponse]("/careers", "career", careerService),
		controller.NewContentController[dto.LocationRequest, dto.LocationResponse]("/locations", "location", locationService),
		controller.NewContentController[dto.TeamMemberRequest, dto.TeamMemberResponse]("/team", "team member", teamService),
	}
	c.SubServiceController = controller.NewSubServiceController(catalogService)
	c.ProjectImageController = controller.NewProjectImageController(projectService)

	c.EditorHandler = handler.NewEditorHandler(wsHub, presenter, editorLogger)
	c.WebSocketHub = wsHub
	c.Sessions = sessions
	c.AllowList = approvedEmailService
	c.ConsumerService = consumerService
	c.SchedulerService = schedulerService

	return c, nil
}

// Start launches the hub, the content event consumer and the scheduler. They stop when ctx is done.
func (c *Container) Start(ctx context.Context) error {
	go c.WebSocketHub.Run(ctx)

	if err := c.ConsumerService.Consume(ctx); err != nil {
		return fmt.Errorf("failed to start content event consumer: %w", err)
	}
	return c.SchedulerService.Start()
}

func (c *Container) Close() {
	if err := c.SchedulerService.Stop(); err != nil {
		log.Printf("[WARN] Scheduler shutdown: %v", err)
	}
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

func newRedisClient(url string) *redis.Client {
	if url == "" {
		log.Printf("[INFO] REDIS_URL not set, page cache and cluster fan-out disabled")
		return nil
	}

	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	return rdb
}

func newFileStorage(cfg config.StorageConfig) (storage.FileStorage, error) {
	switch cfg.Driver {
	case "minio":
		s, err := storage.NewMinioStorage(cfg.Endpoint, cfg.AccessKey, cfg.SecretKey, cfg.UseSSL, cfg.PublicURL)
		if err != nil {
			return nil, fmt.Errorf("failed to init minio storage: %w", err)
		}
		return s, nil
	case "", "local":
		s, err := storage.NewLocalStorage(cfg.LocalDir, cfg.PublicURL)
		if err != nil {
			return nil, fmt.Errorf("failed to init local storage: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
