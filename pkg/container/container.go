package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"portfolio-backend/internal/config"
	"portfolio-backend/internal/docstore"
	"portfolio-backend/internal/infrastructure/database"
	"portfolio-backend/internal/infrastructure/realtime"

	"portfolio-backend/internal/domains/activity"
	activityClient "portfolio-backend/internal/domains/activity/client"
	activityHandler "portfolio-backend/internal/domains/activity/handler"
	activityService "portfolio-backend/internal/domains/activity/service"
	"portfolio-backend/internal/domains/gallery"
	galleryHandler "portfolio-backend/internal/domains/gallery/handler"
	galleryService "portfolio-backend/internal/domains/gallery/service"
	"portfolio-backend/internal/domains/message"
	messageHandler "portfolio-backend/internal/domains/message/handler"
	messageService "portfolio-backend/internal/domains/message/service"
	"portfolio-backend/internal/domains/profile"
	profileHandler "portfolio-backend/internal/domains/profile/handler"
	profileService "portfolio-backend/internal/domains/profile/service"
	"portfolio-backend/internal/domains/resume"
	resumeHandler "portfolio-backend/internal/domains/resume/handler"
	resumeService "portfolio-backend/internal/domains/resume/service"
	"portfolio-backend/internal/domains/site"
	siteHandler "portfolio-backend/internal/domains/site/handler"
	siteService "portfolio-backend/internal/domains/site/service"
)

// Container holds the application's dependency graph, initialized layer
// by layer: config, infrastructure, store, services, handlers. A wrong
// order here is a nil pointer at startup, not at request time.
type Container struct {
	// Infrastructure
	Config   *config.Config
	DB       *database.PostgresDB
	Realtime *realtime.Client

	// Data access
	Store docstore.Store

	// Services
	ProfileService  profile.Service
	ResumeService   resume.Service
	ActivityService activity.Service
	GalleryService  gallery.Service
	MessageService  message.Service
	SiteService     site.Service

	// HTTP handlers
	ProfileHandler  *profileHandler.ProfileHandler
	ResumeHandler   *resumeHandler.ResumeHandler
	ActivityHandler *activityHandler.ActivityHandler
	GalleryHandler  *galleryHandler.GalleryHandler
	MessageHandler  *messageHandler.MessageHandler
	SiteHandler     *siteHandler.SiteHandler
}

func NewContainer() (*Container, error) {
	log.Println("[CONTAINER] Initializing...")

	c := &Container{}

	// Step 1: configuration
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	// Step 2: document store database
	dbConfig, err := config.LoadDatabaseConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load database config: %w", err)
	}

	db := database.NewPostgresDB(dbConfig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	// Step 3: realtime store (append log). Losing it is not fatal at
	// startup; only message submission needs it and reports its own
	// failures.
	rt := realtime.NewClient(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := rt.Connect(context.Background()); err != nil {
		log.Printf("[CONTAINER] Redis connection failed (non-critical): %v", err)
	}
	c.Realtime = rt

	// Step 4: data access
	c.Store = docstore.NewPostgresStore(db.Pool)

	// Step 5: services
	c.ProfileService = profileService.NewProfileService(c.Store)
	c.ResumeService = resumeService.NewResumeService(c.Store, cfg.Portfolio.PinnedEmployer)
	c.ActivityService = activityService.NewActivityService(
		c.Store,
		activityClient.NewGitHubClient(cfg.Portfolio.GitHubAPIURL),
		activityClient.NewGitLabClient(cfg.Portfolio.GitLabAPIURL),
		cfg.Portfolio.GitLabUsername,
	)
	c.GalleryService = galleryService.NewGalleryService(c.Store)
	c.MessageService = messageService.NewMessageService(rt.Stream(cfg.Redis.Stream))
	c.SiteService = siteService.NewSiteService(
		c.ProfileService,
		c.ResumeService,
		c.ActivityService,
		c.GalleryService,
	)

	// Step 6: handlers
	c.ProfileHandler = profileHandler.NewProfileHandler(c.ProfileService)
	c.ResumeHandler = resumeHandler.NewResumeHandler(c.ResumeService)
	c.ActivityHandler = activityHandler.NewActivityHandler(c.ActivityService)
	c.GalleryHandler = galleryHandler.NewGalleryHandler(c.GalleryService)
	c.MessageHandler = messageHandler.NewMessageHandler(c.MessageService)
	c.SiteHandler = siteHandler.NewSiteHandler(c.SiteService)

	log.Println("[CONTAINER] Initialized successfully")
	return c, nil
}

// Cleanup releases infrastructure resources during graceful shutdown.
func (c *Container) Cleanup() {
	log.Println("[CONTAINER] Cleaning up resources...")

	if c.DB != nil && c.DB.Pool != nil {
		c.DB.Pool.Close()
		log.Println("[CONTAINER] Database connections closed")
	}

	if c.Realtime != nil {
		if err := c.Realtime.Close(); err != nil {
			log.Printf("[CONTAINER] Failed to close Redis: %v", err)
		} else {
			log.Println("[CONTAINER] Redis connections closed")
		}
	}
}
