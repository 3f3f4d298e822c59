package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	config "github.com/maheshrc27/marketing-hub/configs"
	"github.com/maheshrc27/marketing-hub/internal/api"
	"github.com/maheshrc27/marketing-hub/internal/api/handlers"
	"github.com/maheshrc27/marketing-hub/internal/api/middleware"
	"github.com/maheshrc27/marketing-hub/internal/cache"
	"github.com/maheshrc27/marketing-hub/internal/generator"
	job "github.com/maheshrc27/marketing-hub/internal/jobs"
	"github.com/maheshrc27/marketing-hub/internal/notify"
	"github.com/maheshrc27/marketing-hub/internal/queue"
	"github.com/maheshrc27/marketing-hub/internal/repository"
	"github.com/maheshrc27/marketing-hub/internal/scheduler"
	"github.com/maheshrc27/marketing-hub/internal/service"
	"github.com/maheshrc27/marketing-hub/internal/store"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Failed to load environment variables", err)
	}

	cfg := config.LoadConfig()
	if len(cfg.SecretKey) != 32 {
		log.Fatalf("SECRET_KEY must be 32 bytes, got %d", len(cfg.SecretKey))
	}

	var db *sql.DB
	var rs store.RecordStore
	if cfg.PostgresURI == "" {
		log.Println("POSTGRES_URI not set, using the in-memory record store")
		rs = store.NewMemoryStore()
	} else {
		var err error
		db, err = sql.Open("postgres", cfg.PostgresURI)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := db.Ping(); err != nil {
			log.Fatalf("Database is unreachable: %v", err)
		}
		if err := store.Migrate(db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		rs = store.NewPostgresStore(db)
	}

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURI})
	defer rdb.Close()
	var catalogCache cache.Cache = cache.NewRedisCache(rdb, cfg.StoreContainer)
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Printf("Redis is unreachable, caching catalog in memory: %v", err)
		catalogCache = cache.NewMemoryCache()
	}

	redisConn := asynq.RedisClientOpt{Addr: cfg.RedisURI}
	client := asynq.NewClient(redisConn)
	defer client.Close()
	inspector := asynq.NewInspector(redisConn)
	defer inspector.Close()

	app := fiber.New(fiber.Config{
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
		BodyLimit:    service.MaxUploadSize + 1<<20,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			log.Printf("Error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.FrontendURL,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
		MaxAge:           3600,
	}))

	profileRepo := repository.NewProfileRepository(rs)
	brandRepo := repository.NewBrandRepository(rs)
	campaignRepo := repository.NewCampaignRepository(rs)
	calendarRepo := repository.NewCalendarRepository(rs)
	templateRepo := repository.NewTemplateRepository(rs)
	affiliateToolRepo := repository.NewAffiliateToolRepository(rs)
	affiliateClickRepo := repository.NewAffiliateClickRepository(rs)
	bookingRepo := repository.NewBookingRepository(rs)
	subscriptionRepo := repository.NewSubscriptionRepository(rs)
	socialAccountRepo := repository.NewSocialAccountRepository(rs)
	postRepo := repository.NewPostRepository(rs)
	historyRepo := repository.NewPostingHistoryRepository(rs)
	mediaAssetRepo := repository.NewMediaAssetRepository(rs)

	storefront := service.NewLocalStorefront(cfg.StorefrontKey, service.DefaultProducts(cfg.ProProductID, cfg.AgencyProductID))
	subscriptionService := service.NewSubscriptionService(cfg, profileRepo, subscriptionRepo, storefront)

	authService := service.NewAuthService(cfg, profileRepo)
	profileService := service.NewProfileService(profileRepo)
	brandService := service.NewBrandService(brandRepo, subscriptionService)
	campaignService := service.NewCampaignService(campaignRepo, subscriptionService)
	calendarService := service.NewCalendarService(calendarRepo, subscriptionService)
	catalogService := service.NewCatalogService(templateRepo, affiliateToolRepo, affiliateClickRepo, subscriptionService, catalogCache, cfg.CatalogCacheTTL)
	dashboardService := service.NewDashboardService(profileService, subscriptionService, brandService, campaignService, calendarService, catalogService)
	seedService := service.NewSeedService(brandRepo, campaignRepo, calendarRepo, catalogService)
	bookingService := service.NewBookingService(bookingRepo)
	contentService := service.NewContentService(generator.NewRandom())
	socialAccountService := service.NewSocialAccountService(cfg, socialAccountRepo)

	r2Service, err := service.NewR2Service(context.Background(), cfg.R2)
	if err != nil {
		log.Fatalf("Failed to configure media storage: %v", err)
	}
	mediaService := service.NewMediaService(mediaAssetRepo, r2Service)

	publisher := service.NewMockPublisher([]byte(cfg.SecretKey), 500*time.Millisecond, rate.NewLimiter(rate.Every(time.Second), 5))
	reminders := queue.NewReminders(client, inspector)
	postService := service.NewPostService(postRepo, socialAccountRepo, historyRepo, publisher, reminders, cfg.PostLease)

	postScheduler := scheduler.New(postService, cfg.SchedulerInterval)

	authMiddleware := middleware.NewAuthMiddleware(cfg)

	api.SetupRoutes(app, authMiddleware.AuthMiddleware(), &api.Handlers{
		Auth:     handlers.NewAuthHandler(cfg, authService),
		User:     handlers.NewUserHandler(profileService, dashboardService, seedService),
		Payment:  handlers.NewPaymentHandler(subscriptionService, cfg.AllowPlanOverride),
		Platform: handlers.NewPlatformHandler(socialAccountService, cfg),
		Post:     handlers.NewPostHandler(postService, client, postScheduler),
		Brand:    handlers.NewBrandHandler(brandService),
		Campaign: handlers.NewCampaignHandler(campaignService),
		Calendar: handlers.NewCalendarHandler(calendarService),
		Catalog:  handlers.NewCatalogHandler(catalogService),
		Booking:  handlers.NewBookingHandler(bookingService, cfg.SupportEmail),
		Content:  handlers.NewContentHandler(contentService),
		Media:    handlers.NewMediaHandler(mediaService),
	})

	// cron jobs
	leaseJob := job.NewLeaseRecoveryJob(postService)
	sweepJob := job.NewDueSweepJob(postRepo, postScheduler)

	cronLog := cron.VerbosePrintfLogger(log.New(os.Stdout, "cron: ", log.LstdFlags))
	c := cron.New(cron.WithLogger(cronLog), cron.WithChain(cron.Recover(cronLog), cron.SkipIfStillRunning(cronLog)))
	if _, err := c.AddJob("@every 10m", leaseJob); err != nil {
		log.Fatalf("Failed to schedule lease recovery: %v", err)
	}
	if _, err := c.AddJob(fmt.Sprintf("@every %s", cfg.SchedulerInterval), sweepJob); err != nil {
		log.Fatalf("Failed to schedule due sweep: %v", err)
	}
	c.Start()

	//queue
	queueW := queue.NewQueue(postService, notify.NewLogDeliverer())
	server := asynq.NewServer(redisConn, asynq.Config{
		Concurrency: 10,
	})

	go func() {
		mux := asynq.NewServeMux()
		queueW.Register(mux)

		log.Println("Starting the Asynq server...")
		if err := server.Run(mux); err != nil {
			log.Fatalf("Could not start Asynq server: %v", err)
		}
	}()

	go func() {
		if err := app.Listen(":" + cfg.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()
	log.Printf("Server is running on http://localhost:%s", cfg.Port)

	gracefulShutdown(app, db, c, server, postScheduler)
}

func closeDB(db *sql.DB) {
	if db == nil {
		return
	}
	fmt.Fprint(os.Stdout, "Closing database connection... ")
	if err := db.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to close database: %v", err)
		return
	}
	fmt.Fprintln(os.Stdout, "Done")
}

func gracefulShutdown(app *fiber.App, db *sql.DB, c *cron.Cron, server *asynq.Server, s *scheduler.Scheduler) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	log.Println("Shutting down server...")

	if err := app.Shutdown(); err != nil {
		log.Fatalf("Failed to shut down server: %v", err)
	}

	<-s.StopAll().Done()
	<-c.Stop().Done()
	server.Shutdown()

	closeDB(db)
	log.Println("Server shutdown complete.")
}
