package main

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/Hshshshsh454/Highway-delight/config"
	"github.com/Hshshshsh454/Highway-delight/internal/catalog"
	"github.com/Hshshshsh454/Highway-delight/internal/clock"
	"github.com/Hshshshsh454/Highway-delight/internal/handler"
	"github.com/Hshshshsh454/Highway-delight/internal/idempotency"
	"github.com/Hshshshsh454/Highway-delight/internal/middleware"
	"github.com/Hshshshsh454/Highway-delight/internal/models"
	"github.com/Hshshshsh454/Highway-delight/internal/pricing"
	"github.com/Hshshshsh454/Highway-delight/internal/repository"
	"github.com/Hshshshsh454/Highway-delight/internal/service"
	"github.com/Hshshshsh454/Highway-delight/pkg/database"
	"github.com/Hshshshsh454/Highway-delight/pkg/rabbitmq"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	taxRate, err := pricing.ParseRate(cfg.TaxRate)
	if err != nil {
		log.Fatalf("invalid TAX_RATE %q: %v", cfg.TaxRate, err)
	}

	clk := clock.NewSystem(cfg.Location())
	if cfg.CatalogToday != "" {
		today, err := models.ParseDate(cfg.CatalogToday)
		if err != nil {
			log.Fatalf("invalid CATALOG_TODAY %q: %v", cfg.CatalogToday, err)
		}
		clk = clock.NewFixedDate(today)
	}

	opts := []service.Option{}

	var src catalog.Source
	switch cfg.CatalogSource {
	case config.CatalogSourcePostgres:
		db := database.NewPostgresDB(cfg.DSN(), database.PoolConfig{
			MaxOpenConns:    cfg.DBMaxOpenConns,
			MaxIdleConns:    cfg.DBMaxIdleConns,
			ConnMaxLifetime: cfg.DBConnMaxLifetime,
			ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		})
		repo := repository.NewExperienceRepository(db)
		if _, err := repo.SeedIfEmpty(ctx, catalog.Fixtures(clk.Today())); err != nil {
			log.Fatalf("failed to seed catalog: %v", err)
		}
		src = repo
		opts = append(opts, service.WithInventory(repository.NewSlotInventory(db)))
	case config.CatalogSourceFixtures:
		src = catalog.NewFixtureSource(clk.Today())
	default:
		log.Fatalf("unknown CATALOG_SOURCE %q", cfg.CatalogSource)
	}

	store, err := catalog.Load(ctx, src)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	if cfg.RabbitURL != "" {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		opts = append(opts, service.WithPublisher(publisher))
	}

	opts = append(opts, service.WithIdempotencyStore(newIdempotencyStore(ctx, cfg)))

	catalogSvc := service.NewCatalogService(store, clk)
	bookingSvc := service.NewBookingService(store, clk, taxRate, opts...)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = middleware.NewValidator(service.NewValidator())
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]any{
			"status":      "ok",
			"experiences": store.Len(),
			"today":       clk.Today(),
			"tax_rate":    taxRate.String(),
		})
	})

	api := e.Group("/api/v1")
	handler.NewExperienceHandler(catalogSvc).RegisterRoutes(api)
	handler.NewBookingHandler(bookingSvc).RegisterRoutes(api)

	log.Printf("Experience storefront starting on :%s (catalog=%s, tax=%s)", cfg.ServerPort, cfg.CatalogSource, taxRate.Percent())
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}

// newIdempotencyStore prefers redis when REDIS_URL is set and reachable.
func newIdempotencyStore(ctx context.Context, cfg *config.Config) idempotency.Store {
	if cfg.RedisURL == "" {
		return idempotency.NewMemoryStore(cfg.IdempotencyTTL)
	}

	var client *redis.Client
	if strings.Contains(cfg.RedisURL, "://") {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		client = redis.NewClient(opt)
	} else {
		client = redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	}

	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("[Redis] %s unreachable, using in-memory idempotency store: %v", cfg.RedisURL, err)
		client.Close()
		return idempotency.NewMemoryStore(cfg.IdempotencyTTL)
	}

	log.Printf("[Redis] idempotency store at %s", cfg.RedisURL)
	return idempotency.NewRedisStore(client, cfg.IdempotencyTTL)
}
