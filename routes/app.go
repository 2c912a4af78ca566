package routes

import (
	"context"
	"errors"
	"os"
	"time"

	"furniture-shop/config"
	"furniture-shop/libs"
	"furniture-shop/middleware"
	"furniture-shop/repositories"
	"furniture-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const cartSweepInterval = 10 * time.Minute

// App is the wired HTTP application together with the connections it owns.
type App struct {
	Router *gin.Engine

	pool     *pgxpool.Pool
	redis    *redis.Client
	checkout *services.CheckoutService
	stop     context.CancelFunc
}

// NewApp connects to Postgres and Redis, builds every service and mounts
// the routes. Redis is optional: without it carts live in process memory
// and the catalog is read straight from the database.
func NewApp(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	pool, err := config.ConnectDB(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	if !cfg.IsServerless() {
		if err := os.MkdirAll(cfg.UploadDir, os.ModePerm); err != nil {
			pool.Close()
			return nil, err
		}
	}

	rdb := config.ConnectRedis(ctx, cfg, logger)
	bgCtx, stop := context.WithCancel(context.Background())

	var carts services.CartStore
	if rdb != nil {
		carts = repositories.NewRedisCartStore(rdb, cfg.CartTTL)
	} else {
		memory := repositories.NewMemoryCartStore(cfg.CartTTL)
		go sweepCarts(bgCtx, memory, logger)
		carts = memory
	}

	var notifier services.OrderNotifier
	mailer, err := libs.NewMailer(cfg)
	switch {
	case err == nil:
		notifier = mailer
	case errors.Is(err, libs.ErrMailerNotConfigured):
		logger.Warn("order confirmation emails disabled", zap.Error(err))
	default:
		stop()
		pool.Close()
		return nil, err
	}

	products := repositories.NewProductRepository(pool)
	orders := repositories.NewOrderRepository(pool)
	users := repositories.NewUserRepository(pool)

	checkout := services.NewCheckoutService(carts, orders, users, notifier, cfg.CheckoutTimeout, logger)
	svc := Services{
		Auth:     services.NewAuthService(users, cfg.JWTSecret, cfg.JWTExpiry),
		Users:    services.NewUserService(users),
		Products: services.NewProductService(products, rdb, libs.NewImageStore(cfg, logger), logger),
		Carts:    services.NewCartService(carts, products),
		Checkout: checkout,
		Orders:   services.NewOrderService(orders, logger),
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.CORSMiddleware(cfg.OriginURL))
	SetupRoutes(router, cfg, svc, logger)

	return &App{
		Router:   router,
		pool:     pool,
		redis:    rdb,
		checkout: checkout,
		stop:     stop,
	}, nil
}

func sweepCarts(ctx context.Context, store *repositories.MemoryCartStore, logger *zap.Logger) {
	ticker := time.NewTicker(cartSweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logger.Debug("expired carts dropped", zap.Int("count", n))
			}
		}
	}
}

// Close waits for queued confirmation emails, then releases connections.
func (a *App) Close() {
	a.stop()
	a.checkout.Wait()
	if a.redis != nil {
		_ = a.redis.Close()
	}
	a.pool.Close()
}
