package provider

import (
	"github.com/jusas-smoothie/api/internal/cache"
	"github.com/jusas-smoothie/api/internal/config"
	"github.com/jusas-smoothie/api/internal/logger"
	"github.com/jusas-smoothie/api/internal/models"
	"github.com/jusas-smoothie/api/internal/queue"
	"github.com/jusas-smoothie/api/internal/repository"
	"github.com/jusas-smoothie/api/internal/service"
)

// Container wires repositories and services together.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	UserRepo      repository.UserRepository
	ProductRepo   repository.ProductRepository
	CartRepo      repository.CartRepository
	OrderRepo     repository.OrderRepository
	DashboardRepo repository.DashboardRepository

	// Services
	AuthService      *service.AuthService
	ProductService   *service.ProductService
	CartService      *service.CartService
	OrderService     *service.OrderService
	DashboardService *service.DashboardService
	UploadService    *service.UploadService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	var queueClient *queue.Client
	if cfg.Queue.Enabled {
		qc, err := queue.NewClient(&cfg.Queue)
		if err != nil {
			logger.Errorw("provider_init_queue_client_failed", "error", err)
		} else {
			queueClient = qc
		}
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}
	c.initRepositories()
	c.initServices()
	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.UserRepo = repository.NewUserRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartRepo = repository.NewCartRepository(db)
	c.OrderRepo = repository.NewOrderRepository(db)
	c.DashboardRepo = repository.NewDashboardRepository(db)
}

func (c *Container) initServices() {
	c.AuthService = service.NewAuthService(c.Config, c.UserRepo)
	c.ProductService = service.NewProductService(c.ProductRepo)
	c.CartService = service.NewCartService(c.CartRepo, c.ProductRepo)
	c.OrderService = service.NewOrderService(c.OrderRepo, c.ProductRepo, c.CartRepo, c.QueueClient)
	c.DashboardService = service.NewDashboardService(&c.Config.Dashboard, c.DashboardRepo)
	c.UploadService = service.NewUploadService(c.Config)
}
