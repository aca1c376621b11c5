package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/controller"
	"github.com/phamkimtung/nhom8web/internal/model"
	"github.com/phamkimtung/nhom8web/internal/repository"
	"github.com/phamkimtung/nhom8web/internal/router"
	"github.com/phamkimtung/nhom8web/internal/service"
	"github.com/phamkimtung/nhom8web/internal/task"
	"github.com/phamkimtung/nhom8web/pkg/database"
	"github.com/phamkimtung/nhom8web/pkg/logger"
)

func main() {
	// 1. 配置和日志
	_ = godotenv.Load()
	logger.Init(getEnv("LOG_LEVEL", "info"), getEnv("GIN_MODE", "") != "release")

	// 2. 初始化数据库
	db := initDatabase()

	// 3. 初始化依赖
	deps := initDependencies(db)

	// 4. 启动定时任务
	initTasks(deps)

	// 5. 初始化路由
	if getEnv("GIN_MODE", "") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	router.InitRoutes(r, db, deps.Controllers)

	// 6. 启动服务
	startServer(r)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Repos       *Repositories
	Services    *Services
	Controllers *router.Controllers
}

// Repositories 仓库集合
type Repositories struct {
	User          repository.UserRepository
	SearchHistory repository.SearchHistoryRepository
	Store         repository.StoreRepository
	Product       repository.ProductRepository
	Inventory     repository.InventoryRepository
	ProductImage  repository.ProductImageRepository
	Order         repository.OrderRepository
	OrderItem     repository.OrderItemRepository
	Review        repository.ReviewRepository
	Stats         repository.StatsRepository
	TryOnLog      repository.TryOnLogRepository
}

// Services 服务集合
type Services struct {
	User    *service.UserService
	Store   *service.StoreService
	Product *service.ProductService
	Order   *service.OrderService
	Review  *service.ReviewService
	Stats   *service.StatsService
	Storage *service.StorageService
	TryOn   *service.TryOnService
}

// ==================== 初始化函数 ====================

// initDatabase 初始化数据库
func initDatabase() *gorm.DB {
	dsn := getEnv("DATABASE_URL", "")
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			getEnv("DB_HOST", "localhost"),
			getEnv("DB_USER", "postgres"),
			getEnv("DB_PASSWORD", ""),
			getEnv("DB_NAME", "nhom8web"),
			getEnv("DB_PORT", "5432"),
		)
	}

	return database.InitDB(dsn, getEnv("GIN_MODE", "") != "release",
		// 用户
		&model.User{}, &model.SearchHistory{},
		// 店铺
		&model.Store{},
		// 商品
		&model.Product{}, &model.Inventory{}, &model.ProductImage{},
		// 订单
		&model.Order{}, &model.OrderItem{},
		// 评价
		&model.Review{},
		// AI 试穿
		&model.TryOnLog{},
	)
}

// initDependencies 初始化所有依赖
func initDependencies(db *gorm.DB) *Dependencies {
	// -------- Repo 层 --------
	repos := initRepositories(db)

	// -------- 存储 & 试穿服务 --------
	storageSvc := initStorageService()
	tryOnSvc := service.NewTryOnService(&service.TryOnConfig{
		APIToken:     getEnv("TRYON_API_TOKEN", ""),
		ModelVersion: getEnv("TRYON_MODEL_VERSION", ""),
		BaseURL:      getEnv("TRYON_API_URL", ""),
	}, repos.Product, repos.TryOnLog)

	// -------- 业务服务 --------
	services := &Services{
		Storage: storageSvc,
		TryOn:   tryOnSvc,
	}
	services.User = service.NewUserService(repos.User, repos.SearchHistory)
	services.Store = service.NewStoreService(repos.Store, repos.Stats)
	services.Product = service.NewProductService(repos.Product, repos.Inventory, repos.ProductImage)
	services.Order = service.NewOrderService(repos.Order, repos.OrderItem)
	services.Review = service.NewReviewService(repos.Review, repos.Product)
	services.Stats = service.NewStatsService(repos.Stats, repos.Order)

	// -------- Controller 层 --------
	controllers := initControllers(services)

	return &Dependencies{
		DB:          db,
		Repos:       repos,
		Services:    services,
		Controllers: controllers,
	}
}

// initRepositories 初始化所有仓库
func initRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:          repository.NewUserRepository(db),
		SearchHistory: repository.NewSearchHistoryRepository(db),
		Store:         repository.NewStoreRepository(db),
		Product:       repository.NewProductRepository(db),
		Inventory:     repository.NewInventoryRepository(db),
		ProductImage:  repository.NewProductImageRepository(db),
		Order:         repository.NewOrderRepository(db),
		OrderItem:     repository.NewOrderItemRepository(db),
		Review:        repository.NewReviewRepository(db),
		Stats:         repository.NewStatsRepository(db),
		TryOnLog:      repository.NewTryOnLogRepository(db),
	}
}

// initStorageService 初始化存储服务
func initStorageService() *service.StorageService {
	storageSvc, err := service.NewStorageService(&service.StorageConfig{
		Provider:  getEnv("STORAGE_PROVIDER", "local"),
		Bucket:    getEnv("AWS_BUCKET", ""),
		Region:    getEnv("AWS_REGION", ""),
		AccessKey: getEnv("AWS_ACCESS_KEY_ID", ""),
		SecretKey: getEnv("AWS_SECRET_ACCESS_KEY", ""),
		CDNDomain: getEnv("AWS_CDN_DOMAIN", ""),
		BasePath:  getEnv("STORAGE_BASE_PATH", "uploads"),
		Endpoint:  getEnv("STORAGE_BASE_URL", ""),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("存储服务初始化失败")
	}
	return storageSvc
}

// initControllers 初始化所有控制器
func initControllers(svc *Services) *router.Controllers {
	return &router.Controllers{
		User:    controller.NewUserController(svc.User),
		Store:   controller.NewStoreController(svc.Store),
		Product: controller.NewProductController(svc.Product),
		Order:   controller.NewOrderController(svc.Order),
		Review:  controller.NewReviewController(svc.Review),
		Stats:   controller.NewStatsController(svc.Stats),
		Upload:  controller.NewUploadController(svc.Storage),
		TryOn:   controller.NewTryOnController(svc.TryOn),
	}
}

// ==================== 定时任务 ====================

// initTasks 初始化定时任务
func initTasks(deps *Dependencies) {
	// 商品评分对账
	ratingTask := task.NewRatingTask(deps.Repos.Product, deps.Services.Review)
	ratingTask.Start()

	// 搜索历史清理
	retentionDays := 90
	if raw := getEnv("SEARCH_HISTORY_RETENTION_DAYS", ""); raw != "" {
		if _, err := fmt.Sscanf(raw, "%d", &retentionDays); err != nil {
			log.Warn().Str("value", raw).Msg("SEARCH_HISTORY_RETENTION_DAYS 不是数字，使用默认 90 天")
			retentionDays = 90
		}
	}
	cleanupTask := task.NewCleanupTask(deps.Repos.SearchHistory, retentionDays)
	cleanupTask.Start()

	log.Info().Msg("定时任务已启动")
}

// ==================== 服务启动 ====================

// startServer 启动服务，收到退出信号后优雅关闭
func startServer(r *gin.Engine) {
	port := getEnv("SERVER_PORT", "3000")

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("服务启动")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("服务启动失败")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("收到退出信号，开始优雅关闭")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("服务关闭异常")
	}
	log.Info().Msg("服务已退出")
}

// getEnv 读取环境变量，空则用默认值
func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
