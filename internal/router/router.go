package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/phamkimtung/nhom8web/internal/controller"
	"github.com/phamkimtung/nhom8web/internal/middleware"
)

// Controllers 路由需要的全部控制器
type Controllers struct {
	User    *controller.UserController
	Store   *controller.StoreController
	Product *controller.ProductController
	Order   *controller.OrderController
	Review  *controller.ReviewController
	Stats   *controller.StatsController
	Upload  *controller.UploadController
	TryOn   *controller.TryOnController
}

// InitRoutes 注册所有路由
func InitRoutes(r *gin.Engine, db *gorm.DB, ctls *Controllers) {
	r.Use(middleware.RequestLog())

	api := r.Group("/api")
	{
		// 数据库连通性探针，前端部署时用来确认后端活着
		api.GET("/test-db", func(c *gin.Context) {
			sqlDB, err := db.DB()
			if err == nil {
				err = sqlDB.PingContext(c.Request.Context())
			}
			if err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusOK, gin.H{"message": "kết nối cơ sở dữ liệu thành công"})
		})

		// 注册 / 登录
		api.POST("/register", ctls.User.Register)
		api.POST("/login", ctls.User.Login)

		// 用户
		users := api.Group("/users")
		{
			users.GET("/profile", middleware.JWTAuth(), ctls.User.GetProfile)
			users.PUT("/profile", middleware.JWTAuth(), ctls.User.UpdateProfile)
			users.GET("/:userId/stores", ctls.Store.ListByUser)
			users.GET("/:userId/orders", ctls.Order.ListByUser)
		}

		// 搜索历史
		api.POST("/search-history", ctls.User.CreateSearchHistory)
		api.GET("/search-history/:userId", ctls.User.ListSearchHistory)

		// 店铺
		stores := api.Group("/stores")
		{
			stores.POST("", ctls.Store.Create)
			stores.GET("/:id", ctls.Store.GetByID)
			stores.PUT("/:id", ctls.Store.Update)
			stores.GET("/:id/products", ctls.Product.ListByStore)
			stores.GET("/:id/customers", ctls.Store.Customers)
			stores.GET("/:id/customers/count", ctls.Store.CustomerCount)
			stores.GET("/:id/customers/:customerId/orders", ctls.Store.CustomerOrders)
		}

		// 商品 + 库存 + 图片
		products := api.Group("/products")
		{
			products.POST("", ctls.Product.Create)
			products.GET("", ctls.Product.ListAll)
			products.GET("/:id", ctls.Product.GetByID)
			products.PUT("/:id", ctls.Product.Update)
			products.DELETE("/:id", ctls.Product.Delete)
			products.POST("/:id/inventory", ctls.Product.AddInventory)
			products.GET("/:id/inventory", ctls.Product.ListInventory)
			products.POST("/:id/images", ctls.Product.AddImage)
			products.GET("/:id/images", ctls.Product.ListImages)
			products.GET("/:id/reviews", ctls.Review.ListByProduct)
		}
		// 库存行和图片按自身 ID 操作，不挂在商品路径下
		api.PUT("/inventory/:inventoryId", ctls.Product.UpdateInventory)
		api.DELETE("/product-images/:imageId", ctls.Product.DeleteImage)

		// 订单
		orders := api.Group("/orders")
		{
			orders.POST("", ctls.Order.Create)
			orders.GET("", ctls.Order.ListAll)
			orders.GET("/by-date", ctls.Order.ListByDateRange)
			orders.GET("/:id", ctls.Order.GetByID)
			orders.PUT("/:id/status", ctls.Order.UpdateStatus)
		}

		// 评价
		reviews := api.Group("/reviews")
		{
			reviews.POST("", ctls.Review.Create)
			reviews.GET("", ctls.Review.ListAll)
			reviews.GET("/check", ctls.Review.HasReviewed)
			reviews.GET("/overview", ctls.Review.Overview)
		}

		// 统计
		stats := api.Group("/stats")
		{
			stats.GET("/revenue", ctls.Stats.Revenue)
			stats.GET("/weekly-summary", ctls.Stats.WeeklySummary)
			stats.GET("/customers", ctls.Stats.CustomerSummaries)
		}

		// 图片上传
		api.POST("/upload", middleware.JWTAuth(), ctls.Upload.UploadImage)

		// AI 试穿，接口按量计费，每个用户做冷却限流
		tryOn := api.Group("/try-on", middleware.JWTAuth())
		{
			tryOn.POST("", middleware.Cooldown("try-on", 10*time.Second), ctls.TryOn.TryOn)
			tryOn.GET("/history", ctls.TryOn.History)
		}

		// ==================== 越南语旧版路由 ====================
		// 旧前端写死了这几个路径，保留别名，别删
		api.POST("/danh-gia", ctls.Review.Create)
		api.GET("/danh-gia/tong-quan", ctls.Review.Overview)
		api.GET("/xem-danh-gia", ctls.Review.ListAll)
		api.GET("/san-pham/:id/danh-gia", ctls.Review.ListByProduct)
		api.GET("/don-hang/theo-ngay", ctls.Order.ListByDateRange)
	}
}
