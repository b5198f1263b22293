package routes

import (
	"net/http"

	"marketplace/configs"
	"marketplace/controllers"
	"marketplace/dto"
	"marketplace/entity"
	"marketplace/middlewares"
	"marketplace/repository"
	"marketplace/services"
	"marketplace/storage"
	"marketplace/ws"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const maxReviewImages = 10

// NewEngine builds the HTTP surface. hub may be nil, in which case
// orders are placed without a live seller feed and /ws/orders is absent.
func NewEngine(db *gorm.DB, cfg *configs.Config, hub *ws.OrderHub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger(), middlewares.CORSMiddleware(cfg.CORSOrigins), middlewares.ErrorHandler())

	r.Static(storage.PublicPrefix, cfg.UploadDir)
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": true}) })

	files := storage.NewLocal(cfg.UploadDir)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	cartRepo := repository.NewCartRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	var notifier services.OrderNotifier
	if hub != nil {
		notifier = hub
	}
	authSvc := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL, cfg.JWTRefreshTTL)
	userSvc := services.NewUserService(userRepo)
	productSvc := services.NewProductService(productRepo, cartRepo)
	reviewSvc := services.NewReviewService(reviewRepo, productRepo)
	cartSvc := services.NewCartService(db, cartRepo, productRepo)
	orderSvc := services.NewOrderService(db, orderRepo, productRepo, cartRepo, notifier)

	// Controllers
	authCtrl := controllers.NewAuthController(authSvc)
	userCtrl := controllers.NewUserController(userSvc)
	productCtrl := controllers.NewProductController(productSvc, files)
	reviewCtrl := controllers.NewReviewController(reviewSvc, files)
	cartCtrl := controllers.NewCartController(cartSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)

	auth := middlewares.NewAuthenticator(cfg.JWTSecret, userSvc)
	uploads := middlewares.NewUploads(cfg.UploadMaxMB)

	sellers := middlewares.Allow(entity.RoleAdmin, entity.RoleSeller)
	customers := middlewares.Allow(entity.RoleCustomer)
	ownsProduct := middlewares.OwnsResource(productSvc, middlewares.OwnershipOptions{Param: "id", AdminBypass: true})
	ownsReview := middlewares.OwnsResource(reviewSvc, middlewares.OwnershipOptions{Param: "reviewId", AdminBypass: true})

	idParams := middlewares.Validate[dto.IDParams](middlewares.Params)

	// Auth (public)
	a := r.Group("/auth")
	{
		a.POST("/register", middlewares.Validate[dto.RegisterBody](middlewares.Body), authCtrl.Register)
		a.POST("/login", middlewares.Validate[dto.LoginBody](middlewares.Body), authCtrl.Login)
		a.POST("/refresh", middlewares.Validate[dto.RefreshBody](middlewares.Body), authCtrl.Refresh)
	}

	// Users
	u := r.Group("/users")
	{
		u.PUT("/profile", auth.Require(), middlewares.Validate[dto.UpdateProfileBody](middlewares.Body), userCtrl.UpdateProfile)
		u.GET("/me", auth.Require(), userCtrl.GetMyProfile)
		u.GET("/:id", idParams, userCtrl.GetProfile)
	}

	// Products
	p := r.Group("/products")
	{
		p.GET("", middlewares.Validate[dto.ProductQuery](middlewares.Query), productCtrl.GetAll)
		p.GET("/:id", idParams, productCtrl.Get)
		p.POST("",
			auth.Require(), uploads.Single("image"), sellers,
			middlewares.Validate[dto.ProductBody](middlewares.Body),
			productCtrl.Create)
		p.POST("/import", auth.Require(), sellers, uploads.LimitBody(), productCtrl.Import)
		p.PUT("/:id",
			auth.Require(), uploads.Single("image"), sellers,
			idParams, middlewares.Validate[dto.ProductBody](middlewares.Body), ownsProduct,
			productCtrl.Update)
		p.DELETE("/:id", auth.Require(), sellers, idParams, ownsProduct, productCtrl.Delete)

		// Reviews
		p.GET("/:id/reviews", idParams, middlewares.Validate[dto.PageQuery](middlewares.Query), reviewCtrl.GetProductReviews)
		p.POST("/:id/reviews",
			auth.Require(), uploads.Array("images", maxReviewImages),
			middlewares.Validate[dto.ReviewParams](middlewares.Params),
			middlewares.Validate[dto.ReviewBody](middlewares.Body),
			reviewCtrl.WriteReview)
		p.PUT("/:id/reviews/:reviewId",
			auth.Require(), uploads.Array("images", maxReviewImages),
			middlewares.Validate[dto.ReviewIDParams](middlewares.Params),
			middlewares.Validate[dto.ReviewBody](middlewares.Body),
			ownsReview,
			reviewCtrl.UpdateReview)
		p.DELETE("/:id/reviews/:reviewId",
			auth.Require(),
			middlewares.Validate[dto.ReviewIDParams](middlewares.Params),
			ownsReview,
			reviewCtrl.DeleteReview)

		// Buying
		p.POST("/:id/order", auth.Require(), customers, idParams, middlewares.Validate[dto.OrderBody](middlewares.Body), orderCtrl.MakeOrder)
		p.POST("/:id/cart-add", auth.Require(), customers, idParams, cartCtrl.AddToCart)
		p.DELETE("/:id/cart-remove", auth.Require(), customers, idParams, cartCtrl.RemoveFromCart)
	}

	r.GET("/cart", auth.Require(), customers, cartCtrl.Get)

	o := r.Group("/orders", auth.Require(), customers)
	{
		o.GET("", middlewares.Validate[dto.PageQuery](middlewares.Query), orderCtrl.ListForMe)
		o.GET("/:id", idParams, orderCtrl.Detail)
		o.PATCH("/:id/cancel", idParams, orderCtrl.Cancel)
	}

	if hub != nil {
		r.GET("/ws/orders", auth.RequireWS(), sellers, hub.HandleWebSocket)
	}

	return r
}
