package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "blogit/internal/app"
	"blogit/internal/bootstrap"
	"blogit/internal/cache"
	"blogit/internal/platform/rabbitmq"
	"blogit/internal/repository"
	"blogit/internal/transport/http/handler"
	"blogit/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	healthHandler := handler.NewHealthHandler(app)
	router.GET("/healthz", healthHandler.Check)

	userRepo := repository.NewUserRepository(app.MySQL)
	blogRepo := repository.NewBlogRepository(app.MySQL)

	jwtExpiration := time.Duration(app.Config.Auth.JWTExpireMinute) * time.Minute
	authService := appsvc.NewAuthService(userRepo, app.Config.Auth.JWTSecret, jwtExpiration)
	userService := appsvc.NewUserService(userRepo)

	eventPublisher := rabbitmq.NewEventPublisher(app.MQConn, app.Config.RabbitMQ.AuditQueue)
	listCache := cache.NewBlogListCache(app.Redis, time.Duration(app.Config.Redis.BlogListTTLSeconds)*time.Second)
	blogService := appsvc.NewBlogService(blogRepo, eventPublisher, listCache)

	authHandler := handler.NewAuthHandler(authService, app.Config.Auth.CookieName, jwtExpiration)
	blogHandler := handler.NewBlogHandler(blogService)
	userHandler := handler.NewUserHandler(userService, blogService)

	authRequired := middleware.AuthJWT(app.Config.Auth.JWTSecret, app.Config.Auth.CookieName)

	authGroup := router.Group("/auth")
	authGroup.POST("/register", authHandler.Register)
	authGroup.POST("/login", authHandler.Login)
	authGroup.POST("/logout", authHandler.Logout)
	authGroup.PATCH("/password", authRequired, authHandler.ChangePassword)

	blogGroup := router.Group("/blogs")
	blogGroup.Use(authRequired)
	blogGroup.POST("", blogHandler.Create)
	blogGroup.GET("", blogHandler.List)
	blogGroup.GET("/:id", blogHandler.Get)
	blogGroup.PATCH("/trash/:id", blogHandler.Trash)
	blogGroup.PATCH("/recover/:id", blogHandler.Recover)
	blogGroup.PATCH("/:id", blogHandler.Update)
	blogGroup.DELETE("/:id", blogHandler.Purge)

	userGroup := router.Group("/users")
	userGroup.Use(authRequired)
	userGroup.GET("", userHandler.Profile)
	userGroup.GET("/blogs", userHandler.Blogs)
	userGroup.GET("/trash", userHandler.TrashedBlogs)
	userGroup.PATCH("/:id", userHandler.UpdateProfile)
	userGroup.DELETE("", userHandler.DeleteAccount)

	return router
}
