package handlers

import (
	"time"

	"coursehub/internal/infrastructure/logger"
	"coursehub/internal/middleware"
	"coursehub/internal/observability"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/sessions"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

type RouterDeps struct {
	Log            *logger.Logger
	AllowedOrigins []string
	Tracing        bool

	Resolver     middleware.UserResolver
	SessionStore sessions.Store
	Limiter      *middleware.RateLimiter

	Auth     *AuthHandler
	Profile  *ProfileHandler
	Cart     *CartHandler
	Wishlist *WishlistHandler
	Payment  *PaymentHandler
	Trainer  *TrainerHandler
	Health   *HealthHandler
}

func NewRouter(d RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if d.Tracing {
		r.Use(otelgin.Middleware(observability.ServiceName))
	}
	r.Use(middleware.RequestLogger(d.Log), middleware.Metrics())

	config := cors.DefaultConfig()
	config.AllowOrigins = d.AllowedOrigins
	config.AllowCredentials = true
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Idempotency-Key"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(config))

	r.GET("/", d.Health.Root)
	r.GET("/healthz", d.Health.Healthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	signup := []gin.HandlerFunc{d.Auth.Signup}
	login := []gin.HandlerFunc{d.Auth.Login}
	if d.Limiter != nil {
		signup = append([]gin.HandlerFunc{d.Limiter.Limit("signup", 10, time.Minute)}, signup...)
		login = append([]gin.HandlerFunc{d.Limiter.Limit("login", 5, time.Minute)}, login...)
	}
	r.POST("/signup", signup...)
	r.POST("/login", login...)
	r.GET("/auth/google", d.Auth.GoogleRedirect)
	r.GET("/auth/google/callback", d.Auth.GoogleCallback)

	r.POST("/apply-trainer", d.Trainer.Apply)
	r.POST("/course/image", d.Trainer.UploadCourseImage)
	r.POST("/payment/success", d.Payment.PaymentSuccess)
	r.GET("/progress", d.Payment.ListProgress)
	r.GET("/orders", d.Payment.ListOrders)

	authed := r.Group("/")
	authed.Use(middleware.AuthMiddleware(d.Resolver, d.SessionStore))
	{
		authed.POST("/logout", d.Auth.Logout)
		authed.GET("/protected", d.Auth.Protected)

		authed.GET("/profile", d.Profile.GetProfile)
		authed.PUT("/profile", d.Profile.UpdateProfile)
		authed.POST("/profile/picture", d.Profile.UploadPicture)

		authed.POST("/cart/add", d.Cart.Add)
		authed.GET("/cart", d.Cart.Get)
		authed.POST("/cart/update-quantity", d.Cart.UpdateQuantity)
		authed.POST("/cart/remove", d.Cart.Remove)

		authed.POST("/wishlist/add", d.Wishlist.Add)
		authed.GET("/wishlist", d.Wishlist.Get)
		authed.POST("/wishlist/remove", d.Wishlist.Remove)
	}

	return r
}
