package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/orders-admin/auth"
	"github.com/yeremiapane/orders-admin/controllers"
	"github.com/yeremiapane/orders-admin/dashboard"
	"github.com/yeremiapane/orders-admin/imageurl"
	"github.com/yeremiapane/orders-admin/middlewares"
	"github.com/yeremiapane/orders-admin/store"
	"github.com/yeremiapane/orders-admin/views"
)

// Deps are the collaborators the routes are built from.
type Deps struct {
	Store         store.OrderStore
	Gate          *auth.Gate
	Tokens        *auth.Tokens
	Images        imageurl.Resolver
	AllowedOrigin string
	SecureCookie  bool
	// UploadsDir is served under /uploads when set.
	UploadsDir string
	// RateLimit is the per-IP request budget per second; 0 disables it.
	RateLimit int
}

func SetupRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.SetHTMLTemplate(views.Templates())

	r.Use(middlewares.RequestID())
	if d.RateLimit > 0 {
		r.Use(middlewares.NewRateLimiter(d.RateLimit, 1).RateLimit())
	}
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.CORSMiddlewares(d.AllowedOrigin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.SessionMiddleware(d.Tokens))

	if d.UploadsDir != "" {
		r.Static("/uploads", d.UploadsDir)
	}

	sessions := dashboard.NewSessions(d.Store)
	authCtrl := controllers.NewAuthController(d.Gate, d.Tokens, d.SecureCookie)
	orderCtrl := controllers.NewOrderController(sessions, d.Images)
	orderAPICtrl := controllers.NewOrderAPIController(sessions)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	r.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin")
	})

	// ----------------------------------------------------------------
	//                      LOGIN
	// ----------------------------------------------------------------
	r.GET("/admin", authCtrl.LoginPage)
	r.POST("/admin/login", authCtrl.Login)
	r.POST("/api/login", authCtrl.APILogin)

	// ----------------------------------------------------------------
	//                      ORDER MANAGEMENT (pages)
	// ----------------------------------------------------------------
	admin := r.Group("/admin/dashboard")
	admin.Use(middlewares.RequireAdmin("/admin"))
	{
		admin.GET("", orderCtrl.Dashboard)
		admin.POST("/orders/:order_id/toggle", orderCtrl.ToggleDetail)
		admin.POST("/orders/:order_id/status", middlewares.OrderMutationLogger("status"), orderCtrl.ChangeStatus)
		admin.GET("/orders/:order_id/delete", orderCtrl.ConfirmDelete)
		admin.POST("/orders/:order_id/delete", middlewares.OrderMutationLogger("delete"), orderCtrl.DeleteOrder)
	}

	// ----------------------------------------------------------------
	//                      ORDER MANAGEMENT (JSON)
	// ----------------------------------------------------------------
	api := r.Group("/api")
	api.Use(middlewares.RequireAdminAPI())
	{
		api.GET("/orders", orderAPICtrl.GetOrders)
		api.POST("/orders/:order_id/toggle", orderAPICtrl.ToggleDetail)
		api.PATCH("/orders/:order_id", middlewares.OrderMutationLogger("status"), orderAPICtrl.UpdateStatus)
		api.DELETE("/orders/:order_id", middlewares.OrderMutationLogger("delete"), orderAPICtrl.DeleteOrder)
	}

	return r
}
