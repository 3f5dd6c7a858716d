package router

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/yeremiapane/lunchly/config"
	"github.com/yeremiapane/lunchly/controllers"
	"github.com/yeremiapane/lunchly/middlewares"
)

func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.RequestID())
	r.Use(middlewares.SecurityHeaders(cfg.App.Env == "production"))
	r.Use(middlewares.CORSMiddlewares(cfg.Server.Origin))
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.NewRateLimiter(cfg.Rate.Requests, cfg.Rate.Window).RateLimit())

	customerCtrl := controllers.NewCustomerController(db)
	reservationCtrl := controllers.NewReservationController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})

	customers := r.Group("/customers")
	{
		customers.GET("", customerCtrl.GetAllCustomers)
		customers.POST("", customerCtrl.CreateCustomer)
		customers.GET("/top", customerCtrl.GetTopCustomers)
		customers.GET("/:customer_id", customerCtrl.GetCustomerByID)
		customers.PUT("/:customer_id", customerCtrl.UpdateCustomer)

		customers.GET("/:customer_id/reservations", reservationCtrl.GetCustomerReservations)
		customers.POST("/:customer_id/reservations", reservationCtrl.CreateReservation)
	}

	return r
}
