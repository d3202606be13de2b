package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/TrungQuaan22/ProjectIII-Elearning/controllers"
	"github.com/TrungQuaan22/ProjectIII-Elearning/middleware"
	"github.com/TrungQuaan22/ProjectIII-Elearning/services"
)

type Controllers struct {
	Auth       *controllers.AuthController
	Course     *controllers.CourseController
	Cart       *controllers.CartController
	Order      *controllers.OrderController
	Payment    *controllers.PaymentController
	Enrollment *controllers.EnrollmentController
}

// Register wires all HTTP routes.
func Register(r *gin.Engine, tokens *services.TokenService, c Controllers) {
	r.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "OK"})
	})

	r.POST("/auth/register", c.Auth.Register)
	r.POST("/auth/login", c.Auth.Login)

	r.GET("/courses", c.Course.ListCourses)
	r.GET("/courses/:slug", c.Course.GetCourseBySlug)

	auth := middleware.Auth(tokens)

	cart := r.Group("/cart", auth)
	cart.GET("", c.Cart.GetCart)
	cart.POST("", c.Cart.AddToCart)
	cart.DELETE("/:course_id", c.Cart.RemoveFromCart)
	cart.DELETE("", c.Cart.ClearCart)

	orders := r.Group("/orders", auth)
	orders.POST("", c.Order.CreateOrder)
	orders.GET("", c.Order.GetOrders)
	orders.GET("/:id", c.Order.GetOrderByID)
	orders.POST("/:id/cancel", c.Order.CancelOrder)

	payments := r.Group("/payments")
	payments.POST("/vnpay/:order_id", auth, c.Payment.CreatePayment)
	// Both callbacks are unauthenticated: the gateway authenticates itself
	// through the request signature.
	payments.GET("/vnpay/callback", c.Payment.Callback)
	payments.GET("/vnpay/ipn", c.Payment.IPN)

	enrollments := r.Group("/enrollments", auth)
	enrollments.GET("", c.Enrollment.GetUserEnrollments)
	enrollments.GET("/:id", c.Enrollment.GetEnrollment)
	enrollments.PUT("/:id/progress", c.Enrollment.UpdateProgress)
	enrollments.PUT("/:id/status", c.Enrollment.UpdateStatus)

	admin := r.Group("/admin", auth, middleware.RequireAdmin())
	admin.GET("/orders", c.Order.GetAllOrders)
	admin.GET("/orders/export", c.Order.ExportOrders)
	admin.POST("/courses", c.Course.CreateCourse)
	admin.PUT("/courses/:id", c.Course.UpdateCourse)
}
