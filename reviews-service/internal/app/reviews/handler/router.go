package handler

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"chillgamer/pkg/logger"
	"chillgamer/pkg/metrics"
)

const serviceName = "reviews-service"

func SetupRoutes(reviewHandler *ReviewHandler, wishlistHandler *WishlistHandler, userHandler *UserHandler) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())

	router.Use(logger.GinLoggerMiddleware())

	router.Use(metrics.GinPrometheusMiddleware(serviceName))

	// Фронтенд обращается с любого домена
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Accept", "Content-Type", logger.RequestIDHeader},
		ExposeHeaders:   []string{logger.RequestIDHeader},
		MaxAge:          300,
	}))

	router.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Chill-Gamer Server is Running")
	})

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": serviceName,
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	reviews := router.Group("/reviews")
	{
		reviews.GET("", reviewHandler.ListReviews)
		reviews.POST("", reviewHandler.CreateReview)
		reviews.GET("/:id", reviewHandler.GetReview)
		reviews.PUT("/:id", reviewHandler.ReplaceReview)
		reviews.DELETE("/:id", reviewHandler.DeleteReview)
	}

	router.POST("/review", reviewHandler.CreateReview)
	router.GET("/topreviews", reviewHandler.ListTopReviews)
	router.GET("/reviewsforall", reviewHandler.ListReviewsByCriteria)
	router.GET("/myreviews", reviewHandler.ListMyReviews)

	router.GET("/wishlist", wishlistHandler.ListWishlist)
	router.POST("/wishlist", wishlistHandler.CreateWishlistEntry)
	router.GET("/mywatchlist", wishlistHandler.ListMyWishlist)
	router.DELETE("/mywatchlist/:id", wishlistHandler.DeleteWishlistEntry)

	router.POST("/usercoll", userHandler.CreateUser)

	return router
}
