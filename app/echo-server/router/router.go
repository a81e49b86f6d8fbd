package router

import (
	"hamroCraft/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, selfOrAdmin echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.GET("/email-verification/:code", handler.VerifyEmail)
	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.GET("/:id", handler.GetUserByID, authRequired, selfOrAdmin)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired, sellerOnly, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)

	products.POST("", handler.CreateProduct, authRequired, sellerOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, sellerOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, sellerOnly)

	products.PUT("/:id/verify", handler.VerifyProduct, authRequired, adminOnly)
}

// Search and suggestions stay public so anonymous shoppers can browse.
func SetupSearchRoutes(api *echo.Group, handler *rest.SearchHandler) {
	products := api.Group("/products")

	products.GET("/search", handler.Search)
	products.GET("/suggestions", handler.Suggest)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendationHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/products/:id/related", handler.Related)

	reco := api.Group("/recommendations", authRequired)
	reco.GET("", handler.Personalized)
}

func SetupReviewRoutes(api *echo.Group, handler *rest.ReviewHandler, authRequired echo.MiddlewareFunc) {
	api.GET("/products/:id/reviews", handler.GetProductReviews)
	api.POST("/products/:id/reviews", handler.SubmitReview, authRequired)
}

func SetupEventRoutes(api *echo.Group, handler *rest.BehaviorHandler, authRequired echo.MiddlewareFunc) {
	events := api.Group("/events", authRequired)

	events.POST("", handler.RecordEvent)
	events.GET("/history", handler.GetUserHistory)
}
