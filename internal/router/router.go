// Package router builds the echo router: the global middleware chain and
// every route mapped to its handler.
package router

import (
	"github.com/deppfellow/pizzeria/internal/handler"
	"github.com/deppfellow/pizzeria/internal/middleware"
	"github.com/deppfellow/pizzeria/internal/server"
	"github.com/labstack/echo/v4"
)

func NewRouter(s *server.Server, h *handler.Handlers) *echo.Echo {
	middlewares := middleware.NewMiddlewares(s)

	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.HTTPErrorHandler = middlewares.Global.GlobalErrorHandler

	// RequestID must precede the context enhancer, which must follow the
	// New Relic middleware to pick up trace ids.
	router.Use(
		middlewares.Global.CORS(),
		middlewares.Global.Secure(),
		middleware.RequestID(),
		middlewares.Tracing.NewRelicMiddleware(),
		middlewares.Tracing.EnhanceTracing(),
		middlewares.ContextEnhancer.EnhanceContext(),
		middlewares.Global.RequestLogger(),
		middlewares.Metrics.RecordRequests(),
		middlewares.Global.Recover(),
	)

	registerSystemRoutes(router, s, h)
	registerAPIRoutes(router, h)

	return router
}

func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	r.GET("/", h.Index.Index)

	restaurants := r.Group("/restaurants")
	restaurants.GET("", h.Restaurant.ListRestaurants)
	restaurants.GET("/:id", h.Restaurant.GetRestaurant)
	restaurants.DELETE("/:id", h.Restaurant.DeleteRestaurant)

	r.GET("/pizzas", h.Pizza.ListPizzas)

	r.POST("/restaurant_pizzas", h.RestaurantPizza.CreateRestaurantPizza)
}
