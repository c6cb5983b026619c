package http

import (
	"github.com/DRSN-tech/bakery-backend/docs"
	"github.com/DRSN-tech/bakery-backend/internal/cfg"
	"github.com/DRSN-tech/bakery-backend/internal/usecase"
	"github.com/DRSN-tech/bakery-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// UseCases - зависимости HTTP-слоя. Images может быть nil, тогда загрузка изображений отключена.
type UseCases struct {
	Catalog   usecase.CatalogUC
	Cart      usecase.CartUC
	Orders    usecase.OrderUC
	Checkout  usecase.CheckoutUC
	Navigator usecase.NavigatorUC
	Dashboard usecase.DashboardUC
	Images    usecase.ImageUC
}

type Router struct {
	router *chi.Mux
	cfg    *cfg.HTTPConfig
	logger logger.Logger
}

func NewRouter(router *chi.Mux, cfg *cfg.HTTPConfig, logger logger.Logger) *Router {
	return &Router{router: router, cfg: cfg, logger: logger}
}

func (r *Router) Init(uc *UseCases, maxImageSize int64) {
	r.router.Use(middleware.Recoverer)

	docs.SwaggerInfo.Host = r.cfg.SwaggerHost
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://"+r.cfg.SwaggerHost+"/swagger/doc.json"),
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		registerCatalogRoutes(v1, NewCatalogHandler(uc.Catalog, r.logger))
		registerCartRoutes(v1, NewCartHandler(uc.Cart, uc.Catalog, r.logger))
		v1.Post("/checkout", NewCheckoutHandler(uc.Checkout, r.logger).placeOrder)
		registerSessionRoutes(v1, NewSessionHandler(uc.Navigator, r.logger))

		v1.Route("/admin", func(admin chi.Router) {
			admin.Use(requireAdmin(uc.Navigator))
			registerAdminRoutes(admin, NewAdminHandler(uc.Catalog, uc.Orders, uc.Dashboard, r.logger))

			if uc.Images != nil {
				admin.Post("/images", NewImageHandler(uc.Images, maxImageSize, r.logger).uploadImage)
			}
		})
	})
}

func registerCatalogRoutes(router chi.Router, h *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/featured", h.featuredProducts)
		pr.Get("/{id}", h.getProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cart chi.Router) {
		cart.Get("/", h.getCart)
		cart.Delete("/", h.clearCart)
		cart.Post("/items", h.addItem)
		cart.Put("/items/{productId}", h.setQuantity)
		cart.Delete("/items/{productId}", h.removeItem)
	})
}

func registerSessionRoutes(router chi.Router, h *SessionHandler) {
	router.Get("/view", h.getView)
	router.Put("/view", h.navigate)
	router.Post("/session/login", h.login)
	router.Post("/session/logout", h.logout)
}

func registerAdminRoutes(router chi.Router, h *AdminHandler) {
	router.Get("/products", h.listProducts)
	router.Post("/products", h.createProduct)
	router.Put("/products/{id}", h.updateProduct)
	router.Delete("/products/{id}", h.deleteProduct)
	router.Post("/products/{id}/toggle", h.toggleProduct)
	router.Get("/orders", h.listOrders)
	router.Put("/orders/{id}/status", h.updateOrderStatus)
	router.Get("/dashboard", h.getDashboard)
}
