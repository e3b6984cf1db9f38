package rest

import (
	"net/http"

	"github.com/Gunvolt24/intershop/internal/ports"
	"github.com/Gunvolt24/intershop/internal/usecase"
	"github.com/Gunvolt24/intershop/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handler — HTTP-слой над usecase-сервисами витрины.
type Handler struct {
	items   ports.ItemReader
	cart    *usecase.CartService
	orders  *usecase.OrderService
	payment ports.PaymentClient
	log     ports.Logger
}

// NewHandler — DI-конструктор.
func NewHandler(items ports.ItemReader, cart *usecase.CartService, orders *usecase.OrderService, payment ports.PaymentClient, log ports.Logger) *Handler {
	return &Handler{
		items:   items,
		cart:    cart,
		orders:  orders,
		payment: payment,
		log:     log,
	}
}

// NewRouter — собирает маршруты витрины.
// otelServiceName непустой — включаем otelgin-трейсинг запросов.
func NewRouter(h *Handler, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestIDMiddleware())
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.GET("/items", h.listItems)
	r.GET("/items/:id", h.getItemByID)

	r.GET("/cart", h.getCart)
	r.POST("/cart/add/:id", h.addToCart)
	r.POST("/cart/remove/:id", h.removeFromCart)
	r.POST("/cart/delete/:id", h.deleteFromCart)

	r.POST("/checkout", h.checkout)

	r.GET("/orders", h.listOrders)
	r.GET("/orders/:id", h.getOrderByID)

	return r
}
