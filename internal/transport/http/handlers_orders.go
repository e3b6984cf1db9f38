package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/gin-gonic/gin"
)

// checkout — POST /checkout — оформление заказа из корзины сессии:
// 1) снимок корзины (пустая — 400);
// 2) платёж на сумму корзины по текущим ценам (отказ — 402, корзина цела);
// 3) сборка заказа с заморозкой цен;
// 4) очистка корзины — только после успешной сборки.
func (h *Handler) checkout(c *gin.Context) {
	ctx := c.Request.Context()
	session := cartSession(c)
	userID := currentUserID(c)

	snapshot := h.cart.Get(session)
	if len(snapshot) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	total, err := h.cart.Total(ctx, session)
	if err != nil {
		h.log.Errorf(ctx, "cart.Total failed session=%s err=%v", session, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	paid, err := h.payment.Process(ctx, userID, total)
	if err != nil {
		h.log.Errorf(ctx, "payment failed user=%d err=%v", userID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "payment service unavailable"})
		return
	}
	if !paid {
		c.JSON(http.StatusPaymentRequired, gin.H{"error": "payment declined"})
		return
	}

	order, dropped, err := h.orders.CreateOrderFromCart(ctx, snapshot, userID)
	if errors.Is(err, domain.ErrEmptyCart) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}
	if err != nil {
		h.log.Errorf(ctx, "CreateOrderFromCart failed user=%d err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	h.cart.Clear(session)

	c.JSON(http.StatusCreated, gin.H{"order": order, "dropped_item_ids": dropped})
}

// listOrders — GET /orders — история заказов пользователя.
func (h *Handler) listOrders(c *gin.Context) {
	userID := currentUserID(c)

	orders, err := h.orders.UserOrders(c.Request.Context(), userID)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "UserOrders failed user=%d err=%v", userID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// getOrderByID — GET /orders/:id.
func (h *Handler) getOrderByID(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}

	order, err := h.orders.OrderByID(c.Request.Context(), id)
	if errors.Is(err, domain.ErrOrderNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	if err != nil {
		h.log.Errorf(c.Request.Context(), "OrderByID failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, order)
}
