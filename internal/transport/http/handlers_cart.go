package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getCart — GET /cart — позиции корзины с товарами каталога и суммой.
func (h *Handler) getCart(c *gin.Context) {
	session := cartSession(c)

	items, err := h.cart.Items(c.Request.Context(), session)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "cart.Items failed session=%s err=%v", session, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	var total float64
	for _, ci := range items {
		total += ci.Subtotal()
	}
	c.JSON(http.StatusOK, gin.H{"items": items, "total": total})
}

// addToCart — POST /cart/add/:id — плюс один к позиции.
func (h *Handler) addToCart(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	h.cart.Add(cartSession(c), id)
	c.Status(http.StatusNoContent)
}

// removeFromCart — POST /cart/remove/:id — минус один, в ноль позиция исчезает.
func (h *Handler) removeFromCart(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	h.cart.Remove(cartSession(c), id)
	c.Status(http.StatusNoContent)
}

// deleteFromCart — POST /cart/delete/:id — позиция удаляется целиком.
func (h *Handler) deleteFromCart(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}
	h.cart.Delete(cartSession(c), id)
	c.Status(http.StatusNoContent)
}
