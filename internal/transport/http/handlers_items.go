package rest

import (
	"errors"
	"net/http"

	"github.com/Gunvolt24/intershop/internal/domain"
	"github.com/Gunvolt24/intershop/pkg/httpx"
	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 10
	maxPageSize     = 100
)

// listItems — GET /items?search=&sort=&page=&size= — страница каталога.
func (h *Handler) listItems(c *gin.Context) {
	query := c.Query("search")
	sort := domain.ParseSort(c.Query("sort"))
	page, size := httpx.ParsePage(c, defaultPageSize, maxPageSize)

	result, err := h.items.Search(c.Request.Context(), query, page, size, sort)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "Search failed query=%q err=%v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// getItemByID — GET /items/:id — карточка товара.
func (h *Handler) getItemByID(c *gin.Context) {
	id := pathID(c)
	if id == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item id"})
		return
	}

	item, err := h.items.GetItem(c.Request.Context(), id)
	if errors.Is(err, domain.ErrItemNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
		return
	}
	if err != nil {
		h.log.Errorf(c.Request.Context(), "GetItem failed id=%d err=%v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(http.StatusOK, item)
}
