package httpx

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// ClampInt — ограничение значения v в диапазоне [lo, hi].
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ParsePage — читает page/size из query с дефолтами и границами.
// page — 1-based; нечисловые значения откатываются к дефолтам.
func ParsePage(c *gin.Context, defaultSize, maxSize int) (page, size int) {
	page = 1
	if v, err := strconv.Atoi(c.DefaultQuery("page", "1")); err == nil && v >= 1 {
		page = v
	}
	size = ClampInt(defaultSize, 1, maxSize)
	if v, err := strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize))); err == nil {
		size = ClampInt(v, 1, maxSize)
	}
	return page, size
}
