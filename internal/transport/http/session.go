package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionCookie = "cart_session"

// sessionCookieTTL — год в секундах; корзина живёт в памяти, кука
// нужна только чтобы переживать перезапуски браузера.
const sessionCookieTTL = 365 * 24 * 3600

// cartSession — идентификатор корзины из куки; при первом заходе
// генерирует UUID и выставляет куку.
func cartSession(c *gin.Context) string {
	if sid, err := c.Cookie(sessionCookie); err == nil && sid != "" {
		return sid
	}
	sid := uuid.New().String()
	c.SetCookie(sessionCookie, sid, sessionCookieTTL, "/", "", false, true)
	return sid
}

// currentUserID — пользователь из заголовка X-User-ID.
// Аутентификации в ядре нет: по умолчанию демо-пользователь 1.
func currentUserID(c *gin.Context) int64 {
	if v, err := strconv.ParseInt(c.GetHeader("X-User-ID"), 10, 64); err == nil && v > 0 {
		return v
	}
	return 1
}

// pathID — числовой :id из пути; 0 — признак ошибки разбора.
func pathID(c *gin.Context) int64 {
	v, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return v
}
