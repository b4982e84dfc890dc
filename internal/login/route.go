package login

import (
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store) {
	service := NewLoginService(db, sessions)
	h := &LoginHandler{service: service}
	lh := &LogoutHandler{service: service}

	r.POST("/login", h.handle)
	r.POST("/logout", lh.Logout)
}
