package account

import (
	"campusboard/internal/middleware"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store) {
	h := &AccountHandler{
		service:  NewAccountService(db),
		sessions: sessions,
	}

	users := r.Group("/users")
	users.Use(middleware.SessionAuth(sessions))
	{
		users.GET("/dashboard", h.Dashboard)
		users.GET("/accounts", h.Directory)
		users.POST("/accounts/search", h.Search)
		users.POST("/accounts/filter", h.Filter)
		users.GET("/profile", h.Profile)
		users.PUT("/profile", h.UpdateProfile)
	}
}
