package post

import (
	"campusboard/internal/middleware"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store) {
	h := &PostHandler{
		service:  NewPostService(db),
		sessions: sessions,
	}

	posts := r.Group("/post")
	posts.Use(middleware.SessionAuth(sessions))
	{
		posts.POST("", h.Create)
		posts.GET("/:id", h.Detail)
		posts.GET("/:id/edit", h.Edit)
		posts.PUT("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}
