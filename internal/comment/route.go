package comment

import (
	"campusboard/internal/middleware"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store) {
	h := &CommentHandler{
		service:  NewCommentService(db),
		sessions: sessions,
	}

	comments := r.Group("/comment")
	comments.Use(middleware.SessionAuth(sessions))
	{
		comments.POST("", h.Create)
		comments.DELETE("/:id", h.Delete)
	}
}
