package note

import (
	"campusboard/internal/middleware"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store) {
	h := &NoteHandler{
		service:  NewNoteService(db),
		sessions: sessions,
	}

	notes := r.Group("/notes")
	notes.Use(middleware.SessionAuth(sessions))
	{
		notes.GET("", h.List)
		notes.POST("/search", h.Search)
		notes.POST("", h.Create)
		notes.GET("/:id", h.Get)
		notes.GET("/:id/edit", h.Edit)
		notes.PUT("/:id", h.Update)
		notes.DELETE("/:id", h.Delete)
	}
}
