package todo

import (
	"campusboard/internal/middleware"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store) {
	h := &TodoHandler{
		service:  NewTodoService(db),
		sessions: sessions,
	}

	todos := r.Group("/todos")
	todos.Use(middleware.SessionAuth(sessions))
	{
		todos.GET("", h.List)
		todos.POST("/search", h.Search)
		todos.POST("", h.Create)
		todos.GET("/:id", h.Get)
		todos.GET("/:id/edit", h.Edit)
		todos.PUT("/:id", h.Update)
		todos.DELETE("/:id", h.Delete)
	}
}
