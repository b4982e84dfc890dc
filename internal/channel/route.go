package channel

import (
	"campusboard/internal/middleware"
	"campusboard/internal/session"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB, sessions *session.Store) {
	h := &ChannelHandler{
		service:  NewChannelService(db),
		sessions: sessions,
	}

	channels := r.Group("/channel")
	channels.Use(middleware.SessionAuth(sessions))
	{
		channels.GET("", h.Feed)
		channels.POST("/search", h.SearchPosts)
		channels.GET("/allchannels", h.AllChannels)
		channels.POST("/allchannels/search", h.SearchChannels)
		channels.POST("", h.Create)
		channels.GET("/:id", h.Detail)
		channels.DELETE("/:id", h.Delete)
	}
}
