package register

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.RouterGroup, db *gorm.DB) {
	h := &RegisterHandler{
		service: NewRegisterService(db),
	}
	r.POST("/register", h.handle)
}
