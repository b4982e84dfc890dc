package route

import (
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"campusboard/internal/account"
	"campusboard/internal/channel"
	"campusboard/internal/comment"
	"campusboard/internal/dto"
	"campusboard/internal/login"
	"campusboard/internal/metrics"
	"campusboard/internal/middleware"
	"campusboard/internal/note"
	"campusboard/internal/post"
	"campusboard/internal/register"
	"campusboard/internal/session"
	"campusboard/internal/todo"
)

func initRoute(r *gin.Engine, db *gorm.DB, sessions *session.Store) {
	// Prometheus 指标
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// 首页：登录状态探测，未登录也可访问
	r.GET("/", middleware.OptionalSessionAuth(sessions), func(c *gin.Context) {
		dto.SuccessResponse(c, gin.H{
			"name":      c.GetString("name"),
			"logged_in": middleware.CurrentUserID(c) != 0,
		})
	})

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 无需登录的认证入口
		authGroup := apiV1.Group("/users")
		register.RegisterRoutes(authGroup, db)
		login.RegisterRoutes(authGroup, db, sessions)

		// 登录后才可访问的业务路由
		account.RegisterRoutes(apiV1, db, sessions)
		todo.RegisterRoutes(apiV1, db, sessions)
		note.RegisterRoutes(apiV1, db, sessions)
		channel.RegisterRoutes(apiV1, db, sessions)
		post.RegisterRoutes(apiV1, db, sessions)
		comment.RegisterRoutes(apiV1, db, sessions)
	}
}

func SetupRouter(db *gorm.DB, sessions *session.Store) *gin.Engine {
	r := gin.Default()
	r.Use(metrics.RequestCounter())

	// 允许多个前端端口
	allowedOrigins := []string{
		"http://localhost:3000",
		"http://localhost:3001",
	}

	// 如果设置了环境变量，添加到允许列表
	if envOrigin := os.Getenv("FRONTEND_URL"); envOrigin != "" {
		allowedOrigins = append(allowedOrigins, envOrigin)
	}

	// 设置跨域请求
	r.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	initRoute(r, db, sessions)

	return r
}
