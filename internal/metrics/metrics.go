package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "campusboard", Name: "http_requests_total", Help: "Handled HTTP requests",
	}, []string{"method", "path"})
	HandlerErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "campusboard", Name: "handler_errors_total", Help: "Handler errors",
	})
	StoreErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "campusboard", Name: "store_errors_total", Help: "Database and cache failures",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, HandlerErrors, StoreErrors)
}

func Handler() http.Handler { return promhttp.Handler() }

// RequestCounter 按方法与路由模板计数
func RequestCounter() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		HTTPRequests.WithLabelValues(c.Request.Method, path).Inc()
	}
}
