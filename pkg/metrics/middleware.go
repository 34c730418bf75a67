package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

const unmatchedRoute = "unmatched"

// GinPrometheusMiddleware считает запросы по шаблону маршрута (/reviews/:id),
// служебные /metrics и /health не учитываются
func GinPrometheusMiddleware(serviceName string) gin.HandlerFunc {
	inFlight := HttpRequestsInFlight.WithLabelValues(serviceName)

	return func(c *gin.Context) {
		switch c.Request.URL.Path {
		case "/metrics", "/health":
			c.Next()
			return
		}

		inFlight.Inc()
		defer inFlight.Dec()
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		method := c.Request.Method

		HttpRequestsTotal.WithLabelValues(serviceName, method, route, strconv.Itoa(c.Writer.Status())).Inc()
		HttpRequestDuration.WithLabelValues(serviceName, method, route).Observe(time.Since(start).Seconds())
	}
}
