package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jokesapi/src/infra/metrics"
)

// unmatchedRoute labels requests that hit no route, keeping label
// cardinality bounded.
const unmatchedRoute = "unmatched"

// Metrics records request counts and durations per route template. A
// panicking handler is counted as a 500 and the panic is passed on to
// Recovery.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		done := metrics.RequestStarted(c.Request.Method)

		defer func() {
			status := c.Writer.Status()
			rec := recover()
			if rec != nil {
				status = http.StatusInternalServerError
			}

			route := c.FullPath()
			if route == "" {
				route = unmatchedRoute
			}
			done(route, status)

			if rec != nil {
				panic(rec)
			}
		}()

		c.Next()
	}
}
