package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/khaoyai-getaway/content-service/pkg/metrics"
)

// RateLimitMiddleware returns a Gin middleware enforcing a token-bucket limit
// per client IP. All public traffic is anonymous, so IP is the only useful key.
// Each returned middleware owns its limiter set; two instances with different
// rps/burst never share buckets.
// rps = allowed events per second, burst = maximum tokens in bucket.
func RateLimitMiddleware(rps float64, burst int) gin.HandlerFunc {
	var limiters sync.Map // map[string]*rate.Limiter, keyed by client IP

	limiterFor := func(ip string) *rate.Limiter {
		if v, ok := limiters.Load(ip); ok {
			return v.(*rate.Limiter)
		}
		lim, _ := limiters.LoadOrStore(ip, rate.NewLimiter(rate.Limit(rps), burst))
		return lim.(*rate.Limiter)
	}

	return func(c *gin.Context) {
		ip := c.ClientIP()
		if ip == "" {
			ip = "unknown"
		}
		if !limiterFor(ip).Allow() {
			c.Header("Retry-After", "1")
			metrics.RateLimitRejected.WithLabelValues("memory").Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Rate limit exceeded"})
			return
		}
		metrics.RateLimitAllowed.WithLabelValues("memory").Inc()
		c.Next()
	}
}
