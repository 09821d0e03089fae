package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/errata-labs/errata-go/pkg"
)

// RateLimit rejects requests with 429 once the shared limiter runs dry.
func RateLimit(limiter *pkg.DistributedLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !limiter.Allow(c.Request.Context()) {
			c.AbortWithStatusJSON(pkg.ErrRateLimitedCode.Status, pkg.ErrorResponse{
				Code:    pkg.ErrRateLimitedCode.Code,
				Message: pkg.ErrRateLimitedCode.Message,
			})
			return
		}
		c.Next()
	}
}
