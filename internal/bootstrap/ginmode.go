package bootstrap

import "github.com/gin-gonic/gin"

// SetGinMode silences gin's debug output when the edge runs in production.
func SetGinMode(env string) {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
}
