package apps

import (
	"github.com/gin-gonic/gin"
)

type HealthInterface interface {
	CheckDatabase(c *gin.Context)
	CheckRedis(c *gin.Context)
}
