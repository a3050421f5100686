package apps

import (
	"github.com/gin-gonic/gin"
)

type HubDataInterface interface {
	Get(c *gin.Context)
}
