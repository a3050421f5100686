package apps

import (
	"github.com/gin-gonic/gin"
)

type LaunchInterface interface {
	Launch(c *gin.Context)
}
