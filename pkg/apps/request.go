package apps

import (
	"github.com/gin-gonic/gin"
)

type RequestInterface interface {
	GetForm(c *gin.Context)
	Submit(c *gin.Context)
}
