package apps

import (
	"github.com/gin-gonic/gin"
)

type ManageInterface interface {
	Get(c *gin.Context)
}
