package router

import "github.com/gin-gonic/gin"

// Module is a feature that registers its routes on the shared /api group.
type Module interface {
	Register(rg *gin.RouterGroup)
}
