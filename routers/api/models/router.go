package models

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Router registers its routes on a gin router group
type Router interface {
	RegisterRoutes(*gin.RouterGroup)
}

// BaseRouter holds the handlers shared by all routers
type BaseRouter struct{}

type heartbeatResponse struct {
	Status  string `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Heartbeat reports that the server is up
func (r *BaseRouter) Heartbeat(c *gin.Context) {
	message := fmt.Sprintf("request to %s received", c.Request.URL.String())

	c.JSON(http.StatusOK, heartbeatResponse{Status: "OK", Code: http.StatusOK, Message: message})
}
