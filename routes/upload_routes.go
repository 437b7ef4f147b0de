package routes

import (
	"github.com/gin-gonic/gin"

	"shopperks/internal/handlers"
	"shopperks/pkg/websocket"
)

// SetupUploadRoutes sets up the bill image endpoints
func SetupUploadRoutes(r *gin.RouterGroup, uploadHandler *handlers.UploadHandler, auth gin.HandlerFunc) {
	uploads := r.Group("/uploads")
	uploads.Use(auth)
	{
		uploads.POST("/bills", uploadHandler.UploadBillImage)
		uploads.GET("/bills/:name", uploadHandler.GetBillImageURL)
		uploads.DELETE("/bills/:name", uploadHandler.DeleteBillImage)
	}
}

// SetupWebSocketRoutes exposes the realtime feed used by shop dashboards
// and customer apps
func SetupWebSocketRoutes(r *gin.RouterGroup, wsHandler *websocket.Handler, auth gin.HandlerFunc) {
	r.GET("/ws", auth, wsHandler.HandleWebSocket)
}
