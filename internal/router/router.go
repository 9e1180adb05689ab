package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	GetBooking(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	ChangeBooking(c *ginext.Context)
}

func InitRouter(mode string, h Handler, auth ginext.HandlerFunc, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	booking := router.Group("/booking", auth)
	{
		booking.GET("", h.GetBooking)
		booking.POST("", h.CreateBooking)
		booking.PUT("/:bookingId", h.ChangeBooking)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
