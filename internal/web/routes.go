package web

import (
	"github.com/gin-gonic/gin"
)

func (app *application) routes() *gin.Engine {
	api := app.Mux.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/version", app.version)
			v1.POST("/parse", app.parse)
			v1.POST("/parse/isoform", app.parseIsoform)
			v1.POST("/extract", app.extract)
			v1.GET("/stats", app.stats)
			v1.GET("/headers/:accession", app.headers)
		}
	}

	return app.Mux
}
