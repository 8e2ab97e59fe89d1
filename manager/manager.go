package manager

import (
	"app/base"
	"app/base/core"
	"app/base/metrics"
	"app/base/utils"
	"app/manager/middlewares"
	"app/manager/routes"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

var (
	maxRequestBodySize = int64(utils.GetIntEnvOrDefault("MAX_REQUEST_BODY_SIZE", 1048576))
	maxHeaderCount     = utils.GetIntEnvOrDefault("MAX_HEADER_COUNT", 50)
	ratelimitRate      = utils.GetIntEnvOrDefault("RATELIMIT_RATE", 100)
)

// RunManager sets up and runs the public API server.
func RunManager() {
	core.ConfigureApp()
	metrics.Configure()

	port := utils.GetIntEnvOrDefault("PUBLIC_PORT", 8080)
	utils.LogInfo("port", port, "Manager starting")

	if !utils.GetBoolEnvOrDefault("GIN_DEBUG", false) {
		gin.SetMode(gin.ReleaseMode)
	}
	app := gin.New()

	app.Use(middlewares.RequestResponseLogger())
	middlewares.Prometheus().Use(app)
	app.Use(gzip.Gzip(gzip.DefaultCompression))
	app.Use(middlewares.LimitRequestBodySize(maxRequestBodySize))
	app.Use(middlewares.LimitRequestHeaders(maxHeaderCount))
	app.Use(middlewares.Ratelimit(ratelimitRate))
	app.Use(middlewares.DatabaseWithContext())

	core.InitProbes(app)
	api := app.Group(base.CRMAPIPrefix)
	routes.InitAPI(api)

	err := utils.RunServer(base.Context, app, port)
	if err != nil {
		utils.LogFatal("err", err.Error(), "server listening failed")
	}
}
