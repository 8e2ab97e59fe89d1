package controllers

import (
	"app/manager/middlewares"
	"net/http"

	"github.com/gin-gonic/gin"
)

type StatusResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// @Summary Report service and database health
// @Router /status [get]
func StatusHandler(c *gin.Context) {
	db := middlewares.DBFromContext(c)
	sqlDB, err := db.DB()
	if err == nil {
		err = sqlDB.Ping()
	}
	if err != nil {
		LogAndRespStatusError(c, http.StatusServiceUnavailable, err, "database unavailable")
		return
	}

	c.JSON(http.StatusOK, StatusResponse{Status: "ok", Database: "up"})
}
