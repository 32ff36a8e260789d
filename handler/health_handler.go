package handler

import (
	"time"

	"main/utils"

	"github.com/gin-gonic/gin"
)

var startTime = time.Now()

// HealthHandler reports process liveness plus basic host readings.
func HealthHandler(c *gin.Context) {
	utils.Success(c, gin.H{
		"status":        "ok",
		"uptimeSeconds": int64(time.Since(startTime).Seconds()),
		"cpuPercent":    utils.GetCPUUsage(),
		"memoryPercent": utils.GetMemoryUsage(),
	})
}
