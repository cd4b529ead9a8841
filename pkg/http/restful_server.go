package http

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"pondlink.io/starterbox-settings-service/pkg/engine"
	"pondlink.io/starterbox-settings-service/pkg/store"
)

type RestfulServer struct {
	Server           *gin.Engine
	Store            *store.Store
	Panels           *engine.Manager
	RateLimiterStore *store.RateLimiterStore
}

func (rs *RestfulServer) GetLimiter(deviceID string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(deviceID)
	}
}

func (rs *RestfulServer) CheckDeviceLimiter(deviceID string) bool {
	limiter := rs.GetLimiter(deviceID)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(deviceID string, deviceRate float64, deviceBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(deviceID, rate.Limit(deviceRate), deviceBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	devices := rs.Server.Group("/devices/:device_id")
	{
		devices.GET("/settings", rs.GetSettings)
		devices.POST("/settings", rs.SaveSettings)
		devices.GET("/settings/logs", rs.GetSettingLogs)
		devices.GET("/limits", rs.GetLimits)
		devices.POST("/limits", rs.UpdateLimits)
		devices.POST("/limiter", rs.PostLimiter)
	}

	panels := rs.Server.Group("/panels")
	{
		panels.POST("", rs.OpenPanel)
		panels.GET("/:panel_id", rs.GetPanel)
		panels.PATCH("/:panel_id/fields", rs.PatchPanelField)
		panels.POST("/:panel_id/save", rs.SavePanel)
		panels.POST("/:panel_id/cancel", rs.CancelPanel)
		panels.DELETE("/:panel_id", rs.ClosePanel)
	}
}
