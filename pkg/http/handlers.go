package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"gorm.io/gorm"
	"pondlink.io/starterbox-settings-service/pkg/models"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
)

var deviceSettingsSchema = z.Struct(z.Shape{
	"CapableMotors":     z.Int().GTE(1).LTE(2).Required(),
	"SeedTime":          z.Float64().GTE(0),
	"StartTimingOffset": z.Float64().GTE(0),
})

func (rs *RestfulServer) GetSettings(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	settings, err := rs.Store.Settings.GetDeviceSettings(deviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no settings for device"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

func (rs *RestfulServer) SaveSettings(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var settings models.DeviceSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := deviceSettingsSchema.Validate(&settings); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if err := rs.Store.Settings.SaveDeviceSettings(deviceID, &settings); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) GetSettingLogs(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	pageIndex, _ := strconv.Atoi(c.DefaultQuery("page_index", "0"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))

	records, pagination, err := rs.Store.History.GetSettingLogs(deviceID, pageIndex, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	if records == nil {
		records = []models.SettingsHistoryRecord{}
	}

	c.JSON(http.StatusOK, gin.H{"data": records, "pagination": pagination})
}

func (rs *RestfulServer) GetLimits(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	limits, err := rs.Store.Limits.GetMinMaxRange(deviceID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no limits for device"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.JSON(http.StatusOK, limits)
}

func (rs *RestfulServer) UpdateLimits(c *gin.Context) {
	deviceID := c.Param("device_id")

	if !rs.CheckDeviceLimiter(deviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	var limits models.DeviceSettingsLimits
	if err := c.ShouldBindJSON(&limits); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// every range key must name a bound; values must be numeric
	for key, value := range limits.Ranges {
		if !strings.HasSuffix(key, "_min") && !strings.HasSuffix(key, "_max") {
			c.JSON(http.StatusBadRequest, gin.H{"error": "range key must end in _min or _max: " + key})
			return
		}
		if _, ok := value.(float64); !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "range value must be numeric: " + key})
			return
		}
	}

	if err := rs.Store.Limits.UpdateMinMaxRange(deviceID, &limits); err != nil {
		c.JSON(http.StatusInternalServerError, err)
		return
	}

	c.Status(http.StatusOK)
}

type LimiterRequest struct {
	Rate  float64 `json:"rate" zog:"rate"`
	Burst int     `json:"burst" zog:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"rate":  z.Float64().Required(),
	"burst": z.Int().Required(),
})

func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	deviceID := c.Param("device_id")

	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(deviceID, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
