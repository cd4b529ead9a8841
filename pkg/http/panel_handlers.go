package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"
	"pondlink.io/starterbox-settings-service/pkg/common"
	"pondlink.io/starterbox-settings-service/pkg/engine"
)

type OpenPanelRequest struct {
	DeviceID     string `json:"device_id" zog:"device_id"`
	GatewayTitle string `json:"gateway_title" zog:"gateway_title"`
}

var openPanelRequestSchema = z.Struct(z.Shape{
	"deviceID":     z.String().Min(1).Required(),
	"gatewayTitle": z.String(),
})

// PanelView is what the settings panel renders: merged display values with
// "-" for fields neither edited nor stored, plus the validation ranges.
type PanelView struct {
	PanelID  string              `json:"panel_id"`
	DeviceID string              `json:"device_id"`
	Editing  bool                `json:"editing"`
	Fields   map[string]string   `json:"fields"`
	Motors   []map[string]string `json:"motors"`
	Ranges   map[string]float64  `json:"ranges"`
}

func panelView(p *engine.Panel) PanelView {
	eff := p.Effective()

	fields := make(map[string]string, len(eff.Fields))
	for field := range eff.Fields {
		fields[field] = eff.Display(field)
	}

	motors := common.Mapper(eff.Motors[:], func(m map[string]engine.RawInput) map[string]string {
		motor := make(map[string]string, len(m))
		for field, raw := range m {
			motor[field] = raw.Display()
		}
		return motor
	})

	return PanelView{
		PanelID:  p.ID,
		DeviceID: p.DeviceID,
		Editing:  p.Editing(),
		Fields:   fields,
		Motors:   motors,
		Ranges:   p.Ranges(),
	}
}

func (rs *RestfulServer) OpenPanel(c *gin.Context) {
	var req OpenPanelRequest
	if err := openPanelRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if !rs.CheckDeviceLimiter(req.DeviceID) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	panel, err := rs.Panels.Open(req.DeviceID, req.GatewayTitle)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "could not open settings panel"})
		return
	}

	c.JSON(http.StatusOK, panelView(panel))
}

func (rs *RestfulServer) GetPanel(c *gin.Context) {
	panel, ok := rs.Panels.Get(c.Param("panel_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such panel"})
		return
	}

	c.JSON(http.StatusOK, panelView(panel))
}

type PatchFieldRequest struct {
	Field      string `json:"field" zog:"field"`
	Value      string `json:"value" zog:"value"`
	MotorIndex *int   `json:"motor_index" zog:"motor_index"`
}

var patchFieldRequestSchema = z.Struct(z.Shape{
	"field":      z.String().Min(1).Required(),
	"value":      z.String(),
	"motorIndex": z.Ptr(z.Int().GTE(0).LTE(1)),
})

func (rs *RestfulServer) PatchPanelField(c *gin.Context) {
	panel, ok := rs.Panels.Get(c.Param("panel_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such panel"})
		return
	}

	var req PatchFieldRequest
	if err := patchFieldRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	if req.MotorIndex != nil {
		panel.SetMotorField(*req.MotorIndex, req.Field, req.Value)
	} else {
		panel.SetField(req.Field, req.Value)
	}

	c.JSON(http.StatusOK, panelView(panel))
}

func (rs *RestfulServer) SavePanel(c *gin.Context) {
	panel, ok := rs.Panels.Get(c.Param("panel_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such panel"})
		return
	}

	err := panel.Save()

	var validationErr *engine.ValidationError
	switch {
	case err == nil:
		c.JSON(http.StatusOK, panelView(panel))
	case errors.Is(err, engine.ErrNotConnected):
		c.JSON(http.StatusConflict, gin.H{"error": "device connection is not established"})
	case errors.As(err, &validationErr):
		// field list stays in the logs; the panel shows one generic message
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "settings are out of the allowed range"})
	case errors.Is(err, engine.ErrPayload):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "error generating payload"})
	case errors.Is(err, engine.ErrNoGatewayTitle):
		c.JSON(http.StatusConflict, gin.H{"error": "no gateway configured for device"})
	case errors.Is(err, engine.ErrPersist):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "settings sent to device but could not be saved"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "failed to send settings to device"})
	}
}

func (rs *RestfulServer) CancelPanel(c *gin.Context) {
	panel, ok := rs.Panels.Get(c.Param("panel_id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such panel"})
		return
	}

	panel.Cancel()
	c.JSON(http.StatusOK, panelView(panel))
}

func (rs *RestfulServer) ClosePanel(c *gin.Context) {
	rs.Panels.Close(c.Param("panel_id"))
	c.Status(http.StatusOK)
}
