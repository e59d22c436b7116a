package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/luminghao/godcps/internal/battery"
	"github.com/luminghao/godcps/internal/config"
	"github.com/luminghao/godcps/internal/load"
	"github.com/luminghao/godcps/internal/logger"
	"github.com/luminghao/godcps/internal/rectifier"
	"github.com/luminghao/godcps/internal/report"
)

// Handler handles API requests.
type Handler struct {
	sessions *SessionManager
	log      logger.Logger
}

// NewHandler creates a new API handler.
func NewHandler(sessions *SessionManager, log logger.Logger) *Handler {
	return &Handler{sessions: sessions, log: log}
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// HandleCreateSession starts a new isolated load collection.
func (h *Handler) HandleCreateSession(c echo.Context) error {
	s := h.sessions.Create()
	h.log.Infof("session %s created", s.ID)
	return c.JSON(http.StatusCreated, map[string]string{"session_id": s.ID})
}

func (h *Handler) session(c echo.Context) (*Session, error) {
	s, ok := h.sessions.Get(c.Param("id"))
	if !ok {
		return nil, c.JSON(http.StatusNotFound, map[string]string{"error": "unknown session"})
	}
	return s, nil
}

// HandleAddLoad validates and appends one load row to the session's
// collection. On validation failure the collection is left untouched.
func (h *Handler) HandleAddLoad(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}

	var def config.LoadDef
	if err := c.Bind(&def); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}
	l, err := def.Build()
	if err != nil {
		status := http.StatusBadRequest
		if !errors.Is(err, load.ErrMissingName) && !errors.Is(err, load.ErrInvalidInput) {
			status = http.StatusInternalServerError
		}
		return c.JSON(status, map[string]string{"error": err.Error()})
	}

	s.Lock()
	s.Loads.Add(l)
	n := s.Loads.Len()
	s.Unlock()

	return c.JSON(http.StatusCreated, map[string]any{"load": l, "count": n})
}

// HandleClearLoads empties the session's collection.
func (h *Handler) HandleClearLoads(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}
	s.Lock()
	s.Loads.Clear()
	s.Unlock()
	return c.JSON(http.StatusOK, map[string]string{"status": "cleared"})
}

// HandleReport computes the full sizing report for the session.
func (h *Handler) HandleReport(c echo.Context) error {
	s, err := h.session(c)
	if s == nil {
		return err
	}

	s.Lock()
	r := report.Build(s.Loads)
	s.Unlock()

	if !r.Totals.Monotonic() {
		h.log.Warnf("session %s: stage totals are not monotonic; capacity may be understated", s.ID)
	}
	return c.JSON(http.StatusOK, r)
}

// HandleBatteryCount computes the cell count.
func (h *Handler) HandleBatteryCount(c echo.Context) error {
	var req struct {
		NominalVoltage float64 `json:"nominal_voltage_v"`
		FloatVoltage   float64 `json:"float_voltage_v"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}
	res, err := battery.Count(req.NominalVoltage, req.FloatVoltage)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}

// HandleModuleCount computes the rectifier module count.
func (h *Handler) HandleModuleCount(c echo.Context) error {
	var req struct {
		BatteryCapacityAh float64 `json:"battery_capacity_ah"`
		FrequentCurrentA  float64 `json:"frequent_current_a"`
		ModuleCurrentA    float64 `json:"module_current_a"`
	}
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid JSON body"})
	}
	res, err := rectifier.Modules(req.BatteryCapacityAh, req.FrequentCurrentA, req.ModuleCurrentA)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, res)
}
