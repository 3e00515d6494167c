package handler

import (
	"errors"
	"net/http"
	"strconv"

	"patient_registry/internal/model"
	"patient_registry/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// PatientHandler handles patient related requests
type PatientHandler struct {
	service service.PatientService
	logger  zerolog.Logger
}

// NewPatientHandler creates a new PatientHandler
func NewPatientHandler(s service.PatientService, logger zerolog.Logger) *PatientHandler {
	return &PatientHandler{service: s, logger: logger}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	var req model.CreatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patient, err := h.service.CreatePatient(c.Request.Context(), req)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to create patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create patient"})
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) GetPatients(c *gin.Context) {
	page, err := positiveQueryParam(c, "page", 1)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'page', must be an integer >= 1"})
		return
	}
	limit, err := positiveQueryParam(c, "limit", 10)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'limit', must be an integer >= 1"})
		return
	}

	result, err := h.service.GetPatients(c.Request.Context(), page, limit)
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to list patients")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patients"})
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	patient, err := h.service.GetPatientByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to get patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve patient"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	var req model.UpdatePatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	patient, err := h.service.UpdatePatient(c.Request.Context(), id, req)
	if err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to update patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update patient"})
		return
	}
	c.JSON(http.StatusOK, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid patient ID"})
		return
	}

	if err := h.service.DeletePatient(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPatientNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.logger.Error().Err(err).Msg("failed to delete patient")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete patient"})
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterPatientRoutes registers patient routes with their guards:
// authentication first, then the per-route role check.
func (h *PatientHandler) RegisterPatientRoutes(rg *gin.RouterGroup, authMW, adminMW, staffMW gin.HandlerFunc) {
	patients := rg.Group("/patients")
	patients.Use(authMW)
	{
		patients.POST("", adminMW, h.CreatePatient)
		patients.GET("", staffMW, h.GetPatients)
		patients.GET("/:id", adminMW, h.GetPatientByID)
		patients.PATCH("/:id", adminMW, h.UpdatePatient)
		patients.DELETE("/:id", adminMW, h.DeletePatient)
	}
}

// positiveQueryParam parses an optional positive integer query parameter
func positiveQueryParam(c *gin.Context, name string, def int) (int, error) {
	raw := c.Query(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return 0, errors.New("invalid " + name)
	}
	return v, nil
}
