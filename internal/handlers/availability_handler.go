package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	availabilityDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/availability"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/httpresp"
	ucAvailability "github.com/BruksfildServices01/consult-scheduler/internal/usecase/availability"
)

// ======================================================
// HANDLER
// ======================================================

type AvailabilityHandler struct {
	createUC  *ucAvailability.CreateAvailability
	updateUC  *ucAvailability.UpdateAvailability
	removeUC  *ucAvailability.RemoveAvailability
	getUC     *ucAvailability.GetAvailability
	listUC    *ucAvailability.ListAvailabilities
	listDayUC *ucAvailability.ListAvailableForDay
}

func NewAvailabilityHandler(
	createUC *ucAvailability.CreateAvailability,
	updateUC *ucAvailability.UpdateAvailability,
	removeUC *ucAvailability.RemoveAvailability,
	getUC *ucAvailability.GetAvailability,
	listUC *ucAvailability.ListAvailabilities,
	listDayUC *ucAvailability.ListAvailableForDay,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		removeUC:  removeUC,
		getUC:     getUC,
		listUC:    listUC,
		listDayUC: listDayUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAvailabilityRequest struct {
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
	IsAvailable *bool     `json:"is_available"`
}

type UpdateAvailabilityRequest struct {
	StartTime   *time.Time `json:"start_time"`
	EndTime     *time.Time `json:"end_time"`
	IsAvailable *bool      `json:"is_available"`
}

// ======================================================
// ENDPOINTS
// ======================================================

// Create registra uma janela de atendimento para o consultor da rota.
// POST /consultants/:id/availabilities
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req CreateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	slot, err := h.createUC.Execute(c.Request.Context(), ucAvailability.CreateAvailabilityInput{
		ConsultantID: c.Param("id"),
		Range: availabilityDomain.TimeRange{
			Start: req.StartTime,
			End:   req.EndTime,
		},
		IsAvailable: isAvailable,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_availability")
		return
	}

	httpresp.Created(c, slot)
}

// PATCH /availabilities/:id
func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	slot, err := h.updateUC.Execute(c.Request.Context(), ucAvailability.UpdateAvailabilityInput{
		SlotID:      c.Param("id"),
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		IsAvailable: req.IsAvailable,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_update_availability")
		return
	}

	httpresp.OK(c, slot)
}

// DELETE /availabilities/:id
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	if err := h.removeUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondBusiness(c, err, "failed_to_delete_availability")
		return
	}

	c.Status(204)
}

// GET /availabilities/:id
func (h *AvailabilityHandler) Get(c *gin.Context) {
	slot, err := h.getUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_get_availability")
		return
	}

	httpresp.OK(c, slot)
}

// GET /consultants/:id/availabilities
func (h *AvailabilityHandler) ListByConsultant(c *gin.Context) {
	slots, err := h.listUC.Execute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_list_availabilities")
		return
	}

	httpresp.List(c, slots)
}

// ListAvailableForDay lista as janelas ativas do consultor no dia
// informado (?date=YYYY-MM-DD, default hoje).
// GET /consultants/:id/available-slots
func (h *AvailabilityHandler) ListAvailableForDay(c *gin.Context) {
	day, err := parseDay(c)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Data inválida. Use o formato YYYY-MM-DD.")
		return
	}

	slots, err := h.listDayUC.Execute(c.Request.Context(), c.Param("id"), day)
	if err != nil {
		respondBusiness(c, err, "failed_to_list_available_slots")
		return
	}

	httpresp.List(c, slots)
}
