package handlers

import (
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	consultantDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/consultant"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consult-scheduler/internal/timezone"
	ucConsultant "github.com/BruksfildServices01/consult-scheduler/internal/usecase/consultant"
)

// ======================================================
// HANDLER
// ======================================================

type ConsultantHandler struct {
	createUC  *ucConsultant.CreateConsultant
	updateUC  *ucConsultant.UpdateConsultant
	verifyUC  *ucConsultant.VerifyConsultant
	removeUC  *ucConsultant.RemoveConsultant
	listUC    *ucConsultant.ListConsultants
	queriesUC *ucConsultant.ConsultantQueries
}

func NewConsultantHandler(
	createUC *ucConsultant.CreateConsultant,
	updateUC *ucConsultant.UpdateConsultant,
	verifyUC *ucConsultant.VerifyConsultant,
	removeUC *ucConsultant.RemoveConsultant,
	listUC *ucConsultant.ListConsultants,
	queriesUC *ucConsultant.ConsultantQueries,
) *ConsultantHandler {
	return &ConsultantHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		verifyUC:  verifyUC,
		removeUC:  removeUC,
		listUC:    listUC,
		queriesUC: queriesUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateConsultantRequest struct {
	UserID      string   `json:"user_id" binding:"required"`
	Specialties []string `json:"specialties" binding:"required"`
	Bio         string   `json:"bio" binding:"required"`
	Education   string   `json:"education"`
	License     string   `json:"license"`
}

type UpdateConsultantRequest struct {
	Specialties *[]string `json:"specialties"`
	Bio         *string   `json:"bio"`
	Education   *string   `json:"education"`
	License     *string   `json:"license"`
}

type VerifyConsultantRequest struct {
	IsVerified *bool `json:"is_verified" binding:"required"`
}

// ======================================================
// LIST / GET
// ======================================================

func (h *ConsultantHandler) List(c *gin.Context) {
	var filter consultantDomain.Filter

	// is_verified ausente deixa o default de produto com o usecase
	if v := c.Query("is_verified"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err != nil {
			httperr.BadRequest(c, "invalid_filter", "Filtro is_verified inválido.")
			return
		}
		filter.IsVerified = &parsed
	}

	filter.Search = c.Query("search")

	if raw := c.Query("specialties"); raw != "" {
		for _, sp := range strings.Split(raw, ",") {
			if sp = strings.TrimSpace(sp); sp != "" {
				filter.Specialties = append(filter.Specialties, sp)
			}
		}
	}

	found, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		respondBusiness(c, err, "failed_to_list_consultants")
		return
	}

	httpresp.List(c, found)
}

func (h *ConsultantHandler) Get(c *gin.Context) {
	consultant, err := h.queriesUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_get_consultant")
		return
	}

	httpresp.OK(c, consultant)
}

// ======================================================
// CREATE / UPDATE
// ======================================================

func (h *ConsultantHandler) Create(c *gin.Context) {
	var req CreateConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	consultant, err := h.createUC.Execute(c.Request.Context(), ucConsultant.CreateConsultantInput{
		UserID:      req.UserID,
		Specialties: req.Specialties,
		Bio:         req.Bio,
		Education:   req.Education,
		License:     req.License,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_consultant")
		return
	}

	httpresp.Created(c, consultant)
}

func (h *ConsultantHandler) Update(c *gin.Context) {
	var req UpdateConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	consultant, err := h.updateUC.Execute(c.Request.Context(), ucConsultant.UpdateConsultantInput{
		ConsultantID: c.Param("id"),
		Specialties:  req.Specialties,
		Bio:          req.Bio,
		Education:    req.Education,
		License:      req.License,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_update_consultant")
		return
	}

	httpresp.OK(c, consultant)
}

// ======================================================
// VERIFY / DELETE (admin)
// ======================================================

func (h *ConsultantHandler) Verify(c *gin.Context) {
	var req VerifyConsultantRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.IsVerified == nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	consultant, err := h.verifyUC.Execute(c.Request.Context(), c.Param("id"), *req.IsVerified)
	if err != nil {
		respondBusiness(c, err, "failed_to_verify_consultant")
		return
	}

	httpresp.OK(c, consultant)
}

// ListPending lista consultores aguardando verificação.
// GET /admin/consultants/pending
func (h *ConsultantHandler) ListPending(c *gin.Context) {
	found, err := h.queriesUC.ListPending(c.Request.Context())
	if err != nil {
		respondBusiness(c, err, "failed_to_list_consultants")
		return
	}

	httpresp.List(c, found)
}

func (h *ConsultantHandler) Delete(c *gin.Context) {
	if err := h.removeUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondBusiness(c, err, "failed_to_delete_consultant")
		return
	}

	c.Status(204)
}

// parseDay interpreta o query param "date" (YYYY-MM-DD) no fuso da
// plataforma; dia ausente usa hoje.
func parseDay(c *gin.Context) (time.Time, error) {
	dateStr := c.Query("date")
	if dateStr == "" {
		return timezone.Now(), nil
	}
	return timezone.ParseDate(dateStr)
}
