package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	sessionDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/httpresp"
	ucSession "github.com/BruksfildServices01/consult-scheduler/internal/usecase/session"
)

// ======================================================
// HANDLER
// ======================================================

type SessionHandler struct {
	createUC  *ucSession.CreateSession
	updateUC  *ucSession.UpdateSession
	statusUC  *ucSession.UpdateSessionStatus
	removeUC  *ucSession.RemoveSession
	queriesUC *ucSession.SessionQueries
}

func NewSessionHandler(
	createUC *ucSession.CreateSession,
	updateUC *ucSession.UpdateSession,
	statusUC *ucSession.UpdateSessionStatus,
	removeUC *ucSession.RemoveSession,
	queriesUC *ucSession.SessionQueries,
) *SessionHandler {
	return &SessionHandler{
		createUC:  createUC,
		updateUC:  updateUC,
		statusUC:  statusUC,
		removeUC:  removeUC,
		queriesUC: queriesUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateSessionRequest struct {
	ConsultantID  string    `json:"consultant_id" binding:"required"`
	ClientID      string    `json:"client_id" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	Notes         string    `json:"notes"`
	MessengerID   string    `json:"messenger_id"`
	MessengerType string    `json:"messenger_type"`
}

type UpdateSessionRequest struct {
	Date          *time.Time `json:"date"`
	Status        *string    `json:"status"`
	Notes         *string    `json:"notes"`
	MessengerID   *string    `json:"messenger_id"`
	MessengerType *string    `json:"messenger_type"`
}

type UpdateSessionStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// ENDPOINTS
// ======================================================

// POST /sessions
func (h *SessionHandler) Create(c *gin.Context) {
	var req CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	session, err := h.createUC.Execute(c.Request.Context(), ucSession.CreateSessionInput{
		ConsultantID:  req.ConsultantID,
		ClientID:      req.ClientID,
		Date:          req.Date,
		Notes:         req.Notes,
		MessengerID:   req.MessengerID,
		MessengerType: req.MessengerType,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_session")
		return
	}

	httpresp.Created(c, session)
}

// PATCH /sessions/:id
func (h *SessionHandler) Update(c *gin.Context) {
	var req UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	in := ucSession.UpdateSessionInput{
		SessionID:     c.Param("id"),
		Date:          req.Date,
		Notes:         req.Notes,
		MessengerID:   req.MessengerID,
		MessengerType: req.MessengerType,
	}
	if req.Status != nil {
		status := sessionDomain.Status(*req.Status)
		in.Status = &status
	}

	session, err := h.updateUC.Execute(c.Request.Context(), in)
	if err != nil {
		respondBusiness(c, err, "failed_to_update_session")
		return
	}

	httpresp.OK(c, session)
}

// PATCH /sessions/:id/status
func (h *SessionHandler) UpdateStatus(c *gin.Context) {
	var req UpdateSessionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	session, err := h.statusUC.Execute(
		c.Request.Context(),
		c.Param("id"),
		sessionDomain.Status(req.Status),
	)
	if err != nil {
		respondBusiness(c, err, "failed_to_update_session_status")
		return
	}

	httpresp.OK(c, session)
}

// DELETE /sessions/:id
func (h *SessionHandler) Delete(c *gin.Context) {
	if err := h.removeUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondBusiness(c, err, "failed_to_delete_session")
		return
	}

	c.Status(204)
}

// GET /sessions/:id
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.queriesUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_get_session")
		return
	}

	httpresp.OK(c, session)
}

// GET /sessions
func (h *SessionHandler) List(c *gin.Context) {
	sessions, err := h.queriesUC.ListAll(c.Request.Context())
	if err != nil {
		respondBusiness(c, err, "failed_to_list_sessions")
		return
	}

	httpresp.List(c, sessions)
}

// GET /consultants/:id/sessions
func (h *SessionHandler) ListByConsultant(c *gin.Context) {
	sessions, err := h.queriesUC.ListByConsultant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_list_sessions")
		return
	}

	httpresp.List(c, sessions)
}

// GET /clients/:id/sessions
func (h *SessionHandler) ListByClient(c *gin.Context) {
	sessions, err := h.queriesUC.ListByClient(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_list_sessions")
		return
	}

	httpresp.List(c, sessions)
}
