package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/httpresp"
	ucReview "github.com/BruksfildServices01/consult-scheduler/internal/usecase/review"
)

// ======================================================
// HANDLER
// ======================================================

type ReviewHandler struct {
	createUC  *ucReview.CreateReview
	removeUC  *ucReview.RemoveReview
	queriesUC *ucReview.ReviewQueries
}

func NewReviewHandler(
	createUC *ucReview.CreateReview,
	removeUC *ucReview.RemoveReview,
	queriesUC *ucReview.ReviewQueries,
) *ReviewHandler {
	return &ReviewHandler{
		createUC:  createUC,
		removeUC:  removeUC,
		queriesUC: queriesUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateReviewRequest struct {
	ConsultantID string `json:"consultant_id" binding:"required"`
	ClientID     string `json:"client_id" binding:"required"`
	SessionID    string `json:"session_id" binding:"required"`
	Rating       int    `json:"rating" binding:"required"`
	Comment      string `json:"comment"`
}

// ======================================================
// ENDPOINTS
// ======================================================

// POST /reviews
func (h *ReviewHandler) Create(c *gin.Context) {
	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	review, err := h.createUC.Execute(c.Request.Context(), ucReview.CreateReviewInput{
		ConsultantID: req.ConsultantID,
		ClientID:     req.ClientID,
		SessionID:    req.SessionID,
		Rating:       req.Rating,
		Comment:      req.Comment,
	})
	if err != nil {
		respondBusiness(c, err, "failed_to_create_review")
		return
	}

	httpresp.Created(c, review)
}

// DELETE /reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	if err := h.removeUC.Execute(c.Request.Context(), c.Param("id")); err != nil {
		respondBusiness(c, err, "failed_to_delete_review")
		return
	}

	c.Status(204)
}

// GET /reviews/:id
func (h *ReviewHandler) Get(c *gin.Context) {
	review, err := h.queriesUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_get_review")
		return
	}

	httpresp.OK(c, review)
}

// GET /reviews
func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.queriesUC.ListAll(c.Request.Context())
	if err != nil {
		respondBusiness(c, err, "failed_to_list_reviews")
		return
	}

	httpresp.List(c, reviews)
}

// GET /consultants/:id/reviews
func (h *ReviewHandler) ListByConsultant(c *gin.Context) {
	reviews, err := h.queriesUC.ListByConsultant(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_list_reviews")
		return
	}

	httpresp.List(c, reviews)
}
