package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/httpresp"
	ucClient "github.com/BruksfildServices01/consult-scheduler/internal/usecase/client"
)

type ClientHandler struct {
	createUC  *ucClient.CreateClient
	queriesUC *ucClient.ClientQueries
}

func NewClientHandler(
	createUC *ucClient.CreateClient,
	queriesUC *ucClient.ClientQueries,
) *ClientHandler {
	return &ClientHandler{
		createUC:  createUC,
		queriesUC: queriesUC,
	}
}

type CreateClientRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// POST /clients
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	client, err := h.createUC.Execute(c.Request.Context(), req.UserID)
	if err != nil {
		respondBusiness(c, err, "failed_to_create_client")
		return
	}

	httpresp.Created(c, client)
}

// GET /clients/:id
func (h *ClientHandler) Get(c *gin.Context) {
	client, err := h.queriesUC.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBusiness(c, err, "failed_to_get_client")
		return
	}

	httpresp.OK(c, client)
}

// GET /clients (admin)
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.queriesUC.ListAll(c.Request.Context())
	if err != nil {
		respondBusiness(c, err, "failed_to_list_clients")
		return
	}

	httpresp.List(c, clients)
}
