package handlers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/consult-scheduler/internal/middleware"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

// GetMe devolve o usuário logado com o perfil associado, se houver
func (h *MeHandler) GetMe(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(string)

	var user models.User
	if err := h.db.First(&user, "id = ?", userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuário não encontrado.")
		return
	}

	resp := gin.H{"user": user}

	var consultant models.Consultant
	if err := h.db.Where("user_id = ?", userID).First(&consultant).Error; err == nil {
		resp["consultant"] = consultant
	}

	var client models.Client
	if err := h.db.Where("user_id = ?", userID).First(&client).Error; err == nil {
		resp["client"] = client
	}

	httpresp.OK(c, resp)
}
