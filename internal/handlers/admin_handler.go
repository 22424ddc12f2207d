package handlers

import (
	"math"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	sessionDomain "github.com/BruksfildServices01/consult-scheduler/internal/domain/session"
	"github.com/BruksfildServices01/consult-scheduler/internal/dto"
	"github.com/BruksfildServices01/consult-scheduler/internal/httperr"
	"github.com/BruksfildServices01/consult-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type AdminHandler struct {
	db *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ======================================================
// DASHBOARD
// ======================================================

// GET /admin/dashboard
func (h *AdminHandler) Dashboard(c *gin.Context) {
	var stats dto.DashboardStatsDTO

	counts := []struct {
		model any
		dest  *int64
		query string
		args  []any
	}{
		{&models.User{}, &stats.TotalUsers, "", nil},
		{&models.Consultant{}, &stats.TotalConsultants, "", nil},
		{&models.Consultant{}, &stats.PendingConsultants, "is_verified = ?", []any{false}},
		{&models.Client{}, &stats.TotalClients, "", nil},
		{&models.Session{}, &stats.TotalSessions, "", nil},
		{&models.Session{}, &stats.PendingSessions, "status = ?", []any{string(sessionDomain.StatusPending)}},
		{&models.Session{}, &stats.ConfirmedSessions, "status = ?", []any{string(sessionDomain.StatusConfirmed)}},
		{&models.Session{}, &stats.CompletedSessions, "status = ?", []any{string(sessionDomain.StatusCompleted)}},
		{&models.Session{}, &stats.CancelledSessions, "status = ?", []any{string(sessionDomain.StatusCancelled)}},
		{&models.Review{}, &stats.TotalReviews, "", nil},
	}

	for _, count := range counts {
		q := h.db.Model(count.model)
		if count.query != "" {
			q = q.Where(count.query, count.args...)
		}
		if err := q.Count(count.dest).Error; err != nil {
			httperr.Internal(c, "dashboard_failed", "Erro ao montar o dashboard.")
			return
		}
	}

	// Média da plataforma só considera consultores já avaliados
	var avg *float64
	if err := h.db.
		Model(&models.Consultant{}).
		Where("review_count > 0").
		Select("AVG(rating)").
		Scan(&avg).Error; err != nil {

		httperr.Internal(c, "dashboard_failed", "Erro ao montar o dashboard.")
		return
	}
	if avg != nil {
		stats.AveragePlatformRate = math.Round(*avg*10) / 10
	}

	c.JSON(200, stats)
}

// ======================================================
// AUDIT LOGS
// ======================================================

// GET /admin/audit-logs
func (h *AdminHandler) ListAuditLogs(c *gin.Context) {
	action := c.Query("action")
	entity := c.Query("entity")
	fromStr := c.Query("from")
	toStr := c.Query("to")

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	offset := (page - 1) * limit

	q := h.db.Model(&models.AuditLog{})

	if action != "" {
		q = q.Where("action = ?", action)
	}

	if entity != "" {
		q = q.Where("entity = ?", entity)
	}

	if fromStr != "" {
		if from, err := time.Parse("2006-01-02", fromStr); err == nil {
			q = q.Where("created_at >= ?", from)
		}
	}

	if toStr != "" {
		if to, err := time.Parse("2006-01-02", toStr); err == nil {
			q = q.Where("created_at <= ?", to.Add(24*time.Hour))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		httperr.Internal(c, "audit_count_failed", "Erro ao contar logs.")
		return
	}

	var logs []models.AuditLog
	if err := q.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&logs).Error; err != nil {

		httperr.Internal(c, "audit_list_failed", "Erro ao listar logs.")
		return
	}

	c.JSON(200, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"logs":  logs,
	})
}
