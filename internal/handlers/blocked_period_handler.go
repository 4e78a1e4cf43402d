package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/StudioNavalha/agenda-api/internal/cache"
	"github.com/StudioNavalha/agenda-api/internal/httperr"
	"github.com/StudioNavalha/agenda-api/internal/httpresp"
	"github.com/StudioNavalha/agenda-api/internal/middleware"
	"github.com/StudioNavalha/agenda-api/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type BlockedPeriodHandler struct {
	db    *gorm.DB
	cache *cache.AvailabilityCache
}

func NewBlockedPeriodHandler(db *gorm.DB, cache *cache.AvailabilityCache) *BlockedPeriodHandler {
	return &BlockedPeriodHandler{db: db, cache: cache}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBlockedPeriodRequest struct {
	Date      string `json:"date" binding:"required"`       // YYYY-MM-DD
	StartTime string `json:"start_time" binding:"required"` // HH:mm
	EndTime   string `json:"end_time" binding:"required"`   // HH:mm
	Reason    string `json:"reason"`
}

// ======================================================
// LIST
// ======================================================

func (h *BlockedPeriodHandler) List(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	q := h.db.Where("barber_id = ?", barberID)

	if dateStr := c.Query("date"); dateStr != "" {
		var shop models.Barbershop
		barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)
		if err := h.db.First(&shop, barbershopID).Error; err != nil {
			httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
			return
		}

		date, err := parseDateInShop(&shop, dateStr)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Data inválida.")
			return
		}

		dayEnd := date.Add(24 * time.Hour)
		q = q.Where("start_time < ? AND end_time > ?", dayEnd, date)
	}

	var blocks []models.BlockedPeriod
	if err := q.Order("start_time ASC").Find(&blocks).Error; err != nil {
		httperr.Internal(c, "failed_to_list_blocked_periods", "Erro ao listar bloqueios.")
		return
	}

	httpresp.List(c, blocks)
}

// ======================================================
// CREATE
// ======================================================

func (h *BlockedPeriodHandler) Create(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var req CreateBlockedPeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	start, err := parseDateTimeInShop(&shop, req.Date, req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	end, err := parseDateTimeInShop(&shop, req.Date, req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Data ou hora inválida.")
		return
	}

	if !end.After(start) {
		httperr.BadRequest(c, "invalid_period", "O fim do bloqueio deve ser depois do início.")
		return
	}

	block := models.BlockedPeriod{
		BarbershopID: barbershopID,
		BarberID:     barberID,
		StartTime:    start,
		EndTime:      end,
		Reason:       req.Reason,
	}

	if err := h.db.Create(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_create_blocked_period", "Erro ao criar bloqueio.")
		return
	}

	h.cache.InvalidateBarberDay(c.Request.Context(), barberID, req.Date)

	c.JSON(http.StatusCreated, block)
}

// ======================================================
// DELETE
// ======================================================

func (h *BlockedPeriodHandler) Delete(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)
	barbershopID := c.MustGet(middleware.ContextBarbershopID).(uint)

	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return
	}

	var shop models.Barbershop
	if err := h.db.First(&shop, barbershopID).Error; err != nil {
		httperr.Internal(c, "barbershop_not_found", "Barbearia não encontrada.")
		return
	}

	var block models.BlockedPeriod
	if err := h.db.
		Where("id = ? AND barber_id = ?", id, barberID).
		First(&block).Error; err != nil {

		httperr.NotFound(c, "blocked_period_not_found", "Bloqueio não encontrado.")
		return
	}

	if err := h.db.Delete(&block).Error; err != nil {
		httperr.Internal(c, "failed_to_delete_blocked_period", "Erro ao remover bloqueio.")
		return
	}

	loc := locationFromShop(&shop)
	h.cache.InvalidateBarberDay(
		c.Request.Context(),
		barberID,
		block.StartTime.In(loc).Format("2006-01-02"),
	)

	c.Status(http.StatusNoContent)
}
