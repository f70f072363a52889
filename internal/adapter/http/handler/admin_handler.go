package handler

import (
	"time"

	"brit-matcher/internal/adapter/http/dto"
	"brit-matcher/internal/core/ports"
	"brit-matcher/pkg/apperror"
	"brit-matcher/pkg/response"

	"github.com/gin-gonic/gin"
)

// AdminHandler handles operator endpoints.
type AdminHandler struct {
	admin ports.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// ImportAddresses handles POST /api/v1/admin/addresses.
func (h *AdminHandler) ImportAddresses(c *gin.Context) {
	var req dto.ImportAddressesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	result, err := h.admin.ImportAddresses(c.Request.Context(), req.Addresses)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, dto.ImportAddressesResponse{
		Submitted: result.Submitted,
		Added:     result.Added,
	})
}

// PoolStats handles GET /api/v1/admin/pool.
func (h *AdminHandler) PoolStats(c *gin.Context) {
	stats, err := h.admin.PoolStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.PoolStatsResponse{
		PoolSize:        stats.PoolSize,
		AddressesPerDay: stats.AddressesPerDay,
		Network:         stats.Network,
	})
}

// GetAssignment handles GET /api/v1/admin/assignments/:date.
func (h *AdminHandler) GetAssignment(c *gin.Context) {
	var p dto.DateParam
	if err := c.ShouldBindUri(&p); err != nil {
		response.Error(c, apperror.Validation("date must be YYYY-MM-DD"))
		return
	}

	assignment, err := h.admin.GetAssignment(c.Request.Context(), p.Date)
	if err != nil {
		response.Error(c, err)
		return
	}

	addresses := make([]string, len(assignment.Addresses))
	for i, a := range assignment.Addresses {
		addresses[i] = string(a)
	}
	response.OK(c, dto.AssignmentResponse{
		Date:      assignment.Date,
		Addresses: addresses,
	})
}

// GetEncounter handles GET /api/v1/admin/encounters/:wallet_id.
func (h *AdminHandler) GetEncounter(c *gin.Context) {
	var p dto.WalletIDParam
	if err := c.ShouldBindUri(&p); err != nil {
		response.Error(c, apperror.Validation("wallet_id must be 40 hex characters"))
		return
	}

	link, err := h.admin.GetEncounter(c.Request.Context(), p.WalletID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, dto.EncounterResponse{
		WalletID:             link.WalletID.String(),
		EncounterDate:        formatTime(link.EncounterDate),
		FirstTransactionDate: formatTime(link.FirstTransactionDate),
	})
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format(time.RFC3339Nano)
	return &s
}
