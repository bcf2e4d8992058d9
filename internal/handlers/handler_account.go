package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ledgerline/ledgerline/internal/apperrors"
	portssvc "github.com/ledgerline/ledgerline/internal/core/ports/services"
	"github.com/ledgerline/ledgerline/internal/dto"
	"github.com/ledgerline/ledgerline/internal/middleware"
)

// AccountHandler serves account endpoints.
type AccountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func NewAccountHandler(accountService portssvc.AccountSvcFacade) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// CreateAccount handles POST /api/v1/accounts.
func (h *AccountHandler) CreateAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		logger.Error("failed to create account", "error", err)
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAccountResponse(*created))
}

// GetAccount handles GET /api/v1/accounts/:id.
func (h *AccountHandler) GetAccount(c *gin.Context) {
	accountID := c.Param("id")

	account, err := h.accountService.GetAccountByID(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAccountResponse(*account))
}

// ListAccounts handles GET /api/v1/accounts.
func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := dto.ListAccountsResponse{Accounts: make([]dto.AccountResponse, 0, len(accounts))}
	for _, account := range accounts {
		resp.Accounts = append(resp.Accounts, dto.ToAccountResponse(account))
	}

	c.JSON(http.StatusOK, resp)
}

// ListRecords handles GET /api/v1/accounts/:id/records.
func (h *AccountHandler) ListRecords(c *gin.Context) {
	accountID := c.Param("id")
	limit := parseLimitQuery(c)

	records, err := h.accountService.ListRecords(c.Request.Context(), accountID, limit)
	if err != nil {
		respondWithError(c, err)
		return
	}

	resp := dto.ListRecordsResponse{Records: make([]dto.RecordResponse, 0, len(records))}
	for _, record := range records {
		resp.Records = append(resp.Records, dto.ToRecordResponse(record))
	}

	c.JSON(http.StatusOK, resp)
}

// ListAssets handles GET /api/v1/accounts/:id/assets.
func (h *AccountHandler) ListAssets(c *gin.Context) {
	accountID := c.Param("id")

	assets, err := h.accountService.ListAssets(c.Request.Context(), accountID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"assets": assets})
}

// GetAsset handles GET /api/v1/accounts/:id/assets/:assetID.
func (h *AccountHandler) GetAsset(c *gin.Context) {
	accountID := c.Param("id")
	assetID := c.Param("assetID")

	asset, err := h.accountService.GetAsset(c.Request.Context(), accountID, assetID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

func parseLimitQuery(c *gin.Context) int {
	raw := c.Query("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

func respondWithError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrUnsupportedChangeType):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotImplemented):
		c.JSON(http.StatusNotImplemented, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
