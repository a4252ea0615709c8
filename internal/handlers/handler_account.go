package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/kjm/ledger-lite/internal/core/ports/services"
	"github.com/kjm/ledger-lite/internal/dto"
	"github.com/kjm/ledger-lite/internal/middleware"
)

// accountHandler handles HTTP requests related to accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

// newAccountHandler creates a new accountHandler.
func newAccountHandler(accountService portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// registerAccountRoutes registers account master-data routes.
func registerAccountRoutes(api *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := api.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.GET("", h.listAccounts)
	}
}

// createAccount godoc
// @Summary Register a new account
// @Description Creates an account with a globally unique code
// @Tags accounts
// @Accept json
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201
// @Failure 400 {object} dto.APIErrorResponse "Invalid or unparseable request body"
// @Failure 409 {object} dto.APIErrorResponse "Account code already exists"
// @Router /accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createAccount", slog.String("error", err.Error()))
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), req)
	if err != nil {
		logger.Warn("Failed to create account", slog.String("error", err.Error()), slog.String("code", req.Code))
		respondServiceError(c, err)
		return
	}

	logger.Info("Account created", slog.Int64("account_id", account.AccountID))
	c.Status(http.StatusCreated)
}

// listAccounts godoc
// @Summary List all accounts
// @Tags accounts
// @Produce json
// @Success 200 {array} dto.AccountResponse
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	accounts, err := h.accountService.ListAccounts(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list accounts", slog.String("error", err.Error()))
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListAccountResponse(accounts))
}
