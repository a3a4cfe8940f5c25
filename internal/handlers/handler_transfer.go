package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bankapp-se/bankapp_backend/internal/apperrors"
	portssvc "github.com/bankapp-se/bankapp_backend/internal/core/ports/services"
	"github.com/bankapp-se/bankapp_backend/internal/dto"
	"github.com/bankapp-se/bankapp_backend/internal/middleware"
)

// transferHandler handles HTTP requests that move money between accounts.
type transferHandler struct {
	accountService portssvc.AccountSvcFacade
}

// registerTransferRoutes registers the transfer route.
func registerTransferRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := &transferHandler{accountService: accountService}
	rg.POST("/transfers", h.transfer)
}

// transfer godoc
// @Summary Transfer money between accounts
// @Description Moves money from one of the caller's accounts to another account, addressed either by account ID or by public account number
// @Tags transfers
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Transfer details"
// @Success 204 "Transfer completed"
// @Failure 400 {object} ErrorResponse "Validation error"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 422 {object} ErrorResponse "Insufficient funds"
// @Security BearerAuth
// @Router /transfers [post]
func (h *transferHandler) transfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	if (req.ToAccountID == nil) == (req.RecipientAccountNumber == nil) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Exactly one of toAccountID or recipientAccountNumber must be set"})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// The source account must belong to the caller.
	source, err := h.accountService.GetAccountByID(c.Request.Context(), req.FromAccountID)
	if err != nil || source.OwnerID != userID {
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to load source account", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to transfer"})
			return
		}
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Source account not found"})
		return
	}

	toAccountID, ok := h.resolveDestination(c, &req)
	if !ok {
		return
	}

	err = h.accountService.Transfer(c.Request.Context(), req.FromAccountID, toAccountID, req.Amount, req.Description)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrInsufficientFunds) {
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient funds in source account"})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		} else {
			logger.Error("Failed to transfer", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to transfer"})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// resolveDestination turns the request's destination (own account ID or a
// recipient's public account number) into an account ID.
func (h *transferHandler) resolveDestination(c *gin.Context, req *dto.TransferRequest) (string, bool) {
	if req.ToAccountID != nil {
		return *req.ToAccountID, true
	}

	accountID, err := h.accountService.GetAccountIDByAccountNumber(c.Request.Context(), *req.RecipientAccountNumber)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		} else if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Recipient account not found"})
		} else {
			middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to resolve recipient", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to transfer"})
		}
		return "", false
	}
	return accountID, true
}
