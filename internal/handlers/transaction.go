package handlers

import (
	"errors"

	"minimart/internal/models"
	"minimart/internal/services/auth"
	"minimart/internal/services/creditcard"
	"minimart/internal/services/ledger"
	"minimart/internal/services/user"
	"minimart/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	ledgerService ledger.Service
	userService   user.Service
	tokenizer     creditcard.Tokenizer
}

func NewTransactionHandler(ledgerService ledger.Service, userService user.Service, tokenizer creditcard.Tokenizer) *TransactionHandler {
	return &TransactionHandler{
		ledgerService: ledgerService,
		userService:   userService,
		tokenizer:     tokenizer,
	}
}

// Create posts a deposit or withdrawal against a user's wallet. A
// deposit may carry card details, which are tokenized and kept as the
// entry's reference. The caller must own the wallet or be an admin.
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	var input models.CreateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}
	if !models.ValidTransactionType(input.Type) {
		return utils.BadRequest(c, "unknown transaction type")
	}

	target, err := h.userService.GetByID(c.Context(), input.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}
	if !auth.CanModify(claims, target.Email) {
		return utils.Unauthorized(c, "not allowed to transact for this user")
	}

	reference := ""
	if input.Card != nil {
		if input.Type != models.TransactionTypeDeposit {
			return utils.BadRequest(c, "card details are only valid on deposits")
		}
		tokenized, err := h.tokenizer.TokenizeCard(*input.Card)
		if err != nil {
			return utils.BadRequest(c, err.Error())
		}
		reference = tokenized.Token
	}

	var entry *models.Transaction
	switch input.Type {
	case models.TransactionTypeDeposit:
		entry, err = h.ledgerService.Deposit(c.Context(), input.UserID, input.Amount, reference)
	case models.TransactionTypeWithdraw:
		entry, err = h.ledgerService.Withdraw(c.Context(), input.UserID, input.Amount)
	}
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return utils.Created(c, entry)
}

const maxTransactionLimit = 100

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	entries, err := h.ledgerService.List(c.Context())
	if err != nil {
		return utils.InternalError(c, "failed to list transactions")
	}

	pagination := utils.GetPagination(c, 1, maxTransactionLimit)
	pagination.SetTotal(int64(len(entries)))

	start := pagination.Offset
	if start > len(entries) {
		start = len(entries)
	}
	end := start + pagination.Limit
	if end > len(entries) {
		end = len(entries)
	}

	return utils.Success(c, utils.NewPaginatedResponse(entries[start:end], pagination))
}

func (h *TransactionHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	entry, err := h.ledgerService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			return utils.NotFound(c, "transaction not found")
		}
		return utils.InternalError(c, "failed to get transaction")
	}
	return utils.Success(c, entry)
}

func (h *TransactionHandler) ListByUser(c *fiber.Ctx) error {
	userID, err := parseID(c, "user_id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}

	entries, err := h.ledgerService.ListByUser(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ledger.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to list transactions")
	}
	return utils.Success(c, entries)
}

// UpdateByID corrects an existing ledger entry. The caller must own
// the wallet or be an admin.
func (h *TransactionHandler) UpdateByID(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	existing, err := h.ledgerService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			return utils.NotFound(c, "transaction not found")
		}
		return utils.InternalError(c, "failed to get transaction")
	}
	if err := h.authorizeWalletAccess(c, claims, existing.UserID); err != nil {
		return err
	}

	var input models.UpdateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.ledgerService.UpdateByID(c.Context(), id, input)
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return utils.Success(c, updated)
}

// UpdateByUser corrects the oldest ledger entry of a user.
func (h *TransactionHandler) UpdateByUser(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	userID, err := parseID(c, "user_id")
	if err != nil {
		return utils.BadRequest(c, "invalid user id")
	}
	if err := h.authorizeWalletAccess(c, claims, userID); err != nil {
		return err
	}

	var input models.UpdateTransactionInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request body")
	}

	updated, err := h.ledgerService.UpdateByUser(c.Context(), userID, input)
	if err != nil {
		return h.mapLedgerError(c, err)
	}
	return utils.Success(c, updated)
}

// Delete removes a ledger entry without touching the balance. The
// caller must own the wallet or be an admin.
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "invalid claims")
	}

	id, err := parseID(c, "id")
	if err != nil {
		return utils.BadRequest(c, "invalid transaction id")
	}

	existing, err := h.ledgerService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, ledger.ErrTransactionNotFound) {
			return utils.NotFound(c, "transaction not found")
		}
		return utils.InternalError(c, "failed to get transaction")
	}
	if err := h.authorizeWalletAccess(c, claims, existing.UserID); err != nil {
		return err
	}

	if err := h.ledgerService.Delete(c.Context(), id); err != nil {
		return h.mapLedgerError(c, err)
	}
	return utils.Success(c, fiber.Map{"message": "transaction deleted"})
}

// authorizeWalletAccess checks the claims against the owner of the
// given wallet; a non-nil return is a ready HTTP response.
func (h *TransactionHandler) authorizeWalletAccess(c *fiber.Ctx, claims *models.UserClaims, userID uint) error {
	target, err := h.userService.GetByID(c.Context(), userID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return utils.NotFound(c, "user not found")
		}
		return utils.InternalError(c, "failed to get user")
	}
	if !auth.CanModify(claims, target.Email) {
		return utils.Unauthorized(c, "not allowed to transact for this user")
	}
	return nil
}

func (h *TransactionHandler) mapLedgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrUserNotFound):
		return utils.NotFound(c, "user not found")
	case errors.Is(err, ledger.ErrTransactionNotFound):
		return utils.NotFound(c, "transaction not found")
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return utils.BadRequest(c, "insufficient balance")
	case errors.Is(err, ledger.ErrInvalidAmount):
		return utils.BadRequest(c, "amount must be greater than zero")
	case errors.Is(err, ledger.ErrInvalidType):
		return utils.BadRequest(c, "unknown transaction type")
	case errors.Is(err, ledger.ErrUserChangeNotAllowed):
		return utils.BadRequest(c, "transaction cannot move between users")
	default:
		return utils.InternalError(c, "transaction failed")
	}
}
