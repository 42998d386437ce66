package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	apperrors "splitledger/internal/errors"
	"splitledger/internal/models"
	"splitledger/internal/query"
	"splitledger/internal/services"
)

// ExpenseHandler handles expense-related requests.
type ExpenseHandler struct {
	expenseService services.ExpenseServicer
	auditService   services.AuditServicer
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(expenseService services.ExpenseServicer, auditService services.AuditServicer) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService, auditService: auditService}
}

// ParticipantRequest is one participant share of an expense.
type ParticipantRequest struct {
	PersonID   uint             `json:"person_id"`
	AmountOwed *decimal.Decimal `json:"amount_owed" binding:"required" swaggertype:"number"`
	IsSettled  bool             `json:"is_settled"`
}

// ExpenseRequest is the payload for creating or replacing an expense.
// Clients may echo back id and created_date from a previous read; both are
// ignored.
type ExpenseRequest struct {
	Title        string               `json:"title" binding:"required,max=200"`
	Description  *string              `json:"description"`
	TotalAmount  *decimal.Decimal     `json:"total_amount" binding:"required" swaggertype:"number"`
	Currency     string               `json:"currency" binding:"omitempty,iso4217"`
	PaidBy       uint                 `json:"paid_by" binding:"required"`
	SplitMethod  *string              `json:"split_method" binding:"omitempty,max=50"`
	Category     *string              `json:"category" binding:"omitempty,max=100"`
	ExpenseDate  *models.Date         `json:"expense_date" swaggertype:"string" example:"2024-01-15"`
	Participants []ParticipantRequest `json:"participants" binding:"required,dive"`
}

func (r ExpenseRequest) input() services.ExpenseInput {
	shares := make([]services.ParticipantShare, 0, len(r.Participants))
	for _, p := range r.Participants {
		shares = append(shares, services.ParticipantShare{
			PersonID:   p.PersonID,
			AmountOwed: *p.AmountOwed,
			IsSettled:  p.IsSettled,
		})
	}

	return services.ExpenseInput{
		Title:        r.Title,
		Description:  r.Description,
		TotalAmount:  *r.TotalAmount,
		Currency:     r.Currency,
		PaidBy:       r.PaidBy,
		SplitMethod:  r.SplitMethod,
		Category:     r.Category,
		ExpenseDate:  r.ExpenseDate,
		Participants: shares,
	}
}

func expenseChanges(expense *models.Expense) map[string]interface{} {
	return map[string]interface{}{
		"title":        expense.Title,
		"total_amount": expense.TotalAmount.String(),
		"currency":     expense.Currency,
		"paid_by":      expense.PaidBy,
		"participants": len(expense.Participants),
	}
}

// ListExpenses returns expenses with their participants.
// @Summary     List expenses
// @Description Sort by created_date, expense_date or total_amount. A leading "-" sorts descending with nulls last; ascending puts nulls first.
// @Tags        expenses
// @Produce     json
// @Param       sort  query string false "Sort spec" default(-created_date)
// @Param       limit query int    false "Maximum number of expenses" minimum(0)
// @Success     200 {array}  models.Expense
// @Failure     400 {object} ErrorResponse "Invalid limit"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	var req query.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, "limit must be a non-negative integer"))
		return
	}

	expenses, err := h.expenseService.ListExpenses(c.Request.Context(), req.Ordering())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expenses)
}

// GetExpense returns a single expense with its participants.
// @Summary     Get an expense
// @Tags        expenses
// @Produce     json
// @Param       id path int true "Expense ID"
// @Success     200 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.GetExpense(c.Request.Context(), expenseID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, expense)
}

// CreateExpense records a new expense and its participant shares.
// @Summary     Create an expense
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       request body ExpenseRequest true "Expense details"
// @Success     201 {object} models.Expense "Expense created"
// @Failure     400 {object} ErrorResponse "Payer or participant does not exist"
// @Failure     422 {object} ErrorResponse "Malformed body"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req ExpenseRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("CREATE_EXPENSE", "expense", expense.ID, c.ClientIP(), expenseChanges(expense))

	c.JSON(http.StatusCreated, expense)
}

// UpdateExpense replaces an expense and its whole participant set.
// @Summary     Replace an expense
// @Description Overwrites every field except created_date and swaps the participant set in one transaction.
// @Tags        expenses
// @Accept      json
// @Produce     json
// @Param       id      path int            true "Expense ID"
// @Param       request body ExpenseRequest true "Expense details"
// @Success     200 {object} models.Expense
// @Failure     400 {object} ErrorResponse "Invalid ID, payer or participants"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Failure     422 {object} ErrorResponse "Malformed body"
// @Router      /expenses/{id} [put]
func (h *ExpenseHandler) UpdateExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ExpenseRequest
	if err := bindJSON(c, &req); err != nil {
		respondWithError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), expenseID, req.input())
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("UPDATE_EXPENSE", "expense", expense.ID, c.ClientIP(), expenseChanges(expense))

	c.JSON(http.StatusOK, expense)
}

// DeleteExpense removes an expense and its participant shares.
// @Summary     Delete an expense
// @Tags        expenses
// @Param       id path int true "Expense ID"
// @Success     204 "Expense deleted"
// @Failure     400 {object} ErrorResponse "Invalid ID"
// @Failure     404 {object} ErrorResponse "Expense not found"
// @Router      /expenses/{id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.expenseService.DeleteExpense(c.Request.Context(), expenseID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Log("DELETE_EXPENSE", "expense", expenseID, c.ClientIP(), nil)

	c.Status(http.StatusNoContent)
}
