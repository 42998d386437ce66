package services

import (
	"context"

	"github.com/shopspring/decimal"

	"splitledger/internal/models"
	"splitledger/internal/query"
)

// PersonInput is the full set of mutable person fields. Updates replace every
// field, so callers must resend unchanged values.
type PersonInput struct {
	Name        string
	Email       *string
	Phone       *string
	AvatarColor *string
}

// PersonServicer defines the contract for the person registry.
type PersonServicer interface {
	ListPeople(ctx context.Context) ([]models.Person, error)
	GetPerson(ctx context.Context, personID uint) (*models.Person, error)
	CreatePerson(ctx context.Context, input PersonInput) (*models.Person, error)
	UpdatePerson(ctx context.Context, personID uint, input PersonInput) (*models.Person, error)
	DeletePerson(ctx context.Context, personID uint) error
}

// ParticipantShare is one person's owed portion of an expense.
type ParticipantShare struct {
	PersonID   uint
	AmountOwed decimal.Decimal
	IsSettled  bool
}

// ExpenseInput is the full expense payload used for both create and update.
// The creation timestamp is not part of it: it is assigned on create and
// never changed afterwards.
type ExpenseInput struct {
	Title        string
	Description  *string
	TotalAmount  decimal.Decimal
	Currency     string
	PaidBy       uint
	SplitMethod  *string
	Category     *string
	ExpenseDate  *models.Date
	Participants []ParticipantShare
}

// ExpenseServicer defines the contract for the expense ledger.
type ExpenseServicer interface {
	ListExpenses(ctx context.Context, ordering query.Ordering) ([]models.Expense, error)
	GetExpense(ctx context.Context, expenseID uint) (*models.Expense, error)
	CreateExpense(ctx context.Context, input ExpenseInput) (*models.Expense, error)
	UpdateExpense(ctx context.Context, expenseID uint, input ExpenseInput) (*models.Expense, error)
	DeleteExpense(ctx context.Context, expenseID uint) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(action, resourceType string, resourceID uint, ipAddress string, changes map[string]interface{})
}
