package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "splitledger/internal/errors"
	"splitledger/internal/metrics"
	"splitledger/internal/models"
	"splitledger/internal/query"
	"splitledger/internal/validator"
)

// amountScale is the number of decimal places amounts are stored with.
const amountScale = 2

// expenseColumns are the columns an update overwrites. created_date is never
// among them.
var expenseColumns = []string{
	"title", "description", "total_amount", "currency", "paid_by",
	"split_method", "category", "expense_date",
}

// expenseService handles the expense ledger.
type expenseService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB) ExpenseServicer {
	return &expenseService{db: db, now: time.Now}
}

// ListExpenses returns expenses with their participants in the requested order.
func (s *expenseService) ListExpenses(ctx context.Context, ordering query.Ordering) ([]models.Expense, error) {
	expenses := []models.Expense{}
	if err := s.db.WithContext(ctx).
		Scopes(ordering.Scope()).
		Preload("Participants", orderParticipants).
		Find(&expenses).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return expenses, nil
}

// GetExpense retrieves an expense and its participants by ID
func (s *expenseService) GetExpense(ctx context.Context, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := s.db.WithContext(ctx).
		Preload("Participants", orderParticipants).
		First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

// CreateExpense stores an expense together with its participant shares in a
// single transaction. Nothing is written when validation fails.
func (s *expenseService) CreateExpense(ctx context.Context, input ExpenseInput) (expense *models.Expense, err error) {
	defer func() { metrics.ObserveLedgerWrite("create_expense", err) }()

	input, err = normalizeExpenseInput(input)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkReferences(tx, input); err != nil {
			return err
		}

		expense = &models.Expense{CreatedDate: s.now().UTC().Truncate(time.Microsecond)}
		applyExpenseInput(expense, input)

		if err := tx.Omit("Participants").Create(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		participants, err := insertParticipants(tx, expense.ID, input.Participants)
		if err != nil {
			return err
		}
		expense.Participants = participants
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// UpdateExpense overwrites every scalar field except the creation timestamp
// and replaces the participant set wholesale, all in one transaction.
func (s *expenseService) UpdateExpense(ctx context.Context, expenseID uint, input ExpenseInput) (expense *models.Expense, err error) {
	defer func() { metrics.ObserveLedgerWrite("update_expense", err) }()

	input, err = normalizeExpenseInput(input)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		expense, txErr = findExpense(tx, expenseID)
		if txErr != nil {
			return txErr
		}

		if err := checkReferences(tx, input); err != nil {
			return err
		}

		applyExpenseInput(expense, input)
		if err := tx.Model(expense).Select(expenseColumns).Updates(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Where("expense_id = ?", expense.ID).Delete(&models.ExpenseParticipant{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		participants, err := insertParticipants(tx, expense.ID, input.Participants)
		if err != nil {
			return err
		}
		expense.Participants = participants
		return nil
	})
	if err != nil {
		return nil, err
	}
	return expense, nil
}

// DeleteExpense removes an expense and every participant share it owns.
func (s *expenseService) DeleteExpense(ctx context.Context, expenseID uint) (err error) {
	defer func() { metrics.ObserveLedgerWrite("delete_expense", err) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		expense, err := findExpense(tx, expenseID)
		if err != nil {
			return err
		}

		// Shares go first so the FK cascade is never relied upon.
		if err := tx.Where("expense_id = ?", expense.ID).Delete(&models.ExpenseParticipant{}).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if err := tx.Delete(expense).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func findExpense(db *gorm.DB, expenseID uint) (*models.Expense, error) {
	var expense models.Expense
	if err := db.First(&expense, expenseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrExpenseNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &expense, nil
}

func orderParticipants(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// checkReferences verifies that the payer exists, then that the participant
// list is non-empty, free of duplicates and made of existing people. The
// payer error wins when several checks fail.
func checkReferences(tx *gorm.DB, input ExpenseInput) error {
	var payerCount int64
	if err := tx.Model(&models.Person{}).Where("id = ?", input.PaidBy).Count(&payerCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if payerCount == 0 {
		return apperrors.ErrPayerNotFound
	}

	if len(input.Participants) == 0 {
		return apperrors.ErrEmptyParticipants
	}

	seen := make(map[uint]bool, len(input.Participants))
	ids := make([]uint, 0, len(input.Participants))
	for _, share := range input.Participants {
		if seen[share.PersonID] {
			return apperrors.ErrDuplicateParticipant
		}
		seen[share.PersonID] = true
		ids = append(ids, share.PersonID)
	}

	var matched int64
	if err := tx.Model(&models.Person{}).Where("id IN ?", ids).Count(&matched).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	// Participant IDs are unique at this point, so the counts must match.
	if matched != int64(len(ids)) {
		return apperrors.ErrParticipantsNotFound
	}
	return nil
}

func insertParticipants(tx *gorm.DB, expenseID uint, shares []ParticipantShare) ([]models.ExpenseParticipant, error) {
	participants := make([]models.ExpenseParticipant, 0, len(shares))
	for _, share := range shares {
		participants = append(participants, models.ExpenseParticipant{
			ExpenseID:  expenseID,
			PersonID:   share.PersonID,
			AmountOwed: share.AmountOwed,
			IsSettled:  share.IsSettled,
		})
	}

	if err := tx.Create(&participants).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return participants, nil
}

func applyExpenseInput(expense *models.Expense, input ExpenseInput) {
	expense.Title = input.Title
	expense.Description = input.Description
	expense.TotalAmount = input.TotalAmount
	expense.Currency = input.Currency
	expense.PaidBy = input.PaidBy
	expense.SplitMethod = input.SplitMethod
	expense.Category = input.Category
	expense.ExpenseDate = input.ExpenseDate
}

// normalizeExpenseInput applies defaults and checks the parts of the payload
// that need no database access.
func normalizeExpenseInput(input ExpenseInput) (ExpenseInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return input, apperrors.WithMessage(apperrors.ErrInvalidBody, "title is required")
	}

	input.Currency = strings.ToUpper(strings.TrimSpace(input.Currency))
	if input.Currency == "" {
		input.Currency = models.DefaultCurrency
	}
	if !validator.IsCurrency(input.Currency) {
		return input, apperrors.WithMessage(apperrors.ErrInvalidBody, "currency must be an ISO 4217 code")
	}

	if input.SplitMethod == nil {
		method := models.DefaultSplitMethod
		input.SplitMethod = &method
	}

	if input.PaidBy == 0 {
		return input, apperrors.WithMessage(apperrors.ErrInvalidBody, "paid_by is required")
	}

	// Amounts match the two decimal places of the stored columns.
	input.TotalAmount = input.TotalAmount.Round(amountScale)
	shares := make([]ParticipantShare, len(input.Participants))
	for i, share := range input.Participants {
		share.AmountOwed = share.AmountOwed.Round(amountScale)
		shares[i] = share
	}
	input.Participants = shares

	return input, nil
}
