package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"splitledger/internal/models"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestPerson creates a person with a unique name.
func CreateTestPerson(t *testing.T, db *gorm.DB) *models.Person {
	t.Helper()
	return CreateTestPersonWithName(t, db, fmt.Sprintf("Person %d", nextID()))
}

// CreateTestPersonWithName creates a person with the given name.
func CreateTestPersonWithName(t *testing.T, db *gorm.DB, name string) *models.Person {
	t.Helper()

	color := models.DefaultAvatarColor
	person := &models.Person{Name: name, AvatarColor: &color}
	if err := db.Create(person).Error; err != nil {
		t.Fatalf("failed to create test person: %v", err)
	}
	return person
}

// CreateTestExpense creates an expense paid by payerID, split evenly across
// the given participants.
func CreateTestExpense(t *testing.T, db *gorm.DB, payerID uint, total int64, participantIDs ...uint) *models.Expense {
	t.Helper()

	method := models.DefaultSplitMethod
	expense := &models.Expense{
		Title:       fmt.Sprintf("Test Expense %d", nextID()),
		TotalAmount: decimal.NewFromInt(total),
		Currency:    models.DefaultCurrency,
		PaidBy:      payerID,
		SplitMethod: &method,
		CreatedDate: time.Now().UTC(),
	}
	if err := db.Omit("Participants").Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}

	if len(participantIDs) == 0 {
		return expense
	}

	share := decimal.NewFromInt(total).Div(decimal.NewFromInt(int64(len(participantIDs))))
	for _, personID := range participantIDs {
		participant := models.ExpenseParticipant{
			ExpenseID:  expense.ID,
			PersonID:   personID,
			AmountOwed: share,
		}
		if err := db.Create(&participant).Error; err != nil {
			t.Fatalf("failed to create test participant: %v", err)
		}
		expense.Participants = append(expense.Participants, participant)
	}
	return expense
}

// CountParticipants returns the number of participant rows of an expense.
func CountParticipants(t *testing.T, db *gorm.DB, expenseID uint) int64 {
	t.Helper()

	var count int64
	if err := db.Model(&models.ExpenseParticipant{}).Where("expense_id = ?", expenseID).Count(&count).Error; err != nil {
		t.Fatalf("failed to count participants: %v", err)
	}
	return count
}
