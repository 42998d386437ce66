package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Defaults applied to optional expense fields.
const (
	DefaultCurrency    = "INR"
	DefaultSplitMethod = "equal"
)

func init() {
	// Amounts are rendered as JSON numbers, not quoted strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Expense represents a single payment made by one person on behalf of a group.
// Its participants are owned by it and are removed together with it.
type Expense struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	Title       string          `gorm:"not null" json:"title"`
	Description *string         `json:"description"`
	TotalAmount decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"total_amount" swaggertype:"number"`
	Currency    string          `gorm:"not null;default:INR" json:"currency"`
	PaidBy      uint            `gorm:"not null;index" json:"paid_by"`
	SplitMethod *string         `json:"split_method"`
	Category    *string         `json:"category"`
	ExpenseDate *Date           `gorm:"type:date" json:"expense_date" swaggertype:"string" example:"2024-01-15"`
	CreatedDate time.Time       `gorm:"not null;index" json:"created_date"`

	// Relationships
	Payer        *Person              `gorm:"foreignKey:PaidBy" json:"-"`
	Participants []ExpenseParticipant `gorm:"foreignKey:ExpenseID;constraint:OnDelete:CASCADE" json:"participants"`
}

// ExpenseParticipant is one person's share of an expense.
type ExpenseParticipant struct {
	ID         uint            `gorm:"primaryKey" json:"-"`
	ExpenseID  uint            `gorm:"not null;index" json:"-"`
	PersonID   uint            `gorm:"not null;index" json:"person_id"`
	AmountOwed decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0" json:"amount_owed" swaggertype:"number"`
	IsSettled  bool            `gorm:"not null;default:false" json:"is_settled"`

	// Relationships
	Person *Person `gorm:"foreignKey:PersonID" json:"-"`
}
