package models

// DefaultAvatarColor is assigned to people created without an avatar color.
const DefaultAvatarColor = "#10B981"

// Person represents someone who can pay for or take part in an expense
type Person struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	AvatarColor *string `json:"avatar_color"`

	// Relationships
	ExpensesPaid       []Expense            `gorm:"foreignKey:PaidBy;constraint:OnDelete:RESTRICT" json:"-"`
	ParticipantEntries []ExpenseParticipant `gorm:"foreignKey:PersonID;constraint:OnDelete:RESTRICT" json:"-"`
}

// TableName pins the table name used by the migrations.
func (Person) TableName() string {
	return "people"
}
