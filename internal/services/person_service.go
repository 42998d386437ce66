package services

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	apperrors "splitledger/internal/errors"
	"splitledger/internal/metrics"
	"splitledger/internal/models"
	"splitledger/internal/validator"
)

// personService handles the person registry.
type personService struct {
	db *gorm.DB
}

// NewPersonService creates a new PersonServicer.
func NewPersonService(db *gorm.DB) PersonServicer {
	return &personService{db: db}
}

// ListPeople returns every person ordered by ascending ID.
func (s *personService) ListPeople(ctx context.Context) ([]models.Person, error) {
	people := []models.Person{}
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&people).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return people, nil
}

// GetPerson retrieves a person by ID
func (s *personService) GetPerson(ctx context.Context, personID uint) (*models.Person, error) {
	return findPerson(s.db.WithContext(ctx), personID)
}

// CreatePerson validates the input and stores a new person.
func (s *personService) CreatePerson(ctx context.Context, input PersonInput) (person *models.Person, err error) {
	defer func() { metrics.ObserveLedgerWrite("create_person", err) }()

	input, err = normalizePersonInput(input)
	if err != nil {
		return nil, err
	}

	person = &models.Person{
		Name:        input.Name,
		Email:       input.Email,
		Phone:       input.Phone,
		AvatarColor: input.AvatarColor,
	}
	if err := s.db.WithContext(ctx).Create(person).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return person, nil
}

// UpdatePerson replaces every mutable field of an existing person.
func (s *personService) UpdatePerson(ctx context.Context, personID uint, input PersonInput) (person *models.Person, err error) {
	defer func() { metrics.ObserveLedgerWrite("update_person", err) }()

	input, err = normalizePersonInput(input)
	if err != nil {
		return nil, err
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var txErr error
		person, txErr = findPerson(tx, personID)
		if txErr != nil {
			return txErr
		}

		person.Name = input.Name
		person.Email = input.Email
		person.Phone = input.Phone
		person.AvatarColor = input.AvatarColor

		if err := tx.Model(person).
			Select("name", "email", "phone", "avatar_color").
			Updates(person).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return person, nil
}

// DeletePerson removes a person that no expense refers to, either as payer
// or as participant.
func (s *personService) DeletePerson(ctx context.Context, personID uint) (err error) {
	defer func() { metrics.ObserveLedgerWrite("delete_person", err) }()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := findPerson(tx, personID); err != nil {
			return err
		}

		var paidCount int64
		if err := tx.Model(&models.Expense{}).Where("paid_by = ?", personID).Count(&paidCount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		var shareCount int64
		if err := tx.Model(&models.ExpenseParticipant{}).Where("person_id = ?", personID).Count(&shareCount).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}

		if paidCount > 0 || shareCount > 0 {
			return apperrors.ErrPersonInUse
		}

		if err := tx.Delete(&models.Person{}, personID).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
}

func findPerson(db *gorm.DB, personID uint) (*models.Person, error) {
	var person models.Person
	if err := db.First(&person, personID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &person, nil
}

// normalizePersonInput trims the input, turns blank optional fields into
// nulls, applies the default avatar color and validates what remains.
func normalizePersonInput(input PersonInput) (PersonInput, error) {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return input, apperrors.WithMessage(apperrors.ErrInvalidBody, "name is required")
	}

	input.Email = blankToNil(input.Email)
	input.Phone = blankToNil(input.Phone)
	input.AvatarColor = blankToNil(input.AvatarColor)

	if input.Email != nil && !validator.IsEmail(*input.Email) {
		return input, apperrors.WithMessage(apperrors.ErrInvalidBody, "email is not a valid email address")
	}

	if input.AvatarColor == nil {
		color := models.DefaultAvatarColor
		input.AvatarColor = &color
	} else if !validator.IsHexColor(*input.AvatarColor) {
		return input, apperrors.WithMessage(apperrors.ErrInvalidBody, "avatar_color must be a hex color such as #10B981")
	}

	return input, nil
}

func blankToNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
