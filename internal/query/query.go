// Package query translates the sort and limit parameters of expense listings
// into a deterministic ordering over the ledger.
package query

import (
	"strings"

	"gorm.io/gorm"
)

// SortField is a column the expense list can be ordered by.
type SortField string

// Sortable expense columns.
const (
	SortByCreatedDate SortField = "created_date"
	SortByExpenseDate SortField = "expense_date"
	SortByTotalAmount SortField = "total_amount"
)

// DefaultExpenseSort is applied when no sort is requested.
const DefaultExpenseSort = "-created_date"

// ListRequest holds listing parameters parsed from query strings.
type ListRequest struct {
	Sort  string `form:"sort"`
	Limit *int   `form:"limit" binding:"omitempty,min=0"`
}

// Ordering is a parsed sort instruction: field, direction, null placement
// and an optional cap on the number of results.
type Ordering struct {
	Field      SortField
	Descending bool
	Limit      *int
}

// Ordering converts the request into an Ordering.
func (r ListRequest) Ordering() Ordering {
	return ParseExpenseOrdering(r.Sort, r.Limit)
}

// ParseExpenseOrdering parses a sort spec such as "-total_amount" or
// "expense_date". A leading "-" selects descending order. Unrecognized
// fields fall back to created_date and keep the requested direction.
func ParseExpenseOrdering(sort string, limit *int) Ordering {
	sort = strings.TrimSpace(sort)
	if sort == "" {
		sort = DefaultExpenseSort
	}

	descending := strings.HasPrefix(sort, "-")
	field := SortField(strings.TrimPrefix(sort, "-"))

	switch field {
	case SortByCreatedDate, SortByExpenseDate, SortByTotalAmount:
	default:
		field = SortByCreatedDate
	}

	return Ordering{Field: field, Descending: descending, Limit: limit}
}

// String renders the ordering back into its sort spec form.
func (o Ordering) String() string {
	if o.Descending {
		return "-" + string(o.Field)
	}
	return string(o.Field)
}

// OrderClause returns the ORDER BY expression. Descending orders put nulls
// last, ascending orders put them first, and the primary key breaks ties.
func (o Ordering) OrderClause() string {
	if o.Descending {
		return string(o.Field) + " DESC NULLS LAST, id DESC"
	}
	return string(o.Field) + " ASC NULLS FIRST, id ASC"
}

// Scope returns a GORM scope that applies the ordering and limit.
func (o Ordering) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = db.Order(o.OrderClause())
		if o.Limit != nil {
			db = db.Limit(*o.Limit)
		}
		return db
	}
}
