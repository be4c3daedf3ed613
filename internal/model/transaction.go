// Package model defines the ledger's record types and their validation rules.
package model

import (
	"github.com/shopspring/decimal"

	"github.com/glowbooks/glow/internal/common"
)

// ExpenseType separates studio (professional) money from personal money.
type ExpenseType string

const (
	// TypeProfessional marks records belonging to the studio ledger.
	TypeProfessional ExpenseType = "PROFESSIONAL"
	// TypePersonal marks records belonging to the owner's personal ledger.
	TypePersonal ExpenseType = "PERSONAL"
)

// Valid reports whether the expense type is a known value.
func (t ExpenseType) Valid() bool {
	return t == TypeProfessional || t == TypePersonal
}

// Category determines how an expense amount spreads across installments.
type Category string

const (
	// CategoryFixed repeats the full stored amount each covered month.
	CategoryFixed Category = "FIXED"
	// CategoryVariable divides the stored total evenly across installments.
	CategoryVariable Category = "VARIABLE"
)

// Valid reports whether the category is a known value.
func (c Category) Valid() bool {
	return c == CategoryFixed || c == CategoryVariable
}

// SubCategory tags an expense for reporting.
type SubCategory string

// Personal sub-categories.
const (
	SubHousing   SubCategory = "HOUSING"
	SubFood      SubCategory = "FOOD"
	SubTransport SubCategory = "TRANSPORT"
	SubLeisure   SubCategory = "LEISURE"
	SubHealth    SubCategory = "HEALTH"
	SubEducation SubCategory = "EDUCATION"
	SubBeauty    SubCategory = "BEAUTY"
)

// Professional sub-categories.
const (
	SubSupplies  SubCategory = "SUPPLIES"
	SubCourses   SubCategory = "COURSES"
	SubMarketing SubCategory = "MARKETING"
	SubRent      SubCategory = "RENT"
	SubTaxes     SubCategory = "TAXES"
	SubOther     SubCategory = "OTHER"
)

var subCategories = map[SubCategory]bool{
	SubHousing: true, SubFood: true, SubTransport: true, SubLeisure: true,
	SubHealth: true, SubEducation: true, SubBeauty: true,
	SubSupplies: true, SubCourses: true, SubMarketing: true, SubRent: true,
	SubTaxes: true, SubOther: true,
}

// Valid reports whether the sub-category is a known tag.
func (s SubCategory) Valid() bool {
	return subCategories[s]
}

// Channel identifies where an expense was paid from.
type Channel string

const (
	ChannelNubank   Channel = "NUBANK"
	ChannelBradesco Channel = "BRADESCO"
	ChannelCash     Channel = "CASH"
	ChannelOther    Channel = "OTHER"
)

// Valid reports whether the channel is a known value.
func (c Channel) Valid() bool {
	switch c {
	case ChannelNubank, ChannelBradesco, ChannelCash, ChannelOther:
		return true
	}
	return false
}

// Transaction is a stored expense record. For CategoryFixed the amount is the
// full monthly amount repeated each covered month; for CategoryVariable it is
// the total cost divided evenly across Installments months.
type Transaction struct {
	ID            string          `json:"id"`
	Description   string          `json:"description"`
	Amount        decimal.Decimal `json:"amount"`
	Date          Date            `json:"date"`
	Type          ExpenseType     `json:"type"`
	Category      Category        `json:"category"`
	SubCategory   SubCategory     `json:"subCategory"`
	Channel       Channel         `json:"channel"`
	CustomChannel string          `json:"customChannel,omitempty"`
	Installments  int             `json:"installments"`
}

// Validate checks the transaction's required fields. Installment counts below
// one are rejected here so division by zero can never reach the expander.
func (t *Transaction) Validate() error {
	if t.ID == "" {
		return common.NewValidationError("id", "is required")
	}
	if t.Description == "" {
		return common.NewValidationError("description", "is required")
	}
	if !t.Amount.IsPositive() {
		return common.NewValidationError("amount", "must be positive")
	}
	if !t.Date.Valid() {
		return common.NewValidationError("date", "is not a valid calendar date")
	}
	if !t.Type.Valid() {
		return common.NewValidationError("type", "must be PROFESSIONAL or PERSONAL")
	}
	if !t.Category.Valid() {
		return common.NewValidationError("category", "must be FIXED or VARIABLE")
	}
	if !t.SubCategory.Valid() {
		return common.NewValidationError("subCategory", "is not a known tag")
	}
	if !t.Channel.Valid() {
		return common.NewValidationError("channel", "is not a known payment channel")
	}
	if t.Installments < 1 {
		return common.NewValidationError("installments", "must be at least 1")
	}
	return nil
}
