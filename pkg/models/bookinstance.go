package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// Loan status of a physical copy. Anything else is rejected at the service
// boundary before it reaches the database.
const (
	StatusAvailable   = "Available"
	StatusMaintenance = "Maintenance"
	StatusLoaned      = "Loaned"
	StatusReserved    = "Reserved"
)

// InstanceStatuses lists the accepted statuses in the order they appear in
// the status select control.
var InstanceStatuses = []string{
	StatusAvailable,
	StatusMaintenance,
	StatusLoaned,
	StatusReserved,
}

// IsValidInstanceStatus reports whether status is one of the accepted values.
func IsValidInstanceStatus(status string) bool {
	for _, s := range InstanceStatuses {
		if s == status {
			return true
		}
	}
	return false
}

// BookInstance is a physical copy of a book that someone might borrow.
type BookInstance struct {
	bun.BaseModel `bun:"table:book_instances,alias:bi"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	BookID    int       `bun:",nullzero" json:"book_id"`
	Book      *Book     `bun:"rel:belongs-to,join:book_id=id" json:"book,omitempty"`
	Imprint   string    `bun:",nullzero" json:"imprint"`
	Status    string    `bun:",nullzero" json:"status"`
	DueBack   time.Time `bun:",nullzero" json:"due_back"`
}

// URL is the canonical path to this copy's detail page.
func (bi *BookInstance) URL() string {
	return fmt.Sprintf("/catalog/bookinstance/%d", bi.ID)
}

// DueBackFormatted is the human-readable due date shown on list and detail
// pages.
func (bi *BookInstance) DueBackFormatted() string {
	return formatDateMedium(&bi.DueBack)
}

// DueBackYMD is the due date as YYYY-MM-DD for form pre-population.
func (bi *BookInstance) DueBackYMD() string {
	return formatDateYMD(&bi.DueBack)
}
