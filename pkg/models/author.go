package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Author struct {
	bun.BaseModel `bun:"table:authors,alias:a"`

	ID          int        `bun:",pk,nullzero" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	FirstName   string     `json:"first_name"`
	FamilyName  string     `json:"family_name"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	DateOfDeath *time.Time `json:"date_of_death"`

	Books []*Book `bun:"rel:has-many,join:id=author_id" json:"books,omitempty"`
}

// Name returns the display name formatted as "Family, First". An author
// missing either name part gets the empty string rather than a partial name.
func (a *Author) Name() string {
	if a.FirstName == "" || a.FamilyName == "" {
		return ""
	}
	return a.FamilyName + ", " + a.FirstName
}

// Lifespan formats the birth and death dates as "birth - death". Either side
// is empty when the date is absent.
func (a *Author) Lifespan() string {
	return formatDateMedium(a.DateOfBirth) + " - " + formatDateMedium(a.DateOfDeath)
}

// URL is the canonical path to this author's detail page.
func (a *Author) URL() string {
	return fmt.Sprintf("/catalog/author/%d", a.ID)
}

// DateOfBirthYMD returns the birth date as YYYY-MM-DD for form pre-population,
// or the empty string when absent.
func (a *Author) DateOfBirthYMD() string {
	return formatDateYMD(a.DateOfBirth)
}

// DateOfDeathYMD returns the death date as YYYY-MM-DD for form pre-population,
// or the empty string when absent.
func (a *Author) DateOfDeathYMD() string {
	return formatDateYMD(a.DateOfDeath)
}
