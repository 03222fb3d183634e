package models

import (
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

type Genre struct {
	bun.BaseModel `bun:"table:genres,alias:g"`

	ID        int       `bun:",pk,nullzero" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	Name      string    `bun:",nullzero" json:"name"`
}

// URL is the canonical path to this genre's detail page.
func (g *Genre) URL() string {
	return fmt.Sprintf("/catalog/genre/%d", g.ID)
}
