package models

import (
	"time"

	"github.com/uptrace/bun"
)

// Course represents a course owned by exactly one user. OwnerID is assigned
// at creation from the authenticated principal and has no update path.
type Course struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID              string    `bun:"id,pk,type:uuid"`
	Title           string    `bun:"title,notnull"`
	Description     string    `bun:"description,notnull,type:text"`
	EstimatedTime   string    `bun:"estimated_time"`
	MaterialsNeeded string    `bun:"materials_needed"`
	OwnerID         string    `bun:"owner_id,notnull,type:uuid"`
	CreatedAt       time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt       time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`

	Owner *User `bun:"rel:belongs-to,join:owner_id=id"`
}

// Validate checks field-level rules before the record is written.
func (c *Course) Validate() error {
	var v ValidationError
	if c.Title == "" {
		v.add("A title is required")
	}
	if c.Description == "" {
		v.add("A description is required")
	}
	if c.OwnerID == "" {
		v.add("A course owner is required")
	}
	return v.orNil()
}
