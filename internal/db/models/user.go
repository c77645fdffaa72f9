package models

import (
	"net/mail"
	"time"

	"github.com/uptrace/bun"
)

// User represents an account that can own courses.
// PasswordHash holds the bcrypt hash of the account password; the plaintext
// password never touches this struct and the hash is never JSON-encoded.
type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID           string    `bun:"id,pk,type:uuid"`
	FirstName    string    `bun:"first_name,notnull"`
	LastName     string    `bun:"last_name,notnull"`
	Email        string    `bun:"email,notnull,unique"`
	PasswordHash string    `bun:"password_hash,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt    time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// Validate checks field-level rules before the record is written.
// Violations are collected in declaration order so clients see a stable,
// predictable message list.
func (u *User) Validate() error {
	var v ValidationError
	if u.FirstName == "" {
		v.add("A first name is required")
	}
	if u.LastName == "" {
		v.add("A last name is required")
	}
	if u.Email == "" {
		v.add("An email address is required")
	} else if _, err := mail.ParseAddress(u.Email); err != nil {
		v.add("Please provide a valid email address")
	}
	if u.PasswordHash == "" {
		v.add("A password is required")
	}
	return v.orNil()
}
