// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile is the personal data shared by every account kind.
type Profile struct {
	FirstName            string
	LastName             string
	Email                string // Unique within the account kind, stored normalized.
	IdentificationNumber string // National identification number. Never returned to callers.
	PhoneNumber          string
}

// FullName joins first and last name the way notifications address the recipient.
func (p Profile) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// Principal is a pre-provisioned administrator account.
type Principal struct {
	ID uuid.UUID
	Profile
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Teacher is an account created by a principal.
type Teacher struct {
	ID uuid.UUID
	Profile
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Student is an account created by a principal and attached to one class.
type Student struct {
	ID uuid.UUID
	Profile
	ClassID      uuid.UUID
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Identity is what a login token binds to.
type Identity struct {
	AccountID uuid.UUID
	Role      Role
}

// Account is the credential-bearing view of any account kind used by login.
type Account struct {
	Identity
	Email        string
	PasswordHash string
}

// Account returns the login view of the principal.
func (p *Principal) Account() *Account {
	return &Account{
		Identity:     Identity{AccountID: p.ID, Role: RolePrincipal},
		Email:        p.Email,
		PasswordHash: p.PasswordHash,
	}
}

// Account returns the login view of the teacher.
func (t *Teacher) Account() *Account {
	return &Account{
		Identity:     Identity{AccountID: t.ID, Role: RoleTeacher},
		Email:        t.Email,
		PasswordHash: t.PasswordHash,
	}
}

// Account returns the login view of the student.
func (s *Student) Account() *Account {
	return &Account{
		Identity:     Identity{AccountID: s.ID, Role: RoleStudent},
		Email:        s.Email,
		PasswordHash: s.PasswordHash,
	}
}

// PublicTeacher is the caller-facing projection of a Teacher.
type PublicTeacher struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public strips the password hash and identification number.
func (t *Teacher) Public() *PublicTeacher {
	return &PublicTeacher{
		ID:          t.ID,
		FirstName:   t.FirstName,
		LastName:    t.LastName,
		Email:       t.Email,
		PhoneNumber: t.PhoneNumber,
		CreatedAt:   t.CreatedAt,
	}
}

// PublicStudent is the caller-facing projection of a Student.
type PublicStudent struct {
	ID          uuid.UUID `json:"id"`
	FirstName   string    `json:"first_name"`
	LastName    string    `json:"last_name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	ClassID     uuid.UUID `json:"class_id"`
	CreatedAt   time.Time `json:"created_at"`
}

// Public strips the password hash and identification number.
func (s *Student) Public() *PublicStudent {
	return &PublicStudent{
		ID:          s.ID,
		FirstName:   s.FirstName,
		LastName:    s.LastName,
		Email:       s.Email,
		PhoneNumber: s.PhoneNumber,
		ClassID:     s.ClassID,
		CreatedAt:   s.CreatedAt,
	}
}

// NormalizeEmail trims and lowercases an address before lookups and writes.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
