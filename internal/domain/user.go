package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is a person belonging to exactly one company.
type User struct {
	ID          uuid.UUID
	CompanyID   uuid.UUID
	FirstName   string
	MiddleName  *string
	LastName    string
	Username    string
	Email       string
	SSN         string
	DateOfBirth time.Time
	Addresses   []Address
	Phones      []Phone
	Status      UserStatus
	Functions   []UserFunction
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedBy   string
	UpdatedAt   time.Time
}

// FullName returns first and last name joined by a space.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}

// HasFunction reports whether the user currently holds the given function.
func (u *User) HasFunction(f UserFunction) bool {
	for _, held := range u.Functions {
		if held == f {
			return true
		}
	}
	return false
}

// UserUpdateParams carries a partial user update. Nil fields are left untouched.
type UserUpdateParams struct {
	FirstName   *string
	MiddleName  *string
	LastName    *string
	Email       *string
	DateOfBirth *time.Time
	Addresses   *[]Address
	Phones      *[]Phone
}

// ReconcileFunctions computes the set difference between the held and the
// requested functions. Duplicates in either input are ignored.
func ReconcileFunctions(held, requested []UserFunction) (toAdd, toRemove []UserFunction) {
	heldSet := make(map[UserFunction]struct{}, len(held))
	for _, f := range held {
		heldSet[f] = struct{}{}
	}
	reqSet := make(map[UserFunction]struct{}, len(requested))
	for _, f := range requested {
		if _, dup := reqSet[f]; dup {
			continue
		}
		reqSet[f] = struct{}{}
		if _, ok := heldSet[f]; !ok {
			toAdd = append(toAdd, f)
		}
	}
	seen := make(map[UserFunction]struct{}, len(held))
	for _, f := range held {
		if _, dup := seen[f]; dup {
			continue
		}
		seen[f] = struct{}{}
		if _, ok := reqSet[f]; !ok {
			toRemove = append(toRemove, f)
		}
	}
	return toAdd, toRemove
}
