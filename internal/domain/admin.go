package domain

import (
	"fmt"
	"strings"
	"time"
)

// AdminAccount is a seeded administrator credential. Admin accounts
// never live in the users collection; a matching login synthesizes a
// User on the fly.
type AdminAccount struct {
	Username   string
	Password   string
	Name       string
	Department string
}

// AdminAccounts is the fixed administrator credential table, checked
// before the stored users on every login.
var AdminAccounts = []AdminAccount{
	{Username: "hod", Password: "000", Name: "Head of Department", Department: "Administration"},
	{Username: "staff", Password: "000", Name: "Staff Admin", Department: "Administration"},
}

const adminIDPrefix = "admin-"

// FindAdminByID resolves a synthesized admin user id (admin-<username>)
// back to its seed account.
func FindAdminByID(id string) (AdminAccount, bool) {
	username, ok := strings.CutPrefix(id, adminIDPrefix)
	if !ok {
		return AdminAccount{}, false
	}

	for _, acc := range AdminAccounts {
		if acc.Username == username {
			return acc, true
		}
	}

	return AdminAccount{}, false
}

// SynthesizeAdmin builds the non-persisted User record for a seed
// account. The password field is deliberately left empty.
func (a AdminAccount) SynthesizeAdmin() User {
	return User{
		ID:         adminIDPrefix + a.Username,
		Name:       a.Name,
		Email:      fmt.Sprintf("%s@college.edu", a.Username),
		Password:   "",
		Role:       RoleAdmin,
		Department: a.Department,
		CreatedAt:  time.Now(),
	}
}
