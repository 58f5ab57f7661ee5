package directory

import "github.com/heartmarshall/insurance-admin/internal/domain"

type account struct {
	ExternalID string   `json:"externalId"`
	Username   string   `json:"username"`
	Email      string   `json:"email"`
	GivenName  string   `json:"givenName"`
	FamilyName string   `json:"familyName"`
	Enabled    bool     `json:"enabled"`
	Groups     []string `json:"groups"`
}

type invitation struct {
	Email string `json:"email"`
}

func toAccount(u *domain.User) account {
	groups := make([]string, len(u.Functions))
	for i, f := range u.Functions {
		groups[i] = string(f)
	}
	return account{
		ExternalID: u.ID.String(),
		Username:   u.Username,
		Email:      u.Email,
		GivenName:  u.FirstName,
		FamilyName: u.LastName,
		Enabled:    u.Status != domain.UserStatusInactive,
		Groups:     groups,
	}
}
