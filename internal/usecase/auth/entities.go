package auth

import "booklend/internal/domain/account"

type RegisterInput struct {
	Kind     account.Kind `json:"kind"`
	Name     string       `json:"name"`
	Password string       `json:"password"`
	// AuthorityCode is only consulted for admin registrations.
	AuthorityCode string `json:"authority_code"`
}

type AuthenticateInput struct {
	Kind     account.Kind `json:"kind"`
	Name     string       `json:"name"`
	Password string       `json:"password"`
}
