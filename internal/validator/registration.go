package validator

import "errors"

type Registration struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate reports every failing field, joined in the order username,
// email, password. It returns nil when all three pass.
func (r Registration) Validate() error {
	return errors.Join(
		ValidateUsername(r.Username),
		ValidateEmail(r.Email),
		ValidatePassword(r.Password),
	)
}
