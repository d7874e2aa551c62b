package users

import (
	"net/mail"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/2beens/gymtracker/internal/gymstats/apperr"
)

const (
	maxUsernameLength = 150
	maxNameLength     = 150
	maxEmailLength    = 254
	minPasswordLength = 8
)

var usernameRegex = regexp.MustCompile(`^[\w.@+-]+$`)

func validateUsername(username string) (string, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return "", apperr.Validation("username", "username is required")
	}
	if utf8.RuneCountInString(username) > maxUsernameLength {
		return "", apperr.Validation("username", "username must have at most %d characters", maxUsernameLength)
	}
	if !usernameRegex.MatchString(username) {
		return "", apperr.Validation("username", "username may contain only letters, digits and @/./+/-/_")
	}
	return username, nil
}

func validateEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", apperr.Validation("email", "email is required")
	}
	if len(email) > maxEmailLength {
		return "", apperr.Validation("email", "email must have at most %d characters", maxEmailLength)
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", apperr.Validation("email", "invalid email address")
	}
	return email, nil
}

func validateName(field, name string) (string, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > maxNameLength {
		return "", apperr.Validation(field, "%s must have at most %d characters", field, maxNameLength)
	}
	return name, nil
}

func validatePassword(field, password, confirm, confirmField string) error {
	if utf8.RuneCountInString(password) < minPasswordLength {
		return apperr.Validation(field, "password must have at least %d characters", minPasswordLength)
	}
	if strings.Trim(password, "0123456789") == "" {
		return apperr.Validation(field, "password cannot be entirely numeric")
	}
	if password != confirm {
		return apperr.Validation(confirmField, "passwords do not match")
	}
	return nil
}

// Validate returns the normalized params or a validation error.
func (p RegisterParams) Validate() (RegisterParams, error) {
	var err error
	if p.Username, err = validateUsername(p.Username); err != nil {
		return RegisterParams{}, err
	}
	if p.Email, err = validateEmail(p.Email); err != nil {
		return RegisterParams{}, err
	}
	if p.FirstName, err = validateName("first_name", p.FirstName); err != nil {
		return RegisterParams{}, err
	}
	if p.LastName, err = validateName("last_name", p.LastName); err != nil {
		return RegisterParams{}, err
	}
	if err := validatePassword("password", p.Password, p.PasswordConfirm, "password_confirm"); err != nil {
		return RegisterParams{}, err
	}
	return p, nil
}

// Apply merges the set fields into u.
func (p UpdateProfileParams) Apply(u User) (User, error) {
	if p.Username != nil {
		return User{}, apperr.Validation("username", "username cannot be changed")
	}

	var err error
	if p.Email != nil {
		if u.Email, err = validateEmail(*p.Email); err != nil {
			return User{}, err
		}
	}
	if p.FirstName != nil {
		if u.FirstName, err = validateName("first_name", *p.FirstName); err != nil {
			return User{}, err
		}
	}
	if p.LastName != nil {
		if u.LastName, err = validateName("last_name", *p.LastName); err != nil {
			return User{}, err
		}
	}
	if p.Bio != nil {
		u.Bio = strings.TrimSpace(*p.Bio)
	}
	return u, nil
}
