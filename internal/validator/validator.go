// Package validator checks registration fields against fixed rule sets.
package validator

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is counted in runes.
const MinPasswordLength = 8

// SpecialCharacters is the closed set a password must draw at least one character from.
const SpecialCharacters = `!@#$%^&*()-_+=<>?/\|{}[]:;`

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidUsername = errors.New("invalid username")
	ErrInvalidPassword = errors.New("invalid password")
)

var (
	ErrUsernameRequired      = fmt.Errorf("%w: username is required", ErrInvalidUsername)
	ErrUsernameContainsSpace = fmt.Errorf("%w: username must not contain spaces", ErrInvalidUsername)

	ErrPasswordTooShort       = fmt.Errorf("%w: password must be at least %d characters", ErrInvalidPassword, MinPasswordLength)
	ErrPasswordMissingDigit   = fmt.Errorf("%w: password must contain a digit", ErrInvalidPassword)
	ErrPasswordMissingLetter  = fmt.Errorf("%w: password must contain a letter", ErrInvalidPassword)
	ErrPasswordMissingSpecial = fmt.Errorf("%w: password must contain one of %s", ErrInvalidPassword, SpecialCharacters)
)

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

func ValidUsername(username string) bool {
	return ValidateUsername(username) == nil
}

func ValidPassword(password string) bool {
	return ValidatePassword(password) == nil
}

func ValidEmail(email string) bool {
	return ValidateEmail(email) == nil
}

// ValidateUsername only rejects U+0020; tabs and newlines pass.
func ValidateUsername(username string) error {
	if username == "" {
		return ErrUsernameRequired
	}
	if strings.ContainsRune(username, ' ') {
		return ErrUsernameContainsSpace
	}
	return nil
}

// ValidatePassword returns the first violated rule, in the order
// length, digit, letter, special character.
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	var hasDigit, hasLetter, hasSpecial bool
	for _, c := range password {
		switch {
		case unicode.IsDigit(c):
			hasDigit = true
		case unicode.IsLetter(c):
			hasLetter = true
		case strings.ContainsRune(SpecialCharacters, c):
			hasSpecial = true
		}
	}
	if !hasDigit {
		return ErrPasswordMissingDigit
	}
	if !hasLetter {
		return ErrPasswordMissingLetter
	}
	if !hasSpecial {
		return ErrPasswordMissingSpecial
	}
	return nil
}

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}
