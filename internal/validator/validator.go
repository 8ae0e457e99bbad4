package validator

import (
	"errors"
	"regexp"
)

var (
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidPassword = errors.New("invalid password")
	ErrInvalidGameID   = errors.New("invalid game id")
	ErrInvalidTrxID    = errors.New("invalid trx id")
	ErrMissingPhone    = errors.New("phone number required")
)

var (
	emailRegex  = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	gameIDRegex = regexp.MustCompile(`^[0-9]{8,}$`)
)

func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return ErrInvalidEmail
	}
	return nil
}

func ValidatePassword(password string) error {
	if len(password) < 4 {
		return ErrInvalidPassword
	}
	return nil
}

func ValidateGameID(gameID string) error {
	if !gameIDRegex.MatchString(gameID) {
		return ErrInvalidGameID
	}
	return nil
}

func ValidateTrxID(trxID string) error {
	if len(trxID) < 5 {
		return ErrInvalidTrxID
	}
	return nil
}

func ValidatePhone(phone string) error {
	if phone == "" {
		return ErrMissingPhone
	}
	return nil
}
