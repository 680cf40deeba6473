// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/MKhiriev/go-user-directory/models"
	"github.com/go-playground/validator/v10"
)

// Field name constants used to scope validation to a subset of the record.
const (
	// FieldName requires a full name of at least two characters.
	FieldName = "name"

	// FieldNameRequired only requires a non-blank full name. The edit
	// dialog uses this weaker rule.
	FieldNameRequired = "name_required"

	// FieldEmail requires a local@domain.tld shaped address.
	FieldEmail = "email"

	// FieldPhone requires 7 to 15 digits, '+', '-', parentheses or spaces.
	FieldPhone = "phone"
)

const minNameLength = 2

var (
	defaultUserValidator = sync.OnceValue(NewUserValidator)

	emailPattern = regexp.MustCompile(`^[^\s\v\p{Z}\x{FEFF}@]+@[^\s\v\p{Z}\x{FEFF}@]+\.[^\s\v\p{Z}\x{FEFF}@]+$`)
	phonePattern = regexp.MustCompile(`^[0-9+\-() ]{7,15}$`)
)

// ValidateName reports whether s is a usable full name: non-empty and at
// least two characters long.
func ValidateName(s string) bool {
	return s != "" && utf8.RuneCountInString(s) >= minNameLength
}

// ValidateEmail reports whether s has the local@domain.tld shape: exactly one
// '@', a '.' after it and no whitespace anywhere. Whitespace covers the
// Unicode space separators, vertical tab and the BOM as well as ASCII blanks.
func ValidateEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// ValidatePhone reports whether s has 7 to 15 characters drawn only from
// digits, '+', '-', '(', ')' and space.
func ValidatePhone(s string) bool {
	return phonePattern.MatchString(s)
}

// ValidateUser checks name, email and phone in that order and returns the
// first failure.
func ValidateUser(u models.User) error {
	return defaultUserValidator().Validate(context.Background(), u)
}

// userRules is the declarative form of the record constraints evaluated by
// go-playground/validator. Field order defines the reporting order.
type userRules struct {
	FullName string `validate:"dirname"`
	Email    string `validate:"diremail"`
	Phone    string `validate:"dirphone"`
}

// UserValidator implements [Validator] for [models.User] records.
type UserValidator struct {
	validate *validator.Validate
}

// NewUserValidator constructs a UserValidator with the directory tags
// registered.
func NewUserValidator() *UserValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	mustRegister(v, "dirname", ValidateName)
	mustRegister(v, "dirname_required", func(s string) bool { return strings.TrimSpace(s) != "" })
	mustRegister(v, "diremail", ValidateEmail)
	mustRegister(v, "dirphone", ValidatePhone)

	return &UserValidator{validate: v}
}

func mustRegister(v *validator.Validate, tag string, pred func(string) bool) {
	err := v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
		return pred(fl.Field().String())
	}, true)
	if err != nil {
		panic(err)
	}
}

// Validate checks a [models.User] (value or pointer). With no fields the full
// create rule set is applied: name, email, phone. Validation stops at the
// first failing field.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		if value == nil {
			return ErrUnsupportedType
		}
		return v.validateUser(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(ctx context.Context, u models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName, FieldEmail, FieldPhone}
	}

	rules := userRules{FullName: u.FullName, Email: u.Email, Phone: u.Phone}
	for _, f := range fields {
		var err error
		switch f {
		case FieldName:
			if err = v.validate.StructPartialCtx(ctx, rules, "FullName"); err != nil {
				return ErrInvalidName
			}
		case FieldNameRequired:
			if err = v.validate.VarCtx(ctx, u.FullName, "dirname_required"); err != nil {
				return ErrInvalidName
			}
		case FieldEmail:
			if err = v.validate.StructPartialCtx(ctx, rules, "Email"); err != nil {
				return ErrInvalidEmail
			}
		case FieldPhone:
			if err = v.validate.StructPartialCtx(ctx, rules, "Phone"); err != nil {
				return ErrInvalidPhone
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
