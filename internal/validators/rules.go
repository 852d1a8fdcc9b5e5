// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators provides the field rules of the catalog entities on
// top of github.com/jellydator/validation.
//
// Rules run on values that were already coerced to their Go type (string,
// int64, float64). Each constructor returns [Rules] whose failures all
// report the same message, so a field's error reads the same whichever
// check tripped.
//
// jellydator's In, Min and Length rules skip empty values, so constructors
// that must reject the zero value pair them with Required.
package validators

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/jellydator/validation"
)

// Messages shared by the entity schemas.
const (
	MsgNonEmptyString   = "must be a non-empty string"
	MsgStatus           = "must be 1 or 2"
	MsgPositiveInteger  = "must be a positive integer"
	MsgNonNegativeInt   = "must be a non-negative integer"
	MsgNumber           = "must be a number"
	MsgString           = "must be a string"
	MsgEmail            = "must be a valid email address"
	MsgPasswordLength   = "must be at least 6 characters"
	MsgPasswordTooLong  = "must be at most 72 bytes"
	MsgActiveFlag       = "must be 0 or 1"
	MsgCreateRoles      = "must be one of operator, admin, vendor, client"
	MsgUpdateRoles      = "must be client or admin"
	MinPasswordLength   = 6
	MaxPasswordByteSize = 72
)

// Rules is an ordered list of jellydator rules applied to a single value.
type Rules []validation.Rule

// emailRegex is a basic email validation pattern
var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// NonEmptyString rejects "" (callers trim before validating).
func NonEmptyString() Rules {
	return Rules{validation.Required.Error(MsgNonEmptyString)}
}

// OneOfInt accepts exactly the listed integers. Zero is rejected unless it
// is listed.
func OneOfInt(message string, allowed ...int64) Rules {
	values := make([]any, 0, len(allowed))
	zeroAllowed := false
	for _, a := range allowed {
		values = append(values, a)
		if a == 0 {
			zeroAllowed = true
		}
	}

	rules := Rules{}
	if !zeroAllowed {
		rules = append(rules, validation.Required.Error(message))
	}
	return append(rules, validation.In(values...).Error(message))
}

// OneOfString accepts exactly the listed strings; "" is always rejected.
func OneOfString(message string, allowed ...string) Rules {
	values := make([]any, 0, len(allowed))
	for _, a := range allowed {
		values = append(values, a)
	}

	return Rules{
		validation.Required.Error(message),
		validation.In(values...).Error(message),
	}
}

// PositiveInt accepts integers >= 1.
func PositiveInt() Rules {
	return Rules{
		validation.Required.Error(MsgPositiveInteger),
		validation.Min(int64(1)).Error(MsgPositiveInteger),
	}
}

// NonNegativeInt accepts integers >= 0.
func NonNegativeInt() Rules {
	return Rules{validation.Min(int64(0)).Error(MsgNonNegativeInt)}
}

// Email accepts a basic address@domain.tld shape.
func Email() Rules {
	return Rules{
		validation.Required.Error(MsgEmail),
		validation.NewStringRuleWithError(
			func(s string) bool {
				return emailRegex.MatchString(s)
			},
			validation.NewError("validation_email_format", MsgEmail),
		),
	}
}

// Password accepts strings of at least [MinPasswordLength] characters that
// bcrypt can hash in full.
func Password() Rules {
	return Rules{
		validation.Required.Error(MsgPasswordLength),
		validation.RuneLength(MinPasswordLength, 0).Error(MsgPasswordLength),
		validation.By(func(value any) error {
			s, _ := value.(string)
			if len(s) > MaxPasswordByteSize {
				return validation.NewError("validation_password_max_bytes", MsgPasswordTooLong)
			}
			return nil
		}),
	}
}

// NotBlank reports whether s has non-whitespace content.
func NotBlank(s string) bool {
	return strings.TrimSpace(s) != ""
}

// Check applies rules to value and returns a [*RuleError] for the first
// failing rule. Misconfigured rules surface as plain errors.
func Check(value any, rules Rules) error {
	err := validation.Validate(value, rules...)
	if err == nil {
		return nil
	}

	var internal validation.InternalError
	if errors.As(err, &internal) {
		return fmt.Errorf("error applying validation rules: %w", err)
	}

	var ruleErr validation.Error
	if errors.As(err, &ruleErr) {
		return &RuleError{Message: ruleErr.Message()}
	}

	return &RuleError{Message: err.Error()}
}
