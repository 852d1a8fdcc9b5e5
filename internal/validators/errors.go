package validators

import "errors"

var (
	// ErrRuleViolated is wrapped by every [RuleError].
	ErrRuleViolated = errors.New("validation rule violated")
)

// RuleError carries the human-readable message of the first rule a value
// failed, e.g. "must be 1 or 2".
type RuleError struct {
	Message string
}

func (e *RuleError) Error() string {
	return e.Message
}

func (e *RuleError) Unwrap() error {
	return ErrRuleViolated
}
