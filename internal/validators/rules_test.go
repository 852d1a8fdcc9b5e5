package validators

import (
	"errors"
	"strings"
	"testing"

	"github.com/jellydator/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertRule(t *testing.T, rules Rules, value any, wantMsg string) {
	t.Helper()
	err := Check(value, rules)
	if wantMsg == "" {
		assert.NoError(t, err, "value %#v", value)
		return
	}

	var ruleErr *RuleError
	require.ErrorAs(t, err, &ruleErr, "value %#v", value)
	assert.Equal(t, wantMsg, ruleErr.Message)
	assert.ErrorIs(t, err, ErrRuleViolated)
}

func TestNonEmptyString(t *testing.T) {
	rules := NonEmptyString()
	assertRule(t, rules, "Action", "")
	assertRule(t, rules, "", MsgNonEmptyString)
}

func TestOneOfInt_Status(t *testing.T) {
	rules := OneOfInt(MsgStatus, 1, 2)

	tests := []struct {
		value int64
		want  string
	}{
		{1, ""},
		{2, ""},
		{0, MsgStatus},
		{3, MsgStatus},
		{-1, MsgStatus},
	}
	for _, tt := range tests {
		assertRule(t, rules, tt.value, tt.want)
	}
}

func TestOneOfInt_ZeroAllowed(t *testing.T) {
	rules := OneOfInt(MsgActiveFlag, 0, 1)
	assertRule(t, rules, int64(0), "")
	assertRule(t, rules, int64(1), "")
	assertRule(t, rules, int64(2), MsgActiveFlag)
}

func TestOneOfString_Roles(t *testing.T) {
	create := OneOfString(MsgCreateRoles, "operator", "admin", "vendor", "client")
	update := OneOfString(MsgUpdateRoles, "client", "admin")

	assertRule(t, create, "vendor", "")
	assertRule(t, create, "root", MsgCreateRoles)
	assertRule(t, create, "", MsgCreateRoles)

	assertRule(t, update, "admin", "")
	assertRule(t, update, "vendor", MsgUpdateRoles)
	assertRule(t, update, "operator", MsgUpdateRoles)
}

func TestPositiveInt(t *testing.T) {
	rules := PositiveInt()
	assertRule(t, rules, int64(1), "")
	assertRule(t, rules, int64(42), "")
	assertRule(t, rules, int64(0), MsgPositiveInteger)
	assertRule(t, rules, int64(-3), MsgPositiveInteger)
}

func TestNonNegativeInt(t *testing.T) {
	rules := NonNegativeInt()
	assertRule(t, rules, int64(0), "")
	assertRule(t, rules, int64(10), "")
	assertRule(t, rules, int64(-1), MsgNonNegativeInt)
}

func TestEmail(t *testing.T) {
	rules := Email()
	assertRule(t, rules, "ann@shop.test", "")
	assertRule(t, rules, "first.last+tag@sub.example.org", "")
	assertRule(t, rules, "not-an-email", MsgEmail)
	assertRule(t, rules, "a@b", MsgEmail)
	assertRule(t, rules, "", MsgEmail)
}

func TestPassword(t *testing.T) {
	rules := Password()
	assertRule(t, rules, "secret", "")
	assertRule(t, rules, "12345", MsgPasswordLength)
	assertRule(t, rules, "", MsgPasswordLength)
	assertRule(t, rules, strings.Repeat("x", 72), "")
	assertRule(t, rules, strings.Repeat("x", 73), MsgPasswordTooLong)
}

func TestNotBlank(t *testing.T) {
	assert.True(t, NotBlank(" a "))
	assert.False(t, NotBlank(" \t\n"))
}

func TestCheck_InternalError(t *testing.T) {
	broken := Rules{validation.By(func(any) error {
		return validation.NewInternalError(errors.New("boom"))
	})}

	err := Check("x", broken)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrRuleViolated)
}
