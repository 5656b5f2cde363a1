package conversation

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidEmail(t *testing.T) {
	valid := []string{
		"a@b.co",
		"ivan.petrov@example.com",
		"user+tag@sub.domain.org",
		"User_99@college.edu",
	}
	for _, s := range valid {
		require.True(t, ValidEmail(s), "expected valid: %s", s)
	}

	invalid := []string{
		"",
		"not-an-email",
		"a@b",
		"@example.com",
		"user@.com",
		"user@域.рф",
		"user example@mail.ru",
	}
	for _, s := range invalid {
		require.False(t, ValidEmail(s), "expected invalid: %s", s)
	}
}
