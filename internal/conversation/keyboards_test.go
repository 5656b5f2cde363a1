package conversation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/collegebot/internal/domain"
)

func TestMainMenuKeyboardAdminRow(t *testing.T) {
	require.False(t, hasButton(mainMenuKeyboard(false), BtnAdmin))
	require.True(t, hasButton(mainMenuKeyboard(true), BtnAdmin))
}

func TestFAQPageKeyboardNavClamping(t *testing.T) {
	entries := make([]domain.FAQEntry, 7)
	for i := range entries {
		entries[i] = domain.FAQEntry{ID: int64(i + 1), Question: "q"}
	}

	first := faqPageKeyboard(entries, 0)
	require.True(t, hasButton(first, BtnNextPage))
	require.False(t, hasButton(first, BtnPrevPage))

	last := faqPageKeyboard(entries, 1)
	require.True(t, hasButton(last, BtnPrevPage))
	require.False(t, hasButton(last, BtnNextPage))
	require.True(t, hasButton(last, BtnExitMenu))
}

func TestFAQPageKeyboardSinglePageHasNoNav(t *testing.T) {
	entries := []domain.FAQEntry{{ID: 1, Question: "q"}}
	kb := faqPageKeyboard(entries, 0)
	require.False(t, hasButton(kb, BtnNextPage))
	require.False(t, hasButton(kb, BtnPrevPage))
}
