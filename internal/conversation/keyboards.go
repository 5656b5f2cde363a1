package conversation

import "github.com/m3rciful/collegebot/internal/domain"

// Keyboards are derived from state on every reply, never cached across turns.

func mainMenuKeyboard(isAdmin bool) [][]string {
	rows := [][]string{
		{BtnAbout, BtnAdmission},
		{BtnStudents, BtnContacts},
		{BtnSearch},
		{BtnFAQ, BtnComplaint},
		{BtnStories},
		{BtnParent, BtnCurator},
	}
	if isAdmin {
		rows = append(rows, []string{BtnAdmin})
	}
	return rows
}

func adminPanelKeyboard() [][]string {
	return [][]string{
		{BtnAdminComplaints, BtnAdminStories},
		{BtnAdminFAQ},
		{BtnExitMenu},
	}
}

func adminFAQKeyboard() [][]string {
	return [][]string{
		{BtnFAQAdd, BtnFAQDelete},
		{BtnBackAdmin},
		{BtnExitMenu},
	}
}

func parentCabinetKeyboard() [][]string {
	return [][]string{
		{BtnChangeName, BtnChangeEmail},
		{BtnExitMenu},
	}
}

func exitKeyboard() [][]string {
	return [][]string{{BtnExitMenu}}
}

func backAdminKeyboard() [][]string {
	return [][]string{{BtnBackAdmin}, {BtnExitMenu}}
}

// faqPageKeyboard lists one page of questions plus clamped navigation.
func faqPageKeyboard(entries []domain.FAQEntry, page int) [][]string {
	start := page * faqPageSize
	end := start + faqPageSize
	if start > len(entries) {
		start = len(entries)
	}
	if end > len(entries) {
		end = len(entries)
	}

	var rows [][]string
	for _, e := range entries[start:end] {
		rows = append(rows, []string{e.Question})
	}

	var nav []string
	if page > 0 {
		nav = append(nav, BtnPrevPage)
	}
	if end < len(entries) {
		nav = append(nav, BtnNextPage)
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}
	rows = append(rows, []string{BtnExitMenu})
	return rows
}
