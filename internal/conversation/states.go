// Package conversation implements the per-user conversation state machine:
// ordered dispatch of commands, button labels, patterns, and free text
// against the session's current state.
package conversation

// StateTag identifies which step of a multi-turn flow a user is in.
type StateTag string

const (
	StateIdle   StateTag = "idle"
	StateSearch StateTag = "search"

	StateAwaitingNameForComplaint  StateTag = "awaiting_name_for_complaint"
	StateAwaitingEmailForComplaint StateTag = "awaiting_email_for_complaint"
	StateAwaitingComplaint         StateTag = "awaiting_complaint"
	StateAwaitingNameForStory      StateTag = "awaiting_name_for_profession"
	StateAwaitingEmailForStory     StateTag = "awaiting_email_for_profession"
	StateAwaitingStory             StateTag = "awaiting_profession_story"

	StateChangeName    StateTag = "change_name"
	StateChangeEmail   StateTag = "change_email"
	StateParentCabinet StateTag = "parent_cabinet"

	StateFAQBrowse StateTag = "faq_browse"

	StateAdminPanel          StateTag = "admin_panel"
	StateAdminFAQ            StateTag = "admin_faq"
	StateAdminFAQAddQuestion StateTag = "admin_faq_add_question"
	StateAdminFAQAddAnswer   StateTag = "admin_faq_add_answer"
	StateAdminFAQDelete      StateTag = "admin_faq_delete"
	StateAdminReviewUsers    StateTag = "admin_review_users"
	StateAdminReviewList     StateTag = "admin_review_list"
	StateAdminReviewDetail   StateTag = "admin_review_detail"
)

var validStates = map[StateTag]struct{}{
	StateIdle:                      {},
	StateSearch:                    {},
	StateAwaitingNameForComplaint:  {},
	StateAwaitingEmailForComplaint: {},
	StateAwaitingComplaint:         {},
	StateAwaitingNameForStory:      {},
	StateAwaitingEmailForStory:     {},
	StateAwaitingStory:             {},
	StateChangeName:                {},
	StateChangeEmail:               {},
	StateParentCabinet:             {},
	StateFAQBrowse:                 {},
	StateAdminPanel:                {},
	StateAdminFAQ:                  {},
	StateAdminFAQAddQuestion:       {},
	StateAdminFAQAddAnswer:         {},
	StateAdminFAQDelete:            {},
	StateAdminReviewUsers:          {},
	StateAdminReviewList:           {},
	StateAdminReviewDetail:         {},
}

// Valid reports whether the tag belongs to the enumerated state set.
func (s StateTag) Valid() bool {
	_, ok := validStates[s]
	return ok
}
