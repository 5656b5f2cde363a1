package domain

import "errors"

var (
	// ErrUserNotFound is returned when a Telegram user has no stored record.
	ErrUserNotFound = errors.New("user not found")
	// ErrSubmissionNotFound is returned for a missing or stale submission id.
	ErrSubmissionNotFound = errors.New("submission not found")
	// ErrActiveSubmissionExists signals the one-active-complaint rule.
	ErrActiveSubmissionExists = errors.New("active submission already exists")
	// ErrFAQNotFound is returned when a FAQ entry id does not exist.
	ErrFAQNotFound = errors.New("faq entry not found")

	// ErrEmptyQuestion rejects blank questions before any network call.
	ErrEmptyQuestion = errors.New("empty question")
	// ErrEmptyAnswer marks a blank upstream answer, distinct from transport failures.
	ErrEmptyAnswer = errors.New("empty answer from upstream")
)
