// Package domain holds the persistent entities of the college bot and the
// sentinel errors shared by storage and services.
package domain

import "time"

// Status tracks the review lifecycle of a user submission.
type Status string

const (
	StatusNew      Status = "new"
	StatusReviewed Status = "reviewed"
	StatusClosed   Status = "closed"
)

// Active reports whether the submission still requires admin attention.
func (s Status) Active() bool {
	return s == StatusNew || s == StatusReviewed
}

// SubmissionKind distinguishes the two user submission flows that share a shape.
type SubmissionKind string

const (
	KindComplaint SubmissionKind = "complaint"
	KindStory     SubmissionKind = "story"
)

// User is a Telegram user known to the bot. Name and email stay nil until
// captured by the registration gate.
type User struct {
	TelegramID int64     `db:"telegram_id"`
	Name       *string   `db:"name"`
	Email      *string   `db:"email"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

// Submission is a complaint or a profession story filed by a user.
// Both kinds share the same columns and lifecycle.
type Submission struct {
	ID         int64      `db:"id"`
	TelegramID int64      `db:"telegram_id"`
	Text       string     `db:"text"`
	Status     Status     `db:"status"`
	CreatedAt  time.Time  `db:"created_at"`
	ReviewedAt *time.Time `db:"reviewed_at"`
	ClosedAt   *time.Time `db:"closed_at"`
}

// FAQEntry is an admin-managed question/answer pair matched verbatim
// against incoming text.
type FAQEntry struct {
	ID        int64     `db:"id"`
	Question  string    `db:"question"`
	Answer    string    `db:"answer"`
	CreatedAt time.Time `db:"created_at"`
}
