package conversation

import (
	"context"
	"errors"
	"strings"

	"log/slog"

	"github.com/m3rciful/collegebot/core/logger"
	"github.com/m3rciful/collegebot/core/telegram/format"
	"github.com/m3rciful/collegebot/internal/domain"
)

// EventKind classifies inbound events.
type EventKind int

const (
	// EventText is a plain text message or button press.
	EventText EventKind = iota
	// EventDocument is a file or photo attachment.
	EventDocument
)

// Event is one inbound update from a user.
type Event struct {
	UserID int64
	Text   string
	Kind   EventKind
}

// Reply is one outbound message. Keyboard rows, when present, replace the
// user's reply keyboard.
type Reply struct {
	Text     string
	Keyboard [][]string
}

// UserStore is the engine's view of user persistence.
type UserStore interface {
	Ensure(ctx context.Context, telegramID int64) (domain.User, error)
	Get(ctx context.Context, telegramID int64) (domain.User, error)
	SetName(ctx context.Context, telegramID int64, name string) error
	SetEmail(ctx context.Context, telegramID int64, email string) error
}

// SubmissionStore serves one submission kind (complaints or stories).
type SubmissionStore interface {
	File(ctx context.Context, telegramID int64, text string) (domain.Submission, error)
	HasActive(ctx context.Context, telegramID int64) (bool, error)
	ActiveByUser(ctx context.Context, telegramID int64) ([]domain.Submission, error)
	UsersWithActive(ctx context.Context) ([]int64, error)
	ByID(ctx context.Context, id int64) (domain.Submission, error)
	Review(ctx context.Context, id int64) (domain.Submission, bool, error)
	Close(ctx context.Context, id int64) (domain.Submission, error)
}

// FAQStore is the engine's view of the FAQ list.
type FAQStore interface {
	List(ctx context.Context) ([]domain.FAQEntry, error)
	ByQuestion(ctx context.Context, question string) (domain.FAQEntry, error)
	Add(ctx context.Context, question, answer string) (domain.FAQEntry, error)
	Delete(ctx context.Context, id int64) error
}

// Answerer forwards free-text questions to the answering backend.
type Answerer interface {
	Ask(ctx context.Context, question string) (string, error)
}

// Notifier delivers best-effort out-of-band messages. Implementations must
// never block or fail the calling transition.
type Notifier interface {
	NotifyUser(userID int64, text string)
	NotifyAdmins(text string)
}

// nopNotifier is used when no notifier is wired.
type nopNotifier struct{}

func (nopNotifier) NotifyUser(int64, string) {}
func (nopNotifier) NotifyAdmins(string)      {}

const faqPageSize = 4

// Deps bundles the engine's collaborators.
type Deps struct {
	Sessions   *Sessions
	Users      UserStore
	Complaints SubmissionStore
	Stories    SubmissionStore
	FAQ        FAQStore
	Answers    Answerer
	Notifier   Notifier
	IsAdmin    func(userID int64) bool
}

// Engine picks exactly one handler per inbound event, applies it, and
// transitions the session state. Handling is sequential per user; the
// transport serializes per-chat delivery.
type Engine struct {
	sessions   *Sessions
	users      UserStore
	complaints SubmissionStore
	stories    SubmissionStore
	faq        FAQStore
	answers    Answerer
	notify     Notifier
	isAdmin    func(int64) bool
}

// NewEngine constructs the engine.
func NewEngine(d Deps) *Engine {
	if d.Sessions == nil {
		d.Sessions = NewSessions()
	}
	if d.Notifier == nil {
		d.Notifier = nopNotifier{}
	}
	if d.IsAdmin == nil {
		d.IsAdmin = func(int64) bool { return false }
	}
	return &Engine{
		sessions:   d.Sessions,
		users:      d.Users,
		complaints: d.Complaints,
		stories:    d.Stories,
		faq:        d.FAQ,
		answers:    d.Answers,
		notify:     d.Notifier,
		isAdmin:    d.IsAdmin,
	}
}

func say(text string, kb [][]string) []Reply {
	return []Reply{{Text: text, Keyboard: kb}}
}

// Process handles one inbound event and returns the replies to send, in order.
// The session always lands on a valid state tag.
func (e *Engine) Process(ctx context.Context, ev Event) ([]Reply, error) {
	sess := e.sessions.Get(ev.UserID)
	from := sess.State
	admin := e.isAdmin(ev.UserID)

	replies, err := e.dispatch(ctx, ev, &sess, admin)

	if !sess.State.Valid() {
		sess.State = StateIdle
	}
	e.sessions.Set(ev.UserID, sess)

	if sess.State != from {
		logger.Debug(ctx, "conversation", "state.transition",
			slog.Int64("user_id", ev.UserID),
			slog.String("state_from", string(from)),
			slog.String("state_to", string(sess.State)),
		)
	}
	return replies, err
}

// dispatch applies the ordered matching contract: commands and global
// navigation first, then state-scoped labels and patterns, then state free
// text, then idle fallbacks. First match wins.
func (e *Engine) dispatch(ctx context.Context, ev Event, sess *Session, admin bool) ([]Reply, error) {
	text := strings.TrimSpace(ev.Text)

	if ev.Kind == EventDocument {
		if sess.State == StateAwaitingComplaint || sess.State == StateAwaitingStory {
			return say(textAttachmentHint, nil), nil
		}
		return nil, nil
	}

	// 1. Commands and global navigation short-circuit regardless of state.
	switch text {
	case "/start":
		return e.handleStart(ctx, ev.UserID, sess, admin)
	case "/help":
		return say(textHelp, mainMenuKeyboard(admin)), nil
	case BtnExitMenu, "Меню", "Главное меню":
		*sess = Session{State: StateIdle}
		return say(textMainMenu, mainMenuKeyboard(admin)), nil
	case BtnBackAdmin:
		if admin {
			*sess = Session{State: StateAdminPanel}
			return say(textAdminPanel, adminPanelKeyboard()), nil
		}
		return nil, nil
	}

	// 2-4. State-scoped labels, patterns, and free text.
	switch sess.State {
	case StateIdle, StateSearch:
		return e.handleMain(ctx, ev.UserID, text, sess, admin)
	case StateAwaitingNameForComplaint, StateAwaitingNameForStory:
		return e.handleName(ctx, ev.UserID, text, sess)
	case StateAwaitingEmailForComplaint, StateAwaitingEmailForStory:
		return e.handleEmail(ctx, ev.UserID, text, sess)
	case StateAwaitingComplaint:
		return e.submitComplaint(ctx, ev.UserID, text, sess, admin)
	case StateAwaitingStory:
		return e.submitStory(ctx, ev.UserID, text, sess, admin)
	case StateParentCabinet:
		return e.handleParentCabinet(text, sess)
	case StateChangeName:
		return e.handleChangeName(ctx, ev.UserID, text, sess)
	case StateChangeEmail:
		return e.handleChangeEmail(ctx, ev.UserID, text, sess)
	case StateFAQBrowse:
		return e.handleFAQBrowse(ctx, text, sess, admin)
	case StateAdminPanel, StateAdminFAQ, StateAdminFAQAddQuestion,
		StateAdminFAQAddAnswer, StateAdminFAQDelete, StateAdminReviewUsers,
		StateAdminReviewList, StateAdminReviewDetail:
		if !admin {
			return nil, nil
		}
		return e.dispatchAdmin(ctx, text, sess)
	}

	return nil, nil
}

func (e *Engine) handleStart(ctx context.Context, userID int64, sess *Session, admin bool) ([]Reply, error) {
	if _, err := e.users.Ensure(ctx, userID); err != nil {
		return say(textStoreError, mainMenuKeyboard(admin)), nil
	}
	*sess = Session{State: StateIdle}
	greeting := textStart
	if admin {
		greeting = textStartAdmin
	}
	return say(greeting, mainMenuKeyboard(admin)), nil
}

// handleMain serves the main-menu label set, valid in idle and search states.
func (e *Engine) handleMain(ctx context.Context, userID int64, text string, sess *Session, admin bool) ([]Reply, error) {
	switch text {
	case BtnAbout:
		sess.State = StateIdle
		return say(textAbout, mainMenuKeyboard(admin)), nil
	case BtnAdmission:
		sess.State = StateIdle
		return say(textAdmission, mainMenuKeyboard(admin)), nil
	case BtnStudents:
		sess.State = StateIdle
		return say(textStudents, mainMenuKeyboard(admin)), nil
	case BtnContacts:
		sess.State = StateIdle
		return say(textContacts, mainMenuKeyboard(admin)), nil
	case BtnCurator:
		sess.State = StateIdle
		return say(textCurator, mainMenuKeyboard(admin)), nil
	case BtnSearch:
		sess.State = StateSearch
		return say(textSearchOn, mainMenuKeyboard(admin)), nil
	case BtnFAQ:
		return e.openFAQBrowse(ctx, sess, admin)
	case BtnComplaint:
		return e.startComplaint(ctx, userID, sess, admin)
	case BtnStories:
		return e.startStory(ctx, userID, sess)
	case BtnParent:
		return e.openParentCabinet(ctx, userID, sess)
	case BtnAdmin:
		if !admin {
			return nil, nil
		}
		*sess = Session{State: StateAdminPanel}
		return say(textAdminPanel, adminPanelKeyboard()), nil
	}

	if sess.State == StateSearch {
		return e.handleSearch(ctx, text, admin)
	}
	return e.handleIdleText(ctx, text, admin)
}

// handleSearch forwards the question to the answering backend. The session
// stays in search so the user can keep asking.
func (e *Engine) handleSearch(ctx context.Context, text string, admin bool) ([]Reply, error) {
	answer, err := e.answers.Ask(ctx, text)
	switch {
	case errors.Is(err, domain.ErrEmptyQuestion), errors.Is(err, domain.ErrEmptyAnswer):
		return say(textSearchNoAnswer, mainMenuKeyboard(admin)), nil
	case err != nil:
		return say(textSearchFailed, mainMenuKeyboard(admin)), nil
	}
	return say(answer, mainMenuKeyboard(admin)), nil
}

// handleIdleText answers free text outside any flow: verbatim FAQ match,
// then keyword quick answers, then the search hint.
func (e *Engine) handleIdleText(ctx context.Context, text string, admin bool) ([]Reply, error) {
	if entry, err := e.faq.ByQuestion(ctx, text); err == nil {
		return say("Ответ: "+entry.Answer, mainMenuKeyboard(admin)), nil
	}

	lower := strings.ToLower(text)
	for _, qr := range quickResponses {
		if strings.Contains(lower, qr.keyword) {
			return say(qr.answer, mainMenuKeyboard(admin)), nil
		}
	}
	return say(textSearchHint, mainMenuKeyboard(admin)), nil
}

// startComplaint checks the one-active-complaint rule before the
// registration gate, then routes into the capture flow.
func (e *Engine) startComplaint(ctx context.Context, userID int64, sess *Session, admin bool) ([]Reply, error) {
	has, err := e.complaints.HasActive(ctx, userID)
	if err != nil {
		return say(textStoreError, mainMenuKeyboard(admin)), nil
	}
	if has {
		sess.State = StateIdle
		return say(textPending, mainMenuKeyboard(admin)), nil
	}
	return e.enterSubmissionFlow(ctx, userID, sess, domain.KindComplaint)
}

func (e *Engine) startStory(ctx context.Context, userID int64, sess *Session) ([]Reply, error) {
	return e.enterSubmissionFlow(ctx, userID, sess, domain.KindStory)
}

// enterSubmissionFlow applies the registration gate: missing name or email
// sidetrack into the capture states, remembering the original intent.
func (e *Engine) enterSubmissionFlow(ctx context.Context, userID int64, sess *Session, kind domain.SubmissionKind) ([]Reply, error) {
	u, err := e.users.Ensure(ctx, userID)
	if err != nil {
		return say(textStoreError, mainMenuKeyboard(e.isAdmin(userID))), nil
	}

	sess.Intent = kind
	switch {
	case format.DerefString(u.Name, "") == "":
		if kind == domain.KindStory {
			sess.State = StateAwaitingNameForStory
		} else {
			sess.State = StateAwaitingNameForComplaint
		}
		return say(textAskName, exitKeyboard()), nil
	case format.DerefString(u.Email, "") == "":
		if kind == domain.KindStory {
			sess.State = StateAwaitingEmailForStory
		} else {
			sess.State = StateAwaitingEmailForComplaint
		}
		return say(textAskEmail, exitKeyboard()), nil
	}
	return e.promptSubmissionBody(sess, kind)
}

func (e *Engine) promptSubmissionBody(sess *Session, kind domain.SubmissionKind) ([]Reply, error) {
	if kind == domain.KindStory {
		sess.State = StateAwaitingStory
		return say(textAskStory, exitKeyboard()), nil
	}
	sess.State = StateAwaitingComplaint
	return say(textAskComplaint, exitKeyboard()), nil
}

func (e *Engine) handleName(ctx context.Context, userID int64, text string, sess *Session) ([]Reply, error) {
	if text == "" {
		return say(textAskName, exitKeyboard()), nil
	}
	if err := e.users.SetName(ctx, userID, text); err != nil {
		return say(textStoreError, exitKeyboard()), nil
	}

	u, err := e.users.Get(ctx, userID)
	if err != nil {
		return say(textStoreError, exitKeyboard()), nil
	}
	if format.DerefString(u.Email, "") == "" {
		if sess.State == StateAwaitingNameForStory {
			sess.State = StateAwaitingEmailForStory
		} else {
			sess.State = StateAwaitingEmailForComplaint
		}
		return say(textAskEmail, exitKeyboard()), nil
	}
	return e.promptSubmissionBody(sess, sess.Intent)
}

func (e *Engine) handleEmail(ctx context.Context, userID int64, text string, sess *Session) ([]Reply, error) {
	if !ValidEmail(text) {
		return say(textBadEmail, exitKeyboard()), nil
	}
	if err := e.users.SetEmail(ctx, userID, text); err != nil {
		return say(textStoreError, exitKeyboard()), nil
	}
	return e.promptSubmissionBody(sess, sess.Intent)
}

func (e *Engine) submitComplaint(ctx context.Context, userID int64, text string, sess *Session, admin bool) ([]Reply, error) {
	sub, err := e.complaints.File(ctx, userID, text)
	switch {
	case errors.Is(err, domain.ErrActiveSubmissionExists):
		*sess = Session{State: StateIdle}
		return say(textPending, mainMenuKeyboard(admin)), nil
	case err != nil:
		return say(textStoreError, exitKeyboard()), nil
	}

	e.notify.NotifyAdmins("Новая жалоба/предложение #" + itoa(sub.ID) + ":\n" + text)
	*sess = Session{State: StateIdle}
	return say(textComplaintDone, mainMenuKeyboard(admin)), nil
}

func (e *Engine) submitStory(ctx context.Context, userID int64, text string, sess *Session, admin bool) ([]Reply, error) {
	sub, err := e.stories.File(ctx, userID, text)
	if err != nil {
		return say(textStoreError, exitKeyboard()), nil
	}

	e.notify.NotifyAdmins("Новая история о профессии #" + itoa(sub.ID) + ":\n" + text)
	*sess = Session{State: StateIdle}
	return say(textStoryDone, mainMenuKeyboard(admin)), nil
}

func (e *Engine) openParentCabinet(ctx context.Context, userID int64, sess *Session) ([]Reply, error) {
	u, err := e.users.Ensure(ctx, userID)
	if err != nil {
		return say(textStoreError, mainMenuKeyboard(e.isAdmin(userID))), nil
	}
	sess.State = StateParentCabinet
	return say(parentCabinetText(u), parentCabinetKeyboard()), nil
}

func parentCabinetText(u domain.User) string {
	return textParentIntro +
		"\nИмя: " + format.DerefString(u.Name, "не указано") +
		"\nEmail: " + format.DerefString(u.Email, "не указан")
}

func (e *Engine) handleParentCabinet(text string, sess *Session) ([]Reply, error) {
	switch text {
	case BtnChangeName:
		sess.State = StateChangeName
		return say(textAskNewName, exitKeyboard()), nil
	case BtnChangeEmail:
		sess.State = StateChangeEmail
		return say(textAskNewEmail, exitKeyboard()), nil
	}
	return nil, nil
}

func (e *Engine) handleChangeName(ctx context.Context, userID int64, text string, sess *Session) ([]Reply, error) {
	if text == "" {
		return say(textAskNewName, exitKeyboard()), nil
	}
	if err := e.users.SetName(ctx, userID, text); err != nil {
		return say(textStoreError, exitKeyboard()), nil
	}
	return e.backToParentCabinet(ctx, userID, sess, textNameChanged)
}

func (e *Engine) handleChangeEmail(ctx context.Context, userID int64, text string, sess *Session) ([]Reply, error) {
	if !ValidEmail(text) {
		return say(textBadEmail, exitKeyboard()), nil
	}
	if err := e.users.SetEmail(ctx, userID, text); err != nil {
		return say(textStoreError, exitKeyboard()), nil
	}
	return e.backToParentCabinet(ctx, userID, sess, textEmailChanged)
}

func (e *Engine) backToParentCabinet(ctx context.Context, userID int64, sess *Session, confirmation string) ([]Reply, error) {
	u, err := e.users.Get(ctx, userID)
	if err != nil {
		return say(textStoreError, exitKeyboard()), nil
	}
	sess.State = StateParentCabinet
	return []Reply{
		{Text: confirmation},
		{Text: parentCabinetText(u), Keyboard: parentCabinetKeyboard()},
	}, nil
}

func (e *Engine) openFAQBrowse(ctx context.Context, sess *Session, admin bool) ([]Reply, error) {
	entries, err := e.faq.List(ctx)
	if err != nil {
		return say(textStoreError, mainMenuKeyboard(admin)), nil
	}
	if len(entries) == 0 {
		sess.State = StateIdle
		return say(textFAQEmpty, mainMenuKeyboard(admin)), nil
	}
	sess.State = StateFAQBrowse
	sess.Page = 0
	return say(textFAQPick, faqPageKeyboard(entries, 0)), nil
}

// handleFAQBrowse pages through entries (page size 4, clamped at both ends)
// and answers a verbatim question match.
func (e *Engine) handleFAQBrowse(ctx context.Context, text string, sess *Session, admin bool) ([]Reply, error) {
	entries, err := e.faq.List(ctx)
	if err != nil {
		return say(textStoreError, nil), nil
	}

	switch text {
	case BtnNextPage:
		if (sess.Page+1)*faqPageSize < len(entries) {
			sess.Page++
			return say(textFAQPick, faqPageKeyboard(entries, sess.Page)), nil
		}
		return nil, nil
	case BtnPrevPage:
		if sess.Page > 0 {
			sess.Page--
			return say(textFAQPick, faqPageKeyboard(entries, sess.Page)), nil
		}
		return nil, nil
	}

	for _, entry := range entries {
		if entry.Question == text {
			*sess = Session{State: StateIdle}
			return say("Ответ: "+entry.Answer, mainMenuKeyboard(admin)), nil
		}
	}
	return nil, nil
}
