package conversation

import (
	"context"
	"errors"
	"regexp"
	"strconv"

	"github.com/m3rciful/collegebot/internal/domain"
)

var (
	userRowRe       = regexp.MustCompile(`^Пользователь (\d+)$`)
	submissionRowRe = regexp.MustCompile(`^(?:Жалоба|История) #(\d+)$`)
)

func itoa(v int64) string {
	return strconv.FormatInt(v, 10)
}

func (e *Engine) reviewStore(kind domain.SubmissionKind) SubmissionStore {
	if kind == domain.KindStory {
		return e.stories
	}
	return e.complaints
}

func reviewLabel(kind domain.SubmissionKind) string {
	if kind == domain.KindStory {
		return "История"
	}
	return "Жалоба"
}

func filerReviewedText(kind domain.SubmissionKind) string {
	if kind == domain.KindStory {
		return textFilerStoryReviewed
	}
	return textFilerReviewed
}

func filerClosedText(kind domain.SubmissionKind) string {
	if kind == domain.KindStory {
		return textFilerStoryClosed
	}
	return textFilerClosed
}

func statusLabel(s domain.Status) string {
	switch s {
	case domain.StatusNew:
		return "новая"
	case domain.StatusReviewed:
		return "рассмотрена"
	case domain.StatusClosed:
		return "закрыта"
	}
	return string(s)
}

// dispatchAdmin handles all admin-panel states. Callers verify the admin
// allow-list before entry; non-admin events never reach here.
func (e *Engine) dispatchAdmin(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	switch sess.State {
	case StateAdminPanel:
		return e.handleAdminPanel(ctx, text, sess)
	case StateAdminReviewUsers:
		return e.handleReviewUsers(ctx, text, sess)
	case StateAdminReviewList:
		return e.handleReviewList(ctx, text, sess)
	case StateAdminReviewDetail:
		return e.handleReviewDetail(ctx, text, sess)
	case StateAdminFAQ:
		return e.handleAdminFAQ(ctx, text, sess)
	case StateAdminFAQAddQuestion:
		return e.handleFAQAddQuestion(text, sess)
	case StateAdminFAQAddAnswer:
		return e.handleFAQAddAnswer(ctx, text, sess)
	case StateAdminFAQDelete:
		return e.handleFAQDelete(ctx, text, sess)
	}
	return nil, nil
}

func (e *Engine) handleAdminPanel(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	switch text {
	case BtnAdminComplaints:
		return e.openReviewUsers(ctx, sess, domain.KindComplaint)
	case BtnAdminStories:
		return e.openReviewUsers(ctx, sess, domain.KindStory)
	case BtnAdminFAQ:
		return e.openAdminFAQ(ctx, sess)
	}
	return nil, nil
}

// openReviewUsers lists the users who still have active submissions of the
// selected kind.
func (e *Engine) openReviewUsers(ctx context.Context, sess *Session, kind domain.SubmissionKind) ([]Reply, error) {
	ids, err := e.reviewStore(kind).UsersWithActive(ctx)
	if err != nil {
		return say(textStoreError, adminPanelKeyboard()), nil
	}
	if len(ids) == 0 {
		sess.State = StateAdminPanel
		return say(textNoActive, adminPanelKeyboard()), nil
	}

	sess.ReviewKind = kind
	sess.State = StateAdminReviewUsers
	sess.ViewUserID = 0
	sess.ViewID = 0

	rows := make([][]string, 0, len(ids)+2)
	for _, id := range ids {
		rows = append(rows, []string{"Пользователь " + itoa(id)})
	}
	rows = append(rows, []string{BtnBackAdmin}, []string{BtnExitMenu})
	return say(textPickUser, rows), nil
}

func (e *Engine) handleReviewUsers(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	m := userRowRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil, nil
	}
	sess.ViewUserID = id
	return e.renderReviewList(ctx, sess)
}

// renderReviewList shows the selected user's active submissions as a chunked
// report plus selection rows. An emptied list falls back to the users view.
func (e *Engine) renderReviewList(ctx context.Context, sess *Session) ([]Reply, error) {
	kind := sess.ReviewKind
	subs, err := e.reviewStore(kind).ActiveByUser(ctx, sess.ViewUserID)
	if err != nil {
		return say(textStoreError, backAdminKeyboard()), nil
	}
	if len(subs) == 0 {
		replies, rerr := e.openReviewUsers(ctx, sess, kind)
		return append(say(textNoActive, nil), replies...), rerr
	}

	sess.State = StateAdminReviewList
	sess.ViewID = 0

	label := reviewLabel(kind)
	records := make([]string, 0, len(subs))
	for _, s := range subs {
		records = append(records,
			label+" #"+itoa(s.ID)+" ("+statusLabel(s.Status)+") от "+s.CreatedAt.Format("02.01.2006 15:04")+":\n"+s.Text)
	}

	rows := make([][]string, 0, len(subs)+2)
	for _, s := range subs {
		rows = append(rows, []string{label + " #" + itoa(s.ID)})
	}
	rows = append(rows, []string{BtnBackAdmin}, []string{BtnExitMenu})

	chunks := SplitRecords(records, maxChunkLen)
	replies := make([]Reply, 0, len(chunks)+1)
	for _, c := range chunks {
		replies = append(replies, Reply{Text: c})
	}
	replies = append(replies, Reply{Text: label + " для просмотра:", Keyboard: rows})
	return replies, nil
}

// handleReviewList opens a submission detail. The first open advances
// new submissions to reviewed and best-effort-notifies the filer.
func (e *Engine) handleReviewList(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	m := submissionRowRe.FindStringSubmatch(text)
	if m == nil {
		return nil, nil
	}
	id, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return nil, nil
	}

	kind := sess.ReviewKind
	sub, changed, rerr := e.reviewStore(kind).Review(ctx, id)
	if errors.Is(rerr, domain.ErrSubmissionNotFound) {
		replies, lerr := e.renderReviewList(ctx, sess)
		return append(say(textNotFoundOrClosed, nil), replies...), lerr
	}
	if rerr != nil {
		return say(textStoreError, nil), nil
	}
	if !sub.Status.Active() {
		replies, lerr := e.renderReviewList(ctx, sess)
		return append(say(textNotFoundOrClosed, nil), replies...), lerr
	}
	if changed {
		e.notify.NotifyUser(sub.TelegramID, filerReviewedText(kind))
	}

	sess.State = StateAdminReviewDetail
	sess.ViewID = sub.ID

	label := reviewLabel(kind)
	detail := label + " #" + itoa(sub.ID) +
		"\nПользователь: " + itoa(sub.TelegramID) +
		"\nСтатус: " + statusLabel(sub.Status) +
		"\nПодана: " + sub.CreatedAt.Format("02.01.2006 15:04") +
		"\n\n" + sub.Text
	kb := [][]string{{BtnClose}, {BtnBackList}, {BtnBackAdmin}, {BtnExitMenu}}
	return say(detail, kb), nil
}

func (e *Engine) handleReviewDetail(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	switch text {
	case BtnBackList:
		return e.renderReviewList(ctx, sess)
	case BtnClose:
		kind := sess.ReviewKind
		sub, err := e.reviewStore(kind).Close(ctx, sess.ViewID)
		if errors.Is(err, domain.ErrSubmissionNotFound) {
			replies, lerr := e.renderReviewList(ctx, sess)
			return append(say(textNotFoundOrClosed, nil), replies...), lerr
		}
		if err != nil {
			return say(textStoreError, nil), nil
		}
		e.notify.NotifyUser(sub.TelegramID, filerClosedText(kind))

		replies, lerr := e.renderReviewList(ctx, sess)
		return append(say(textClosed, nil), replies...), lerr
	}
	return nil, nil
}

func (e *Engine) openAdminFAQ(ctx context.Context, sess *Session) ([]Reply, error) {
	entries, err := e.faq.List(ctx)
	if err != nil {
		return say(textStoreError, adminPanelKeyboard()), nil
	}

	sess.State = StateAdminFAQ
	sess.FAQDraft = ""

	if len(entries) == 0 {
		return say(textFAQAdmin+"\n\n"+textFAQEmpty, adminFAQKeyboard()), nil
	}

	records := make([]string, 0, len(entries))
	for _, entry := range entries {
		records = append(records, itoa(entry.ID)+". "+entry.Question+"\n"+entry.Answer)
	}
	chunks := SplitRecords(records, maxChunkLen)
	replies := []Reply{{Text: textFAQAdmin}}
	for i, c := range chunks {
		r := Reply{Text: c}
		if i == len(chunks)-1 {
			r.Keyboard = adminFAQKeyboard()
		}
		replies = append(replies, r)
	}
	return replies, nil
}

func (e *Engine) handleAdminFAQ(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	switch text {
	case BtnFAQAdd:
		sess.State = StateAdminFAQAddQuestion
		return say(textFAQAskQuestion, backAdminKeyboard()), nil
	case BtnFAQDelete:
		sess.State = StateAdminFAQDelete
		return say(textFAQAskDeleteID, backAdminKeyboard()), nil
	}
	return nil, nil
}

func (e *Engine) handleFAQAddQuestion(text string, sess *Session) ([]Reply, error) {
	if text == "" {
		return say(textFAQAskQuestion, backAdminKeyboard()), nil
	}
	sess.FAQDraft = text
	sess.State = StateAdminFAQAddAnswer
	return say(textFAQAskAnswer, backAdminKeyboard()), nil
}

func (e *Engine) handleFAQAddAnswer(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	if text == "" {
		return say(textFAQAskAnswer, backAdminKeyboard()), nil
	}
	if _, err := e.faq.Add(ctx, sess.FAQDraft, text); err != nil {
		if errors.Is(err, domain.ErrEmptyQuestion) || errors.Is(err, domain.ErrEmptyAnswer) {
			return say(textFAQAskAnswer, backAdminKeyboard()), nil
		}
		return say(textStoreError, backAdminKeyboard()), nil
	}

	sess.FAQDraft = ""
	replies, err := e.openAdminFAQ(ctx, sess)
	return append(say(textFAQAdded, nil), replies...), err
}

func (e *Engine) handleFAQDelete(ctx context.Context, text string, sess *Session) ([]Reply, error) {
	id, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return say(textFAQDeleteNotFnd, backAdminKeyboard()), nil
	}
	if err := e.faq.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrFAQNotFound) {
			return say(textFAQDeleteNotFnd, backAdminKeyboard()), nil
		}
		return say(textStoreError, backAdminKeyboard()), nil
	}

	replies, rerr := e.openAdminFAQ(ctx, sess)
	return append(say(textFAQDeleted, nil), replies...), rerr
}
