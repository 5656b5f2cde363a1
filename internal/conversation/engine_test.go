package conversation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/m3rciful/collegebot/internal/domain"
)

const (
	testUser  int64 = 100
	testAdmin int64 = 900
)

func strPtr(s string) *string { return &s }

type fakeUsers struct {
	users   map[int64]*domain.User
	failAll bool
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{users: make(map[int64]*domain.User)}
}

func (f *fakeUsers) Ensure(ctx context.Context, id int64) (domain.User, error) {
	if f.failAll {
		return domain.User{}, errors.New("store down")
	}
	if u, ok := f.users[id]; ok {
		return *u, nil
	}
	u := &domain.User{TelegramID: id, CreatedAt: time.Now()}
	f.users[id] = u
	return *u, nil
}

func (f *fakeUsers) Get(ctx context.Context, id int64) (domain.User, error) {
	if f.failAll {
		return domain.User{}, errors.New("store down")
	}
	if u, ok := f.users[id]; ok {
		return *u, nil
	}
	return domain.User{}, domain.ErrUserNotFound
}

func (f *fakeUsers) SetName(ctx context.Context, id int64, name string) error {
	if f.failAll {
		return errors.New("store down")
	}
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Name = strPtr(name)
	return nil
}

func (f *fakeUsers) SetEmail(ctx context.Context, id int64, email string) error {
	if f.failAll {
		return errors.New("store down")
	}
	u, ok := f.users[id]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.Email = strPtr(email)
	return nil
}

type fakeSubs struct {
	subs          map[int64]*domain.Submission
	nextID        int64
	enforceSingle bool
	failAll       bool
}

func newFakeSubs(enforceSingle bool) *fakeSubs {
	return &fakeSubs{subs: make(map[int64]*domain.Submission), enforceSingle: enforceSingle}
}

func (f *fakeSubs) File(ctx context.Context, id int64, text string) (domain.Submission, error) {
	if f.failAll {
		return domain.Submission{}, errors.New("store down")
	}
	if f.enforceSingle {
		for _, s := range f.subs {
			if s.TelegramID == id && s.Status.Active() {
				return domain.Submission{}, domain.ErrActiveSubmissionExists
			}
		}
	}
	f.nextID++
	s := &domain.Submission{
		ID:         f.nextID,
		TelegramID: id,
		Text:       text,
		Status:     domain.StatusNew,
		CreatedAt:  time.Now(),
	}
	f.subs[s.ID] = s
	return *s, nil
}

func (f *fakeSubs) HasActive(ctx context.Context, id int64) (bool, error) {
	if f.failAll {
		return false, errors.New("store down")
	}
	for _, s := range f.subs {
		if s.TelegramID == id && s.Status.Active() {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeSubs) ActiveByUser(ctx context.Context, id int64) ([]domain.Submission, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	var out []domain.Submission
	for sid := int64(1); sid <= f.nextID; sid++ {
		s, ok := f.subs[sid]
		if ok && s.TelegramID == id && s.Status.Active() {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (f *fakeSubs) UsersWithActive(ctx context.Context) ([]int64, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	seen := make(map[int64]bool)
	var ids []int64
	for sid := int64(1); sid <= f.nextID; sid++ {
		s, ok := f.subs[sid]
		if ok && s.Status.Active() && !seen[s.TelegramID] {
			seen[s.TelegramID] = true
			ids = append(ids, s.TelegramID)
		}
	}
	return ids, nil
}

func (f *fakeSubs) ByID(ctx context.Context, id int64) (domain.Submission, error) {
	if s, ok := f.subs[id]; ok {
		return *s, nil
	}
	return domain.Submission{}, domain.ErrSubmissionNotFound
}

func (f *fakeSubs) Review(ctx context.Context, id int64) (domain.Submission, bool, error) {
	s, ok := f.subs[id]
	if !ok {
		return domain.Submission{}, false, domain.ErrSubmissionNotFound
	}
	if s.Status != domain.StatusNew {
		return *s, false, nil
	}
	now := time.Now()
	s.Status = domain.StatusReviewed
	s.ReviewedAt = &now
	return *s, true, nil
}

func (f *fakeSubs) Close(ctx context.Context, id int64) (domain.Submission, error) {
	s, ok := f.subs[id]
	if !ok || s.Status == domain.StatusClosed {
		return domain.Submission{}, domain.ErrSubmissionNotFound
	}
	now := time.Now()
	s.Status = domain.StatusClosed
	s.ClosedAt = &now
	return *s, nil
}

type fakeFAQ struct {
	entries []domain.FAQEntry
	nextID  int64
	failAll bool
}

func (f *fakeFAQ) List(ctx context.Context) ([]domain.FAQEntry, error) {
	if f.failAll {
		return nil, errors.New("store down")
	}
	return append([]domain.FAQEntry(nil), f.entries...), nil
}

func (f *fakeFAQ) ByQuestion(ctx context.Context, question string) (domain.FAQEntry, error) {
	if f.failAll {
		return domain.FAQEntry{}, errors.New("store down")
	}
	for _, e := range f.entries {
		if e.Question == question {
			return e, nil
		}
	}
	return domain.FAQEntry{}, domain.ErrFAQNotFound
}

func (f *fakeFAQ) Add(ctx context.Context, question, answer string) (domain.FAQEntry, error) {
	if f.failAll {
		return domain.FAQEntry{}, errors.New("store down")
	}
	f.nextID++
	e := domain.FAQEntry{ID: f.nextID, Question: question, Answer: answer, CreatedAt: time.Now()}
	f.entries = append(f.entries, e)
	return e, nil
}

func (f *fakeFAQ) Delete(ctx context.Context, id int64) error {
	if f.failAll {
		return errors.New("store down")
	}
	for i, e := range f.entries {
		if e.ID == id {
			f.entries = append(f.entries[:i], f.entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrFAQNotFound
}

type fakeAnswerer struct {
	answer string
	err    error
	asked  []string
}

func (f *fakeAnswerer) Ask(ctx context.Context, question string) (string, error) {
	f.asked = append(f.asked, question)
	if f.err != nil {
		return "", f.err
	}
	return f.answer, nil
}

type fakeNotifier struct {
	userMsgs  map[int64][]string
	adminMsgs []string
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{userMsgs: make(map[int64][]string)}
}

func (f *fakeNotifier) NotifyUser(id int64, text string) {
	f.userMsgs[id] = append(f.userMsgs[id], text)
}

func (f *fakeNotifier) NotifyAdmins(text string) {
	f.adminMsgs = append(f.adminMsgs, text)
}

type fixture struct {
	engine     *Engine
	sessions   *Sessions
	users      *fakeUsers
	complaints *fakeSubs
	stories    *fakeSubs
	faq        *fakeFAQ
	answers    *fakeAnswerer
	notifier   *fakeNotifier
}

func newFixture() *fixture {
	f := &fixture{
		sessions:   NewSessions(),
		users:      newFakeUsers(),
		complaints: newFakeSubs(true),
		stories:    newFakeSubs(false),
		faq:        &fakeFAQ{},
		answers:    &fakeAnswerer{answer: "ответ из базы знаний"},
		notifier:   newFakeNotifier(),
	}
	f.engine = NewEngine(Deps{
		Sessions:   f.sessions,
		Users:      f.users,
		Complaints: f.complaints,
		Stories:    f.stories,
		FAQ:        f.faq,
		Answers:    f.answers,
		Notifier:   f.notifier,
		IsAdmin:    func(id int64) bool { return id == testAdmin },
	})
	return f
}

func (f *fixture) register(id int64, name, email string) {
	f.users.users[id] = &domain.User{
		TelegramID: id,
		Name:       strPtr(name),
		Email:      strPtr(email),
	}
}

func (f *fixture) send(t *testing.T, id int64, text string) []Reply {
	t.Helper()
	replies, err := f.engine.Process(context.Background(), Event{UserID: id, Text: text})
	require.NoError(t, err)
	return replies
}

func (f *fixture) state(id int64) StateTag {
	return f.sessions.Get(id).State
}

func hasButton(kb [][]string, label string) bool {
	for _, row := range kb {
		for _, b := range row {
			if b == label {
				return true
			}
		}
	}
	return false
}

func TestStartShowsMainMenu(t *testing.T) {
	f := newFixture()

	replies := f.send(t, testUser, "/start")
	require.Len(t, replies, 1)
	require.Equal(t, textStart, replies[0].Text)
	require.True(t, hasButton(replies[0].Keyboard, BtnSearch))
	require.False(t, hasButton(replies[0].Keyboard, BtnAdmin))
	require.Equal(t, StateIdle, f.state(testUser))

	_, ok := f.users.users[testUser]
	require.True(t, ok, "start must create the user record")
}

func TestStartAdminSeesAdminButton(t *testing.T) {
	f := newFixture()

	replies := f.send(t, testAdmin, "/start")
	require.Len(t, replies, 1)
	require.Equal(t, textStartAdmin, replies[0].Text)
	require.True(t, hasButton(replies[0].Keyboard, BtnAdmin))
}

func TestInfoButtonsResetToIdle(t *testing.T) {
	f := newFixture()
	f.send(t, testUser, BtnSearch)
	require.Equal(t, StateSearch, f.state(testUser))

	replies := f.send(t, testUser, BtnAbout)
	require.Len(t, replies, 1)
	require.Equal(t, textAbout, replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))
}

func TestSearchFlow(t *testing.T) {
	f := newFixture()

	replies := f.send(t, testUser, BtnSearch)
	require.Equal(t, textSearchOn, replies[0].Text)
	require.Equal(t, StateSearch, f.state(testUser))

	replies = f.send(t, testUser, "Когда начинаются занятия?")
	require.Equal(t, "ответ из базы знаний", replies[0].Text)
	require.Equal(t, StateSearch, f.state(testUser), "search stays active between questions")

	replies = f.send(t, testUser, "А когда каникулы?")
	require.Equal(t, "ответ из базы знаний", replies[0].Text)
	require.Equal(t, []string{"Когда начинаются занятия?", "А когда каникулы?"}, f.answers.asked)
}

func TestSearchFallbacks(t *testing.T) {
	f := newFixture()
	f.send(t, testUser, BtnSearch)

	f.answers.err = domain.ErrEmptyAnswer
	replies := f.send(t, testUser, "вопрос без ответа")
	require.Equal(t, textSearchNoAnswer, replies[0].Text)
	require.Equal(t, StateSearch, f.state(testUser))

	f.answers.err = errors.New("upstream 503")
	replies = f.send(t, testUser, "ещё вопрос")
	require.Equal(t, textSearchFailed, replies[0].Text)
	require.Equal(t, StateSearch, f.state(testUser))
}

func TestIdleFreeText(t *testing.T) {
	f := newFixture()
	f.faq.entries = []domain.FAQEntry{
		{ID: 1, Question: "Как подать документы?", Answer: "Через сайт."},
	}

	replies := f.send(t, testUser, "Как подать документы?")
	require.Equal(t, "Ответ: Через сайт.", replies[0].Text)

	replies = f.send(t, testUser, "где посмотреть расписание занятий")
	require.Contains(t, replies[0].Text, "Расписание")

	replies = f.send(t, testUser, "совершенно посторонний текст")
	require.Equal(t, textSearchHint, replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))
}

func TestComplaintGatesRegistration(t *testing.T) {
	f := newFixture()

	replies := f.send(t, testUser, BtnComplaint)
	require.Equal(t, textAskName, replies[0].Text)
	require.Equal(t, StateAwaitingNameForComplaint, f.state(testUser))

	replies = f.send(t, testUser, "Иван Петров")
	require.Equal(t, textAskEmail, replies[0].Text)
	require.Equal(t, StateAwaitingEmailForComplaint, f.state(testUser))

	for _, bad := range []string{"not-an-email", "a@b", "почта"} {
		replies = f.send(t, testUser, bad)
		require.Equal(t, textBadEmail, replies[0].Text)
		require.Equal(t, StateAwaitingEmailForComplaint, f.state(testUser))
	}

	replies = f.send(t, testUser, "ivan@example.com")
	require.Equal(t, textAskComplaint, replies[0].Text)
	require.Equal(t, StateAwaitingComplaint, f.state(testUser))

	replies = f.send(t, testUser, "В аудитории 215 сломан проектор.")
	require.Equal(t, textComplaintDone, replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))

	require.Len(t, f.notifier.adminMsgs, 1)
	require.Contains(t, f.notifier.adminMsgs[0], "жалоба")
	require.Contains(t, f.notifier.adminMsgs[0], "сломан проектор")

	u := f.users.users[testUser]
	require.Equal(t, "Иван Петров", *u.Name)
	require.Equal(t, "ivan@example.com", *u.Email)
}

func TestComplaintSingleActiveRule(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")

	f.send(t, testUser, BtnComplaint)
	f.send(t, testUser, "первая жалоба")

	replies := f.send(t, testUser, BtnComplaint)
	require.Equal(t, textPending, replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))
	require.Len(t, f.complaints.subs, 1)
}

func TestStorySkipsGateWhenRegistered(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Мария", "maria@example.com")

	replies := f.send(t, testUser, BtnStories)
	require.Equal(t, textAskStory, replies[0].Text)
	require.Equal(t, StateAwaitingStory, f.state(testUser))

	replies = f.send(t, testUser, "Работаю программистом после выпуска.")
	require.Equal(t, textStoryDone, replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))
	require.Contains(t, f.notifier.adminMsgs[0], "история")
}

func TestStoriesHaveNoSingleActiveLimit(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Мария", "maria@example.com")

	f.send(t, testUser, BtnStories)
	f.send(t, testUser, "первая история")
	f.send(t, testUser, BtnStories)
	f.send(t, testUser, "вторая история")

	require.Len(t, f.stories.subs, 2)
}

func TestExitResetsAnyState(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnComplaint)
	require.Equal(t, StateAwaitingComplaint, f.state(testUser))

	replies := f.send(t, testUser, BtnExitMenu)
	require.Equal(t, textMainMenu, replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))
	require.Empty(t, f.complaints.subs)
}

func TestStoreErrorKeepsState(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnComplaint)

	f.complaints.failAll = true
	replies := f.send(t, testUser, "текст жалобы")
	require.Equal(t, textStoreError, replies[0].Text)
	require.Equal(t, StateAwaitingComplaint, f.state(testUser), "user may retry after a store error")

	f.complaints.failAll = false
	replies = f.send(t, testUser, "текст жалобы")
	require.Equal(t, textComplaintDone, replies[0].Text)
}

func TestDocumentHintInCaptureStates(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnComplaint)

	replies, err := f.engine.Process(context.Background(), Event{UserID: testUser, Kind: EventDocument})
	require.NoError(t, err)
	require.Len(t, replies, 1)
	require.Equal(t, textAttachmentHint, replies[0].Text)
	require.Equal(t, StateAwaitingComplaint, f.state(testUser))

	f.send(t, testUser, BtnExitMenu)
	replies, err = f.engine.Process(context.Background(), Event{UserID: testUser, Kind: EventDocument})
	require.NoError(t, err)
	require.Empty(t, replies, "documents outside capture states are ignored")
}

func TestParentCabinet(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")

	replies := f.send(t, testUser, BtnParent)
	require.Contains(t, replies[0].Text, "Иван")
	require.Contains(t, replies[0].Text, "ivan@example.com")
	require.Equal(t, StateParentCabinet, f.state(testUser))

	f.send(t, testUser, BtnChangeName)
	require.Equal(t, StateChangeName, f.state(testUser))
	replies = f.send(t, testUser, "Пётр")
	require.Len(t, replies, 2)
	require.Equal(t, textNameChanged, replies[0].Text)
	require.Contains(t, replies[1].Text, "Пётр")
	require.Equal(t, StateParentCabinet, f.state(testUser))

	f.send(t, testUser, BtnChangeEmail)
	replies = f.send(t, testUser, "новая почта")
	require.Equal(t, textBadEmail, replies[0].Text)
	require.Equal(t, StateChangeEmail, f.state(testUser))

	replies = f.send(t, testUser, "petr@example.com")
	require.Equal(t, textEmailChanged, replies[0].Text)
	require.Equal(t, "petr@example.com", *f.users.users[testUser].Email)
}

func TestParentCabinetUnregisteredShowsPlaceholders(t *testing.T) {
	f := newFixture()

	replies := f.send(t, testUser, BtnParent)
	require.Contains(t, replies[0].Text, "не указано")
	require.Contains(t, replies[0].Text, "не указан")
}

func TestFAQPagination(t *testing.T) {
	f := newFixture()
	questions := []string{"В1?", "В2?", "В3?", "В4?", "В5?", "В6?"}
	for i, q := range questions {
		f.faq.entries = append(f.faq.entries, domain.FAQEntry{
			ID: int64(i + 1), Question: q, Answer: "О" + q,
		})
	}

	replies := f.send(t, testUser, BtnFAQ)
	require.Equal(t, textFAQPick, replies[0].Text)
	require.True(t, hasButton(replies[0].Keyboard, "В1?"))
	require.True(t, hasButton(replies[0].Keyboard, BtnNextPage))
	require.False(t, hasButton(replies[0].Keyboard, BtnPrevPage))

	replies = f.send(t, testUser, BtnNextPage)
	require.True(t, hasButton(replies[0].Keyboard, "В5?"))
	require.True(t, hasButton(replies[0].Keyboard, BtnPrevPage))
	require.False(t, hasButton(replies[0].Keyboard, BtnNextPage))
	require.Equal(t, 1, f.sessions.Get(testUser).Page)

	replies = f.send(t, testUser, BtnNextPage)
	require.Empty(t, replies, "forward press past the last page is a no-op")
	require.Equal(t, 1, f.sessions.Get(testUser).Page)

	f.send(t, testUser, BtnPrevPage)
	replies = f.send(t, testUser, BtnPrevPage)
	require.Empty(t, replies, "back press before the first page is a no-op")
	require.Equal(t, 0, f.sessions.Get(testUser).Page)

	replies = f.send(t, testUser, "В3?")
	require.Equal(t, "Ответ: ОВ3?", replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))
}

func TestFAQEmptyList(t *testing.T) {
	f := newFixture()

	replies := f.send(t, testUser, BtnFAQ)
	require.Equal(t, textFAQEmpty, replies[0].Text)
	require.Equal(t, StateIdle, f.state(testUser))
}

func TestAdminEntryDeniedSilently(t *testing.T) {
	f := newFixture()

	replies := f.send(t, testUser, BtnAdmin)
	require.Empty(t, replies)
	require.Equal(t, StateIdle, f.state(testUser))

	replies = f.send(t, testUser, BtnBackAdmin)
	require.Empty(t, replies)
}

func TestAdminReviewFlow(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnComplaint)
	f.send(t, testUser, "жалоба на расписание")

	replies := f.send(t, testAdmin, BtnAdmin)
	require.Equal(t, textAdminPanel, replies[0].Text)
	require.Equal(t, StateAdminPanel, f.state(testAdmin))

	replies = f.send(t, testAdmin, BtnAdminComplaints)
	require.Equal(t, textPickUser, replies[0].Text)
	require.True(t, hasButton(replies[0].Keyboard, "Пользователь 100"))
	require.Equal(t, StateAdminReviewUsers, f.state(testAdmin))

	replies = f.send(t, testAdmin, "Пользователь 100")
	require.Equal(t, StateAdminReviewList, f.state(testAdmin))
	last := replies[len(replies)-1]
	require.True(t, hasButton(last.Keyboard, "Жалоба #1"))
	require.Contains(t, replies[0].Text, "жалоба на расписание")

	replies = f.send(t, testAdmin, "Жалоба #1")
	require.Equal(t, StateAdminReviewDetail, f.state(testAdmin))
	require.Contains(t, replies[0].Text, "рассмотрена")
	require.Equal(t, domain.StatusReviewed, f.complaints.subs[1].Status)
	require.Len(t, f.notifier.userMsgs[testUser], 1, "filer is told about the review")

	replies = f.send(t, testAdmin, BtnClose)
	require.Equal(t, textClosed, replies[0].Text)
	require.Equal(t, domain.StatusClosed, f.complaints.subs[1].Status)
	require.Len(t, f.notifier.userMsgs[testUser], 2, "filer is told about the close")
}

func TestAdminReopenReviewedKeepsStatus(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnComplaint)
	f.send(t, testUser, "жалоба")

	f.send(t, testAdmin, BtnAdmin)
	f.send(t, testAdmin, BtnAdminComplaints)
	f.send(t, testAdmin, "Пользователь 100")
	f.send(t, testAdmin, "Жалоба #1")
	require.Len(t, f.notifier.userMsgs[testUser], 1)

	f.send(t, testAdmin, BtnBackList)
	f.send(t, testAdmin, "Жалоба #1")
	require.Equal(t, domain.StatusReviewed, f.complaints.subs[1].Status)
	require.Len(t, f.notifier.userMsgs[testUser], 1, "second open must not re-notify")
}

func TestAdminCloseIsIdempotent(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnComplaint)
	f.send(t, testUser, "жалоба")

	f.send(t, testAdmin, BtnAdmin)
	f.send(t, testAdmin, BtnAdminComplaints)
	f.send(t, testAdmin, "Пользователь 100")
	f.send(t, testAdmin, "Жалоба #1")

	// Closed out of band while the detail view is open.
	now := time.Now()
	f.complaints.subs[1].Status = domain.StatusClosed
	f.complaints.subs[1].ClosedAt = &now

	replies := f.send(t, testAdmin, BtnClose)
	require.Equal(t, textNotFoundOrClosed, replies[0].Text)
	require.Len(t, f.notifier.userMsgs[testUser], 1, "no close notification for an already closed item")
}

func TestAdminStoriesReviewedIndependently(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Мария", "maria@example.com")
	f.send(t, testUser, BtnStories)
	f.send(t, testUser, "история о профессии")

	f.send(t, testAdmin, BtnAdmin)
	replies := f.send(t, testAdmin, BtnAdminStories)
	require.True(t, hasButton(replies[0].Keyboard, "Пользователь 100"))

	f.send(t, testAdmin, "Пользователь 100")
	replies = f.send(t, testAdmin, "История #1")
	require.Equal(t, StateAdminReviewDetail, f.state(testAdmin))
	require.Equal(t, domain.StatusReviewed, f.stories.subs[1].Status)
	require.Contains(t, replies[0].Text, "История #1")
}

func TestAdminEmptyQueue(t *testing.T) {
	f := newFixture()

	f.send(t, testAdmin, BtnAdmin)
	replies := f.send(t, testAdmin, BtnAdminComplaints)
	require.Equal(t, textNoActive, replies[0].Text)
	require.Equal(t, StateAdminPanel, f.state(testAdmin))
}

func TestAdminFAQManagement(t *testing.T) {
	f := newFixture()

	f.send(t, testAdmin, BtnAdmin)
	replies := f.send(t, testAdmin, BtnAdminFAQ)
	require.Contains(t, replies[0].Text, textFAQAdmin)
	require.Equal(t, StateAdminFAQ, f.state(testAdmin))

	f.send(t, testAdmin, BtnFAQAdd)
	require.Equal(t, StateAdminFAQAddQuestion, f.state(testAdmin))
	f.send(t, testAdmin, "Есть ли общежитие?")
	require.Equal(t, StateAdminFAQAddAnswer, f.state(testAdmin))

	replies = f.send(t, testAdmin, "Общежитие не предоставляется.")
	require.Equal(t, textFAQAdded, replies[0].Text)
	require.Equal(t, StateAdminFAQ, f.state(testAdmin))
	require.Len(t, f.faq.entries, 1)

	f.send(t, testAdmin, BtnFAQDelete)
	replies = f.send(t, testAdmin, "999")
	require.Equal(t, textFAQDeleteNotFnd, replies[0].Text)
	require.Len(t, f.faq.entries, 1)

	f.send(t, testAdmin, "1")
	require.Empty(t, f.faq.entries)
}

func TestBackAdminShortCircuitsFromAnyState(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnComplaint)
	f.send(t, testUser, "жалоба")

	f.send(t, testAdmin, BtnAdmin)
	f.send(t, testAdmin, BtnAdminComplaints)
	f.send(t, testAdmin, "Пользователь 100")

	replies := f.send(t, testAdmin, BtnBackAdmin)
	require.Equal(t, textAdminPanel, replies[0].Text)
	require.Equal(t, StateAdminPanel, f.state(testAdmin))
}

func TestUnmatchedTextInFlowStateIsSilent(t *testing.T) {
	f := newFixture()
	f.register(testUser, "Иван", "ivan@example.com")
	f.send(t, testUser, BtnParent)

	replies := f.send(t, testUser, "случайный текст")
	require.Empty(t, replies)
	require.Equal(t, StateParentCabinet, f.state(testUser))
}

func TestStateAlwaysValidAfterProcessing(t *testing.T) {
	f := newFixture()
	inputs := []string{
		"/start", BtnSearch, "вопрос", BtnExitMenu, BtnComplaint,
		"Имя", "bad-email", "user@example.com", "жалоба", BtnParent,
		"текст", BtnFAQ, BtnNextPage, "/help",
	}
	for _, in := range inputs {
		f.send(t, testUser, in)
		require.True(t, f.state(testUser).Valid(), "after input %q", in)
	}
}
