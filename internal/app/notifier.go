package app

import (
	"sync/atomic"

	"log/slog"

	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/collegebot/core/logger"
	"github.com/m3rciful/collegebot/core/telegram/sender"
)

// Notifier delivers out-of-band messages: admin alerts about new
// submissions and status updates back to their authors. Deliveries are
// best effort; failures are logged and never surface to the caller.
type Notifier struct {
	adminIDs   []int64
	bot        atomic.Pointer[tele.Bot]
	dispatcher atomic.Pointer[sender.Dispatcher]
}

// NewNotifier creates a notifier for the given admin allow-list.
// It stays inert until Bind attaches the running bot.
func NewNotifier(adminIDs []int64) *Notifier {
	return &Notifier{adminIDs: adminIDs}
}

// Bind attaches the live bot and async sender once the runtime is up.
func (n *Notifier) Bind(bot *tele.Bot, d *sender.Dispatcher) {
	n.bot.Store(bot)
	n.dispatcher.Store(d)
}

// NotifyUser sends text to a single user.
func (n *Notifier) NotifyUser(userID int64, text string) {
	n.deliver(userID, text, "notify.user")
}

// NotifyAdmins fans text out to every configured admin.
func (n *Notifier) NotifyAdmins(text string) {
	for _, id := range n.adminIDs {
		n.deliver(id, text, "notify.admins")
	}
}

func (n *Notifier) deliver(userID int64, text, action string) {
	bot := n.bot.Load()
	if bot == nil {
		logger.TG.Warn("notify.skip",
			slog.String("action", action),
			slog.Int64("user_id", userID),
			slog.String("reason", "not_bound"),
		)
		return
	}

	run := func() error {
		_, err := bot.Send(&tele.User{ID: userID}, text)
		return err
	}

	disp := n.dispatcher.Load()
	if disp != nil {
		if err := disp.Enqueue(logger.Background(), action, "sendMessage", run); err == nil {
			return
		}
	}
	if err := run(); err != nil {
		logger.TG.Warn("notify.failed",
			slog.String("action", action),
			slog.Int64("user_id", userID),
			slog.String("err", err.Error()),
		)
	}
}
