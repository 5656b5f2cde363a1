package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	tele "gopkg.in/telebot.v4"

	"github.com/m3rciful/collegebot/core/bootstrap"
	corecmd "github.com/m3rciful/collegebot/core/cmd"
	coretelegram "github.com/m3rciful/collegebot/core/telegram"
	"github.com/m3rciful/collegebot/core/telegram/commands"
	tghelpers "github.com/m3rciful/collegebot/core/telegram/helpers"
	"github.com/m3rciful/collegebot/core/telegram/keyboard"
	"github.com/m3rciful/collegebot/core/telegram/router"
	"github.com/m3rciful/collegebot/internal/conversation"
	"github.com/m3rciful/collegebot/internal/service"
	"github.com/m3rciful/collegebot/internal/storage"
)

// App holds the assembled bot: database handle, conversation engine, and
// the notifier bound to the Telegram runtime on start.
type App struct {
	cfg      *Config
	db       *sqlx.DB
	engine   *conversation.Engine
	notifier *Notifier
}

// Bootstrap initializes infrastructure and assembles the conversation engine.
func Bootstrap(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
	cfg, ok := carrier.(*Config)
	if !ok {
		return nil, fmt.Errorf("app: unexpected config type %T", carrier)
	}

	res, err := bootstrap.Run(context.Background(), bootstrap.Options{
		Config:   cfg.CoreConfig(),
		Database: cfg.Database,
		Seeders:  []bootstrap.Seeder{bootstrap.SeederFunc(SeedFAQ)},
	})
	if err != nil {
		return nil, err
	}

	users := service.NewUsers(storage.NewUsers(res.DB))
	complaints := service.NewComplaints(storage.NewComplaints(res.DB))
	stories := service.NewStories(storage.NewStories(res.DB))
	faq := service.NewFAQ(storage.NewFAQ(res.DB))
	answers := service.NewAnswers(cfg.Answer.URL, cfg.Answer.Key, cfg.Answer.Timeout())

	notifier := NewNotifier(cfg.Core.Telegram.AdminIDs)

	engine := conversation.NewEngine(conversation.Deps{
		Users:      users,
		Complaints: complaints,
		Stories:    stories,
		FAQ:        faq,
		Answers:    answers,
		Notifier:   notifier,
		IsAdmin:    cfg.Core.Telegram.IsAdmin,
	})

	return &App{
		cfg:      cfg,
		db:       res.DB,
		engine:   engine,
		notifier: notifier,
	}, nil
}

// TelegramRunOptions exposes the bot wiring to the core runtime.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.textHandler,
		Description: "Главное меню",
	})
	reg.RegisterCommand("/help", commands.Command{
		Handler:     a.textHandler,
		Description: "Справка по боту",
	})
	reg.SetTextFallback(a.textHandler)

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminIDs: a.cfg.Core.Telegram.AdminIDs,
	})
	routes = append(routes, router.TextRoutes(reg, router.TextOptions{
		UnknownDocument: a.documentHandler,
	})...)

	middlewares := coretelegram.DefaultMiddlewares(a.cfg.CoreConfig(), nil)

	return coretelegram.RunOptions{
		Config:      a.cfg.CoreConfig(),
		Registry:    reg,
		Middlewares: middlewares,
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			a.notifier.Bind(rt.Bot, rt.Dispatcher)
			return nil
		},
		OnStop: func(ctx context.Context, rt coretelegram.Runtime) error {
			return a.db.Close()
		},
	}, nil
}

func (a *App) textHandler(c tele.Context) error {
	return a.handleEvent(c, conversation.EventText)
}

func (a *App) documentHandler(c tele.Context) error {
	return a.handleEvent(c, conversation.EventDocument)
}

func (a *App) handleEvent(c tele.Context, kind conversation.EventKind) error {
	sender := c.Sender()
	if sender == nil {
		return nil
	}

	ctx := tghelpers.BuildContext(c)
	replies, err := a.engine.Process(ctx, conversation.Event{
		UserID: sender.ID,
		Text:   c.Text(),
		Kind:   kind,
	})
	if sendErr := sendReplies(c, replies); sendErr != nil {
		return sendErr
	}
	return err
}

// sendReplies delivers engine replies preserving order: everything before
// the final reply goes out synchronously, the last one may ride the async
// sender since nothing follows it.
func sendReplies(c tele.Context, replies []conversation.Reply) error {
	for i, r := range replies {
		markup := replyMarkup(r)
		last := i == len(replies)-1
		if !last {
			var err error
			if markup != nil {
				err = c.Send(r.Text, &tele.SendOptions{ReplyMarkup: markup})
			} else {
				err = c.Send(r.Text)
			}
			if err != nil {
				return err
			}
			continue
		}
		if markup != nil {
			return tghelpers.SendKeyboard(c, r.Text, markup)
		}
		return tghelpers.SendText(c, r.Text)
	}
	return nil
}

func replyMarkup(r conversation.Reply) *tele.ReplyMarkup {
	if len(r.Keyboard) == 0 {
		return nil
	}
	return keyboard.ReplyButtons(r.Keyboard...)
}
