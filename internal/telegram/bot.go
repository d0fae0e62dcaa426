package telegram

import (
	"context"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"github.com/vitaliy-ukiru/fsm-telebot/storages/memory"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/timekeeper/pkg/errors"
	"github.com/nikmy/timekeeper/pkg/logger"
)

func New(
	log logger.Logger,
	conf Config,
	engine checker,
	tokens tokenResolver,
) (*Bot, error) {
	b, err := telebot.NewBot(telebot.Settings{
		Token:   conf.Token,
		Updates: 256,
		Poller: &telebot.LongPoller{
			Timeout: conf.PollInterval,
		},
	})
	if err != nil {
		return nil, errors.WrapFail(err, "create telegram bot")
	}

	return &Bot{
		bot:    b,
		chats:  conf.Chats,
		engine: engine,
		tokens: tokens,
		log:    log.With("telegram"),
	}, nil
}

type Bot struct {
	bot *telebot.Bot
	ctx context.Context

	chats  map[int64]string
	engine checker
	tokens tokenResolver

	log logger.Logger
}

func (b *Bot) Run(ctx context.Context) error {
	b.ctx = ctx
	b.setupHandlers()
	go b.bot.Start()
	return nil
}

func (b *Bot) Stop() {
	b.bot.Stop()
}

type handler func(c chat, s dialogue) error

func adapt(h handler) func(telebot.Context, fsm.Context) error {
	return func(c telebot.Context, s fsm.Context) error {
		return h(c, s)
	}
}

func (b *Bot) setupHandlers() {
	manager := fsm.NewManager(
		b.bot,
		nil,
		memory.NewStorage(),
		nil,
	)

	manager.Bind("/start", fsm.AnyState, adapt(b.start))
	manager.Bind("/free", fsm.AnyState, adapt(b.startFree))
	manager.Bind("/cancel", fsm.AnyState, adapt(b.cancel))

	manager.Bind(telebot.OnText, initialState, adapt(b.start))
	manager.Bind(telebot.OnText, freeReadStartState, adapt(b.freeReadStart))
	manager.Bind(telebot.OnText, freeReadEndState, adapt(b.freeReadEnd))
}
