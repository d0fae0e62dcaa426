package telegram

import (
	"context"

	"github.com/vitaliy-ukiru/fsm-telebot"
	"gopkg.in/telebot.v3"

	"github.com/nikmy/timekeeper/internal/auth"
	"github.com/nikmy/timekeeper/internal/availability"
)

type checker interface {
	CheckRaw(ctx context.Context, start, end string) (*availability.Result, error)
}

type tokenResolver interface {
	Token(token string) (auth.Principal, bool)
}

// chat is the part of telebot.Context the handlers use.
type chat interface {
	Chat() *telebot.Chat
	Text() string
	Send(what any, opts ...any) error
}

// dialogue is the part of fsm.Context the handlers use.
type dialogue interface {
	Set(state fsm.State) error
	Update(key string, data any) error
	Get(key string, to any) error
}
