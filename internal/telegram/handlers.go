package telegram

import (
	"github.com/vitaliy-ukiru/fsm-telebot"

	"github.com/nikmy/timekeeper/internal/auth"
	"github.com/nikmy/timekeeper/internal/availability"
	"github.com/nikmy/timekeeper/pkg/errors"
)

const (
	initialState = fsm.DefaultState

	freeReadStartState fsm.State = "freeReadStart"
	freeReadEndState   fsm.State = "freeReadEnd"
)

const keyStart = "start"

const usage = "" +
	"Available commands:\n" +
	"/free - find who is free for a time window\n" +
	"/cancel - abort the current dialogue\n\n" +
	"Date-times look like 2020-06-10T10:00 and are read as UTC."

func (b *Bot) setState(s dialogue, target fsm.State) {
	err := s.Set(target)
	if err != nil {
		b.log.Warn(errors.WrapFailf(err, "set state to \"%s\"", target))
	}
}

func (b *Bot) final(c chat, s dialogue, msg string, opts ...any) error {
	b.setState(s, initialState)
	return c.Send(msg, opts...)
}

func (b *Bot) fail(c chat, s dialogue, err error) error {
	b.log.Error(err)
	return b.final(c, s, "Something went wrong, try again later")
}

func (b *Bot) principal(c chat) (auth.Principal, bool) {
	ch := c.Chat()
	if ch == nil {
		return auth.Principal{}, false
	}

	token, ok := b.chats[ch.ID]
	if !ok {
		return auth.Principal{}, false
	}

	p, ok := b.tokens.Token(token)
	if !ok || !p.HasAnyRole(auth.RoleUser, auth.RoleAdmin) {
		return auth.Principal{}, false
	}

	return p, true
}

func (b *Bot) start(c chat, s dialogue) error {
	return b.final(c, s, usage)
}

func (b *Bot) cancel(c chat, s dialogue) error {
	return b.final(c, s, "Cancelled")
}

func (b *Bot) startFree(c chat, s dialogue) error {
	if _, ok := b.principal(c); !ok {
		return b.final(c, s, "This chat is not linked to an account")
	}

	b.setState(s, freeReadStartState)
	return c.Send("Enter the start date-time, e.g. 2020-06-10T10:00")
}

func (b *Bot) freeReadStart(c chat, s dialogue) error {
	raw := c.Text()

	_, err := availability.ParseDateTime(raw)
	if err != nil {
		b.log.Debug(errors.WrapFail(err, "parse start date-time"))
		return c.Send("Bad date-time format, expected 2020-06-10T10:00")
	}

	err = s.Update(keyStart, raw)
	if err != nil {
		return b.fail(c, s, errors.WrapFail(err, "update state with start"))
	}

	b.setState(s, freeReadEndState)
	return c.Send("Enter the end date-time")
}

func (b *Bot) freeReadEnd(c chat, s dialogue) error {
	p, ok := b.principal(c)
	if !ok {
		return b.final(c, s, "This chat is not linked to an account")
	}

	var start string
	err := s.Get(keyStart, &start)
	if err != nil {
		b.log.Debug(err)
		return b.final(c, s, "Error, start over with /free")
	}

	res, err := b.engine.CheckRaw(auth.WithPrincipal(b.ctx, p), start, c.Text())
	switch availability.KindOf(err) {
	case availability.KindUnknown:
		if err != nil {
			return b.fail(c, s, errors.WrapFail(err, "check availability"))
		}
	case availability.KindInvalidTimeWindow:
		b.log.Debug(err)
		return c.Send("The end must be a date-time like 2020-06-10T12:00, not before the start")
	default:
		return b.fail(c, s, errors.WrapFail(err, "check availability"))
	}

	return b.final(c, s, formatResult(res))
}
