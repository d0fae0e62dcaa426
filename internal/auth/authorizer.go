package auth

import (
	"strings"
)

type Config struct {
	// Tokens maps a bearer token to the principal it authenticates.
	Tokens map[string]Principal `yaml:"tokens"`
}

const bearerPrefix = "Bearer "

func NewTokenAuthorizer(cfg Config) *TokenAuthorizer {
	tokens := make(map[string]Principal, len(cfg.Tokens))
	for token, p := range cfg.Tokens {
		if token == "" || p.OrganizationID == "" {
			continue
		}
		tokens[token] = p
	}

	return &TokenAuthorizer{tokens: tokens}
}

type TokenAuthorizer struct {
	tokens map[string]Principal
}

// Authorize resolves an Authorization header value of the form "Bearer <token>".
func (a *TokenAuthorizer) Authorize(header string) (Principal, bool) {
	if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return Principal{}, false
	}

	return a.Token(strings.TrimSpace(header[len(bearerPrefix):]))
}

// Token resolves a raw token.
func (a *TokenAuthorizer) Token(token string) (Principal, bool) {
	if token == "" {
		return Principal{}, false
	}

	p, ok := a.tokens[token]
	return p, ok
}
