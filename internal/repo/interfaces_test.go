package repo

import (
	"github.com/nikmy/timekeeper/internal/repo/models"
	"github.com/nikmy/timekeeper/pkg/txn"
)

//go:generate mockgen -source=interfaces_test.go -destination=mocks_test.go -package=repo

type repoClient interface {
	Client
}

type usersRepo interface {
	models.UsersRepo
}

type eventsRepo interface {
	models.EventsRepo
}

type session interface {
	txn.Session
}
