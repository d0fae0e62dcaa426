package telegram

import "time"

type Config struct {
	Token        string        `yaml:"token"`
	PollInterval time.Duration `yaml:"pollInterval"`

	// Chats links a chat id to the API token the chat acts with.
	Chats map[int64]string `yaml:"chats"`
}
