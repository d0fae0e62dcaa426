package mongo

import "time"

type Config struct {
	URL     string        `yaml:"url"`
	Timeout time.Duration `yaml:"timeout"`

	Database string `yaml:"database"`

	Collections struct {
		Users  string `yaml:"users"`
		Events string `yaml:"events"`
	} `yaml:"collections"`

	// SnapshotReads makes availability reads use snapshot sessions, which
	// need a replica set running MongoDB 5.0 or newer. Causally consistent
	// sessions are used otherwise.
	SnapshotReads bool `yaml:"snapshotReads"`

	Auth struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
	} `yaml:"auth"`

	Pool struct {
		MinSize uint64 `yaml:"minSize"`
		MaxSize uint64 `yaml:"maxSize"`
	} `yaml:"pool"`
}

const (
	defaultUsersCollection  = "users"
	defaultEventsCollection = "user_events"
)
