package availability

import "time"

const DefaultMaxHoursPerDay = 8

type Config struct {
	MaxHoursPerDay int `yaml:"maxHoursPerDay"`
}

// Capacity is the per-user, per-day booking cap. It is fixed for the
// lifetime of the process.
type Capacity struct {
	maxHours int
}

func NewCapacity(cfg Config) Capacity {
	if cfg.MaxHoursPerDay <= 0 {
		return Capacity{maxHours: DefaultMaxHoursPerDay}
	}
	return Capacity{maxHours: cfg.MaxHoursPerDay}
}

func (c Capacity) MaxHoursPerDay() int {
	if c.maxHours <= 0 {
		return DefaultMaxHoursPerDay
	}
	return c.maxHours
}

// Hours truncates d to whole hours toward zero.
func (c Capacity) Hours(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	return int(d / time.Hour)
}

// Exceeded reports whether booked plus requested hours go over the cap.
func (c Capacity) Exceeded(booked, requested int) bool {
	return booked+requested > c.MaxHoursPerDay()
}
