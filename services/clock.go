package services

import "time"

// Clock abstracts time.Now so subscription-window checks can be pinned in
// tests.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}
