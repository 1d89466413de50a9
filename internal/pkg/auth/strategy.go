package auth

import "time"

// Audience separates token families issued by the same service. A token only
// parses with the strategy that issued it.
type Audience string

const (
	AudienceStaff  Audience = "staff"
	AudiencePortal Audience = "portal"
)

type Strategy interface {
	IssueToken(subject int64) (string, error)
	ParseToken(token string) (int64, error)
	Name() string
}

type Options struct {
	Audience Audience
	TTL      time.Duration
}
