package model

import "time"

// Client represents a customer company the work is done for.
type Client struct {
	ID        int64
	Name      string
	Email     string
	Phone     string
	Company   string
	CreatedAt time.Time
}
