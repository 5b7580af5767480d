package entity

import "time"

type AccessToken struct {
	ID         uint64
	Owner      string
	SecretHash string
	IssuedAt   time.Time
	ExpiresAt  time.Time
}
