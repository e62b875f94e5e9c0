package usecase

import "time"

const (
	roleSystem = "system"
	roleUser   = "user"

	recordTimeout = 5 * time.Second
)
