package httpserver

import "time"

const (
	DefaultShutdownTimeout = 30 * time.Second
	readyTimeout           = 3 * time.Second
)
