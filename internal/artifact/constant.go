package artifact

import "time"

const (
	AgentNamePrefix = "artifact"
	// TokenAudience scopes retrieval tokens to artifact downloads.
	TokenAudience = "artifact:read"

	DefaultPollInterval = 500 * time.Millisecond
	DefaultMaxWait      = 2 * time.Minute
	DefaultLinkTTL      = 24 * time.Hour

	// DownloadPath is the route prefix of retrieval handles.
	DownloadPath = "/api/v1/artifacts/"
)
