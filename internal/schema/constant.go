package schema

const (
	DefaultSchema   = "public"
	DefaultRowLimit = 200
	PlatformPostgre = "PostgreSQL"
)
