package document

const (
	DefaultTopK = 3

	PayloadTitle = "title"
	PayloadChunk = "chunk"
)
