package chat

const (
	// MarkerFileType declares the artifact extension, as in "FILE_TYPE=pptx".
	MarkerFileType = "FILE_TYPE="
	// MarkerInvalidFileType means the requested format cannot be produced.
	MarkerInvalidFileType = "INVALID_FILE_TYPE"
)

const ApologyAnswer = "Sorry, I couldn't produce an answer right now. Please try again in a moment."

// FileOnlyAnswer replaces an answer that held nothing but file markers.
const FileOnlyAnswer = "Here is the file you asked for."

const UnresolvedInstruction = "The request did not match any document collection or database you can query. " +
	"Answer from the context of the conversation if you can, otherwise ask the user for more details."

const ArtifactInstruction = "The user also wants a file. At the end of your answer write FILE_TYPE=<extension> " +
	"on its own line, for example FILE_TYPE=png or FILE_TYPE=pptx. If the requested format cannot be produced " +
	"as a single file, write INVALID_FILE_TYPE instead."
