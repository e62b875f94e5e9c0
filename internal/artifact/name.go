package artifact

import (
	"fmt"
	"mime"
	"path"
	"regexp"
	"strings"
)

var objectNamePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_-]*\.[a-z0-9]+$`)

// ObjectName is "<agentID>.<fileType>".
func ObjectName(agentID, fileType string) (string, error) {
	name := agentID + "." + strings.ToLower(strings.TrimPrefix(fileType, "."))
	if err := ValidateName(name); err != nil {
		return "", err
	}
	return name, nil
}

// ValidateName rejects anything that is not a flat "<id>.<ext>" name.
func ValidateName(name string) error {
	if !objectNamePattern.MatchString(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

// ContentType infers the MIME type from the name's extension.
func ContentType(name string) string {
	ext := path.Ext(name)
	if ct := mime.TypeByExtension(ext); ct != "" {
		return ct
	}
	switch ext {
	case ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case ".xlsx":
		return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	case ".docx":
		return "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	}
	return "application/octet-stream"
}
