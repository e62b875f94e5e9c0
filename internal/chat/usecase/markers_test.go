package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileMarkers(t *testing.T) {
	tests := []struct {
		answer   string
		fileType string
		invalid  bool
	}{
		{answer: "Here you go.\nFILE_TYPE=pptx", fileType: "pptx"},
		{answer: "file_type=PNG at the end", fileType: "png"},
		{answer: "FILE_TYPE=xlsx and FILE_TYPE=png", fileType: "xlsx"},
		{answer: "Sorry. INVALID_FILE_TYPE", invalid: true},
		{answer: "invalid_file_type FILE_TYPE=png", invalid: true},
		{answer: "FILE_TYPE=png INVALID_FILE_TYPE", invalid: true},
		{answer: "No markers here."},
		{answer: "FILE_TYPE= png"},
		{answer: ""},
	}

	for _, tt := range tests {
		t.Run(tt.answer, func(t *testing.T) {
			fileType, invalid := parseFileMarkers(tt.answer)
			assert.Equal(t, tt.fileType, fileType)
			assert.Equal(t, tt.invalid, invalid)
		})
	}
}

func TestStripFileMarkers(t *testing.T) {
	assert.Equal(t, "Here you go.", stripFileMarkers("Here you go.\nFILE_TYPE=pptx"))
	assert.Equal(t, "Sorry.", stripFileMarkers("Sorry. INVALID_FILE_TYPE"))
	assert.Equal(t, "a b", stripFileMarkers("a b"))
	assert.Equal(t, "x", stripFileMarkers("x INVALID_FILE_TYPE=gif"))
	assert.Equal(t, "Set the export option to before saving.", stripFileMarkers("Set the export option to FILE_TYPE=csv before saving."))
	assert.Equal(t, "", stripFileMarkers("FILE_TYPE=png"))
	assert.Equal(t, "Chart below.\n\nEnjoy.", stripFileMarkers("Chart below.\nFILE_TYPE=png\nEnjoy."))
	assert.Equal(t, "FILE_TYPE= png", stripFileMarkers("FILE_TYPE= png"))
}
