package commands

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"rag-intent-chat/internal/schema"
)

func testDocument() schema.Document {
	return schema.Document{
		Name:     "adventureworks",
		Platform: schema.PlatformPostgre,
		Tables: []schema.Table{{
			Name: "saleslt.customer",
			Columns: []schema.Column{
				{Name: "customerid", Type: "integer", IsPrimaryKey: true},
				{Name: "salesperson", Type: "character varying", Nullable: true},
			},
		}},
	}
}

func TestWriteDocument_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDocument(&buf, testDocument(), "yaml"))

	var got schema.Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, testDocument(), got)
	assert.Contains(t, buf.String(), "saleslt.customer")
}

func TestWriteDocument_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeDocument(&buf, testDocument(), "json"))
	assert.Contains(t, buf.String(), `"is_primary_key": true`)
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
}

func TestSchemaDescribe_RejectsFormat(t *testing.T) {
	cmd := newSchemaDescribeCmd()
	cmd.SetArgs([]string{"--tables", "saleslt.customer", "--format", "xml"})
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--format")
}

func TestRootHasSubcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["schema"])
	assert.True(t, names["ask"])
}
