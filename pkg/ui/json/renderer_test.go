package json_test

import (
	"bytes"
	stdjson "encoding/json"
	"testing"

	"github.com/arthur-debert/dots/pkg/commands"
	"github.com/arthur-debert/dots/pkg/errors"
	"github.com/arthur-debert/dots/pkg/types"
	"github.com/arthur-debert/dots/pkg/ui/json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderResult(t *testing.T) {
	var buf bytes.Buffer
	r := json.New(&buf)

	require.NoError(t, r.RenderResult(&commands.Result{
		Command: commands.CommandStatus,
		Context: types.RepositoryContext{Root: "/r", TargetDir: "/h"},
		Entries: []types.Entry{
			{Name: ".vimrc", SourcePath: "/r/.vimrc", TargetPath: "/h/.vimrc", Status: types.StatusLinked, LinkDest: "/r/.vimrc"},
		},
	}))

	var doc map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "status", doc["command"])
	assert.NotContains(t, doc, "link")

	entries := doc["entries"].([]interface{})
	require.Len(t, entries, 1)
	entry := entries[0].(map[string]interface{})
	assert.Equal(t, "linked", entry["status"])
	assert.Equal(t, "/h/.vimrc", entry["target"])
}

func TestRenderError(t *testing.T) {
	var buf bytes.Buffer
	r := json.New(&buf)

	require.NoError(t, r.RenderError(errors.New(errors.ErrInvalidCommand, "bogus").WithDetail("command", "bogus")))

	var doc map[string]interface{}
	require.NoError(t, stdjson.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "INVALID_COMMAND", doc["code"])
	assert.Equal(t, "[INVALID_COMMAND] bogus", doc["error"])
	assert.Equal(t, "bogus", doc["details"].(map[string]interface{})["command"])
}
