package types_test

import (
	"testing"

	"github.com/arthur-debert/dots/pkg/types"
	"github.com/stretchr/testify/assert"
)

func TestStatusShort(t *testing.T) {
	assert.Equal(t, "ok", types.StatusLinked.Short())
	assert.Equal(t, "C", types.StatusConflict.Short())
	assert.Equal(t, "!", types.StatusMissing.Short())
	assert.Equal(t, "?", types.Status("weird").Short())
}

func TestEntryString(t *testing.T) {
	e := types.Entry{Name: ".vimrc", Status: types.StatusMissing}
	assert.Equal(t, "!    .vimrc", e.String())

	e.Status = types.StatusLinked
	assert.Equal(t, "ok   .vimrc", e.String())
}

func TestPointsToSource(t *testing.T) {
	e := types.Entry{
		SourcePath: "/repo/.vimrc",
		TargetPath: "/home/u/.vimrc",
		Status:     types.StatusLinked,
		LinkDest:   "/repo/.vimrc",
	}
	assert.True(t, e.PointsToSource())

	e.LinkDest = "/elsewhere/.vimrc"
	assert.False(t, e.PointsToSource())

	e.Status = types.StatusConflict
	e.LinkDest = "/repo/.vimrc"
	assert.False(t, e.PointsToSource())
}

func TestFilterByStatus(t *testing.T) {
	entries := []types.Entry{
		{Name: "a", Status: types.StatusMissing},
		{Name: "b", Status: types.StatusLinked},
		{Name: "c", Status: types.StatusMissing},
	}

	missing := types.FilterByStatus(entries, types.StatusMissing)
	assert.Len(t, missing, 2)
	assert.Equal(t, "a", missing[0].Name)
	assert.Equal(t, "c", missing[1].Name)

	assert.Empty(t, types.FilterByStatus(entries, types.StatusConflict))
}
