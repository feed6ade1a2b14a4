package blobstore

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

type doc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestLoad_MissingFileLeavesValueUntouched(t *testing.T) {
	b, err := New(t.TempDir(), "docs")
	assert.NoError(t, err)

	v := doc{Name: "initial"}
	assert.NoError(t, b.Load(&v))
	assert.Equal(t, "initial", v.Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	b, err := New(dir, "docs")
	assert.NoError(t, err)

	assert.NoError(t, b.Save(doc{Name: "a", Count: 2}))

	var v doc
	assert.NoError(t, b.Load(&v))
	assert.Equal(t, doc{Name: "a", Count: 2}, v)

	// No stray temp file after the atomic rename.
	_, err = os.Stat(filepath.Join(dir, "docs.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestUpdate_LoadMutateSave(t *testing.T) {
	b, err := New(t.TempDir(), "docs")
	assert.NoError(t, err)
	assert.NoError(t, b.Save([]doc{{Name: "a"}}))

	var docs []doc
	assert.NoError(t, b.Update(&docs, func() error {
		docs = append(docs, doc{Name: "b"})
		return nil
	}))

	var got []doc
	assert.NoError(t, b.Load(&got))
	assert.Len(t, got, 2)
	assert.Equal(t, "b", got[1].Name)
}

func TestUpdate_FnErrorSkipsSave(t *testing.T) {
	b, err := New(t.TempDir(), "docs")
	assert.NoError(t, err)
	assert.NoError(t, b.Save([]doc{{Name: "a"}}))

	boom := assert.AnError
	var docs []doc
	assert.ErrorIs(t, b.Update(&docs, func() error {
		docs = append(docs, doc{Name: "b"})
		return boom
	}), boom)

	var got []doc
	assert.NoError(t, b.Load(&got))
	assert.Len(t, got, 1)
}
