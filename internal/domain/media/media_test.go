package media

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestIntake(t *testing.T) *Intake {
	t.Helper()
	in, err := NewIntake(t.TempDir(), "session")
	assert.NoError(t, err)
	t.Cleanup(func() { _ = in.Close() })
	return in
}

func TestClassifyMime(t *testing.T) {
	cases := []struct {
		contentType string
		kind        Kind
		ok          bool
	}{
		{"image/jpeg", KindImage, true},
		{"image/png", KindImage, true},
		{"video/mp4", KindVideo, true},
		{"VIDEO/QUICKTIME", KindVideo, true},
		{"video/mp4; codecs=avc1", KindVideo, true},
		{"application/pdf", "", false},
		{"text/html", "", false},
		{"", "", false},
	}
	for _, c := range cases {
		kind, ok := ClassifyMime(c.contentType)
		assert.Equal(t, c.ok, ok, c.contentType)
		assert.Equal(t, c.kind, kind, c.contentType)
	}
}

func TestAdd_RejectsUnsupportedType(t *testing.T) {
	in := newTestIntake(t)
	_, err := in.Add("doc.pdf", "application/pdf", 10, strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrUnsupportedType)
	assert.Empty(t, in.Items())
}

func TestAdd_VideoSizeBoundary(t *testing.T) {
	in := newTestIntake(t)

	// Exactly at the cap is accepted.
	item, err := in.Add("clip.mp4", "video/mp4", MaxVideoSize, strings.NewReader("payload"))
	assert.NoError(t, err)
	assert.Equal(t, KindVideo, item.Kind)

	// One byte over is rejected before anything is spooled.
	_, err = in.Add("big.mp4", "video/mp4", MaxVideoSize+1, strings.NewReader("payload"))
	assert.ErrorIs(t, err, ErrVideoTooLarge)
	assert.Len(t, in.Items(), 1)
}

// zeroReader yields an endless stream of zero bytes.
type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

func TestAdd_VideoOversizedStreamIsRejected(t *testing.T) {
	in := newTestIntake(t)

	// Declared size lies and the reader never ends: Add must stop spooling
	// on its own once the cap is exceeded, then reject.
	_, err := in.Add("sneaky.mp4", "video/mp4", MaxVideoSize, zeroReader{})
	assert.ErrorIs(t, err, ErrVideoTooLarge)
	assert.Empty(t, in.Items())
}

func TestAdd_ImagesHaveNoSizeCap(t *testing.T) {
	in := newTestIntake(t)
	item, err := in.Add("photo.jpg", "image/jpeg", MaxVideoSize+1, strings.NewReader("jpegdata"))
	assert.NoError(t, err)
	assert.Equal(t, KindImage, item.Kind)
	assert.Equal(t, int64(len("jpegdata")), item.Size)
}

func TestRemove_ReleasesSpoolFile(t *testing.T) {
	in := newTestIntake(t)
	item, err := in.Add("photo.jpg", "image/jpeg", 4, strings.NewReader("data"))
	assert.NoError(t, err)
	_, err = os.Stat(item.Path)
	assert.NoError(t, err)

	assert.NoError(t, in.Remove(item.ID))
	_, err = os.Stat(item.Path)
	assert.True(t, os.IsNotExist(err))
	assert.Empty(t, in.Items())

	assert.ErrorIs(t, in.Remove(item.ID), ErrItemNotFound)
}

func TestItems_PreservesSelectionOrder(t *testing.T) {
	in := newTestIntake(t)
	names := []string{"a.jpg", "b.png", "c.mp4"}
	types := []string{"image/jpeg", "image/png", "video/mp4"}
	for i := range names {
		_, err := in.Add(names[i], types[i], 1, strings.NewReader("x"))
		assert.NoError(t, err)
	}

	items := in.Items()
	assert.Len(t, items, 3)
	for i, item := range items {
		assert.Equal(t, names[i], item.Name)
	}

	// Removing the middle item keeps the remaining order.
	assert.NoError(t, in.Remove(items[1].ID))
	left := in.Items()
	assert.Equal(t, "a.jpg", left[0].Name)
	assert.Equal(t, "c.mp4", left[1].Name)
}
