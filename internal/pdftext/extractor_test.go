package pdftext_test

import (
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Flaque/filet"
	"github.com/oterra/waypoint/internal/pdftext"
	"github.com/oterra/waypoint/internal/pdftext/pdftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_PageCount(t *testing.T) {
	defer filet.CleanUp(t)

	dir := filet.TmpDir(t, "")
	path := filepath.Join(dir, "sample.pdf")
	pdftest.WriteSample(t, path, []string{"first", "second", "third"})

	extractor := pdftext.NewExtractor(slog.Default())

	count, err := extractor.PageCount(path)

	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestExtractor_Extract(t *testing.T) {
	defer filet.CleanUp(t)
	extractor := pdftext.NewExtractor(slog.Default())

	t.Run("extracts text from every page", func(t *testing.T) {
		dir := filet.TmpDir(t, "")
		path := filepath.Join(dir, "addresses.pdf")
		pdftest.WriteSample(t, path, []string{
			"UpGrad, Nishuvi Building, Worli, Mumbai",
			"1600 Amphitheatre Parkway",
		})

		pages, err := extractor.Extract(path)

		require.NoError(t, err)
		require.Len(t, pages, 2)
		assert.Equal(t, 1, pages[0].Number)
		assert.Equal(t, 2, pages[1].Number)
		// Extraction is best-effort about whitespace, so compare with spaces stripped.
		assert.Contains(t, stripSpaces(pages[0].Text), "Worli,Mumbai")
		assert.Contains(t, stripSpaces(pages[1].Text), "AmphitheatreParkway")
	})

	t.Run("missing file", func(t *testing.T) {
		pages, err := extractor.Extract("/nonexistent/file.pdf")

		require.Error(t, err)
		assert.Nil(t, pages)
	})

	t.Run("not a PDF", func(t *testing.T) {
		path := filet.TmpFile(t, "", "just some text, not a pdf").Name()

		pages, err := extractor.Extract(path)

		require.Error(t, err)
		assert.Nil(t, pages)
	})
}

func stripSpaces(s string) string {
	return strings.ReplaceAll(s, " ", "")
}
