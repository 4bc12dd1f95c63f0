package ziparchive_test

import (
	"archive/zip"
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/dose/internal/adapters/ziparchive"
	"go.trai.ch/dose/internal/core/domain"
)

func writeZip(t *testing.T, path string, entries map[string][]byte) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	zw := zip.NewWriter(f)
	for name, data := range entries {
		entry, err := zw.Create(name)
		require.NoError(t, err)
		_, err = entry.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())
}

func TestReader_Settings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.zip")
	writeZip(t, path, map[string][]byte{
		"print_settings.json": []byte(`{"Layers":[]}`),
	})

	r, err := ziparchive.NewOpener().Open(path)
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck // Best effort close in defer

	data, err := r.Settings()
	require.NoError(t, err)
	assert.Equal(t, `{"Layers":[]}`, string(data))
}

func TestReader_SettingsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.zip")
	writeZip(t, path, map[string][]byte{"slices/a.png": []byte("x")})

	r, err := ziparchive.NewOpener().Open(path)
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck // Best effort close in defer

	_, err = r.Settings()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSettingsNotFound)
}

func TestReader_MaskNames(t *testing.T) {
	tests := []struct {
		name    string
		entries map[string][]byte
		want    []string
	}{
		{
			name: "Slices Present",
			entries: map[string][]byte{
				"print_settings.json": []byte("{}"),
				"slices/a.png":        []byte("a"),
				"slices/b.png":        []byte("b"),
				"unrelated.txt":       []byte("x"),
			},
			want: []string{"a.png", "b.png"},
		},
		{
			name: "No Image Store",
			entries: map[string][]byte{
				"print_settings.json": []byte("{}"),
			},
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "job.zip")
			writeZip(t, path, tt.entries)

			r, err := ziparchive.NewOpener().Open(path)
			require.NoError(t, err)
			defer r.Close() //nolint:errcheck // Best effort close in defer

			names, err := r.MaskNames()
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, names)
		})
	}
}

func TestReader_OpenMask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.zip")
	writeZip(t, path, map[string][]byte{"slices/a.png": []byte("payload")})

	r, err := ziparchive.NewOpener().Open(path)
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck // Best effort close in defer

	rc, err := r.OpenMask("a.png")
	require.NoError(t, err)
	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "payload", string(data))

	_, err = r.OpenMask("ghost.png")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMaskNotFound)
}

func TestOpener_OpenMissingFile(t *testing.T) {
	_, err := ziparchive.NewOpener().Open(filepath.Join(t.TempDir(), "absent.zip"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrArchiveOpenFailed)
}

func TestWriter_WriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")

	w, err := ziparchive.NewCreator().Create(path)
	require.NoError(t, err)
	require.NoError(t, w.PutSettings([]byte(`{"Layers":[]}`)))
	require.NoError(t, w.PutMask("layer0_opt_1.png", strings.NewReader("mask bytes")))
	require.NoError(t, w.Close())

	r, err := ziparchive.NewOpener().Open(path)
	require.NoError(t, err)
	defer r.Close() //nolint:errcheck // Best effort close in defer

	data, err := r.Settings()
	require.NoError(t, err)
	assert.Equal(t, `{"Layers":[]}`, string(data))

	rc, err := r.OpenMask("layer0_opt_1.png")
	require.NoError(t, err)
	var buf bytes.Buffer
	_, err = buf.ReadFrom(rc)
	require.NoError(t, err)
	require.NoError(t, rc.Close())
	assert.Equal(t, "mask bytes", buf.String())
}

func TestWriter_NotVisibleBeforeClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")

	w, err := ziparchive.NewCreator().Create(path)
	require.NoError(t, err)
	require.NoError(t, w.PutSettings([]byte("{}")))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "archive must not appear until Close")

	require.NoError(t, w.Close())
	_, statErr = os.Stat(path)
	assert.NoError(t, statErr)
}

func TestWriter_AbortLeavesNothing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.zip")

	w, err := ziparchive.NewCreator().Create(path)
	require.NoError(t, err)
	require.NoError(t, w.PutSettings([]byte("{}")))
	require.NoError(t, w.Abort())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "abort removes the staged temp file")
}

func TestWriter_AbortAfterCloseIsNoop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.zip")

	w, err := ziparchive.NewCreator().Create(path)
	require.NoError(t, err)
	require.NoError(t, w.PutSettings([]byte("{}")))
	require.NoError(t, w.Close())
	require.NoError(t, w.Abort())

	_, statErr := os.Stat(path)
	assert.NoError(t, statErr, "a closed archive survives a late Abort")
}
