package ziparchive

import (
	"archive/zip"
	"io"
	"os"
	"path"
	"path/filepath"

	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/dose/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ArchiveWriter  = (*Writer)(nil)
	_ ports.ArchiveCreator = (*Creator)(nil)
)

// Writer writes a print-job archive to a zip file. Content is staged in a
// temp file next to the target and renamed into place on Close, so a failed
// run never leaves a partial archive visible at the final path.
type Writer struct {
	final string
	tmp   string
	file  *os.File
	zw    *zip.Writer
	done  bool
}

// Creator implements ports.ArchiveCreator for zip files on disk.
type Creator struct{}

// NewCreator creates a new Creator.
func NewCreator() *Creator {
	return &Creator{}
}

// Create starts a new archive that will be published at archivePath.
func (c *Creator) Create(archivePath string) (ports.ArchiveWriter, error) {
	dir := filepath.Dir(archivePath)
	f, err := os.CreateTemp(dir, filepath.Base(archivePath)+".tmp-*")
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error()), "path", archivePath)
	}
	return &Writer{
		final: archivePath,
		tmp:   f.Name(),
		file:  f,
		zw:    zip.NewWriter(f),
	}, nil
}

// PutSettings writes the settings document at the archive root.
func (w *Writer) PutSettings(data []byte) error {
	entry, err := w.zw.Create(domain.SettingsFileName)
	if err != nil {
		return zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error())
	}
	if _, err := entry.Write(data); err != nil {
		return zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error())
	}
	return nil
}

// PutMask writes one image-store entry.
func (w *Writer) PutMask(name string, r io.Reader) error {
	entry, err := w.zw.Create(path.Join(domain.SlicesDirName, name))
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error()), "image", name)
	}
	if _, err := io.Copy(entry, r); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error()), "image", name)
	}
	return nil
}

// Close finalizes the archive and renames it onto the target path.
func (w *Writer) Close() error {
	if w.done {
		return nil
	}
	w.done = true

	if err := w.zw.Close(); err != nil {
		w.discard()
		return zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error())
	}
	if err := w.file.Close(); err != nil {
		_ = os.Remove(w.tmp)
		return zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error())
	}
	if err := os.Rename(w.tmp, w.final); err != nil {
		_ = os.Remove(w.tmp)
		return zerr.Wrap(domain.ErrArchiveWriteFailed, err.Error())
	}
	return nil
}

// Abort discards the partially written archive. Calling Abort after a
// successful Close is a no-op.
func (w *Writer) Abort() error {
	if w.done {
		return nil
	}
	w.done = true
	w.discard()
	return nil
}

func (w *Writer) discard() {
	_ = w.file.Close()
	_ = os.Remove(w.tmp)
}
