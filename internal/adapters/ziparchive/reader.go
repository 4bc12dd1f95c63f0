// Package ziparchive implements the archive ports over zip containers.
package ziparchive

import (
	"archive/zip"
	"io"
	"path"
	"strings"

	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/dose/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ArchiveReader = (*Reader)(nil)
	_ ports.ArchiveOpener = (*Opener)(nil)
)

// Reader reads a print-job archive from a zip file.
type Reader struct {
	path   string
	rc     *zip.ReadCloser
	byName map[string]*zip.File
}

// Opener implements ports.ArchiveOpener for zip files on disk.
type Opener struct{}

// NewOpener creates a new Opener.
func NewOpener() *Opener {
	return &Opener{}
}

// Open opens the zip archive at path for reading.
func (o *Opener) Open(archivePath string) (ports.ArchiveReader, error) {
	rc, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrArchiveOpenFailed, err.Error()), "path", archivePath)
	}

	byName := make(map[string]*zip.File, len(rc.File))
	for _, f := range rc.File {
		byName[f.Name] = f
	}
	return &Reader{path: archivePath, rc: rc, byName: byName}, nil
}

// Settings returns the raw settings document bytes.
func (r *Reader) Settings() ([]byte, error) {
	f, ok := r.byName[domain.SettingsFileName]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrSettingsNotFound, domain.SettingsFileName+" missing"), "path", r.path)
	}
	return readAll(f)
}

// MaskNames lists the image-store entries. An archive without an image
// store yields an empty list; an empty-layer job has no masks to load.
func (r *Reader) MaskNames() ([]string, error) {
	prefix := domain.SlicesDirName + "/"
	var names []string
	for _, f := range r.rc.File {
		if !strings.HasPrefix(f.Name, prefix) || f.FileInfo().IsDir() {
			continue
		}
		names = append(names, strings.TrimPrefix(f.Name, prefix))
	}
	return names, nil
}

// OpenMask opens the named image-store entry for reading.
func (r *Reader) OpenMask(name string) (io.ReadCloser, error) {
	f, ok := r.byName[path.Join(domain.SlicesDirName, name)]
	if !ok {
		notFound := zerr.With(zerr.Wrap(domain.ErrMaskNotFound, "no such entry in the image store"), "image", name)
		return nil, zerr.With(notFound, "path", r.path)
	}
	rc, err := f.Open()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrArchiveOpenFailed, err.Error()), "image", name)
	}
	return rc, nil
}

// Close releases the underlying zip file.
func (r *Reader) Close() error {
	return r.rc.Close()
}

func readAll(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, zerr.Wrap(domain.ErrArchiveOpenFailed, err.Error())
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, zerr.Wrap(domain.ErrArchiveOpenFailed, err.Error())
	}
	return data, nil
}
