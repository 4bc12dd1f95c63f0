// Package app implements the application layer for dose: the archive-level
// driver that reads a print job, optimizes it, and writes the new archive.
package app

import (
	"bytes"
	"context"
	"fmt"
	"sort"

	"go.trai.ch/dose/internal/adapters/telemetry"
	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/dose/internal/core/ports"
	"go.trai.ch/dose/internal/engine/optimizer"
	"go.trai.ch/zerr"
)

// App drives one print-file optimization run.
type App struct {
	configLoader ports.ConfigLoader
	opener       ports.ArchiveOpener
	creator      ports.ArchiveCreator
	settings     ports.SettingsCodec
	masks        ports.MaskCodec
	logger       ports.Logger
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	opener ports.ArchiveOpener,
	creator ports.ArchiveCreator,
	settings ports.SettingsCodec,
	masks ports.MaskCodec,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		opener:       opener,
		creator:      creator,
		settings:     settings,
		masks:        masks,
		logger:       log,
	}
}

// OptimizeOptions configuration for the Optimize method.
type OptimizeOptions struct {
	// OutputPath overrides the default derived output path.
	OutputPath string

	// Workers overrides the configured per-layer parallelism.
	Workers int

	// JSON switches log output to JSON lines.
	JSON bool
}

// Optimize reads the print-job archive at inputPath, rewrites every layer
// into its minimal pass schedule, and writes a new archive. It returns the
// output archive path. The input archive is never modified, and no output
// becomes visible at the final path unless the whole run succeeds.
func (a *App) Optimize(ctx context.Context, inputPath string, opts OptimizeOptions) (string, error) {
	if opts.JSON {
		a.logger.SetJSON(true)
	}

	cfg, err := a.configLoader.Load(".")
	if err != nil {
		return "", zerr.Wrap(err, "failed to load configuration")
	}
	if opts.Workers > 0 {
		cfg.Workers = opts.Workers
	}

	outputPath := opts.OutputPath
	if outputPath == "" {
		outputPath = domain.DefaultOutputPath(inputPath, cfg.OutputSuffix)
	}

	// Report span durations through the logger.
	telemetry.SetupProvider(telemetry.NewBridge(a.logger))
	tracer := telemetry.NewOTelTracer("dose")

	reader, err := a.opener.Open(inputPath)
	if err != nil {
		return "", err
	}
	defer reader.Close() //nolint:errcheck // Best effort close in defer

	data, err := reader.Settings()
	if err != nil {
		return "", err
	}
	job, err := a.settings.Decode(data)
	if err != nil {
		return "", err
	}

	images, err := a.loadMasks(reader, job, cfg)
	if err != nil {
		return "", err
	}
	a.logger.Info(fmt.Sprintf("loaded %d masks from %s", len(images), inputPath))

	if err := a.warnOrphanMasks(reader, job); err != nil {
		return "", err
	}

	engine := optimizer.New(a.logger, tracer, cfg.Workers)
	newJob, newImages, err := engine.OptimizeJob(ctx, job, images)
	if err != nil {
		return "", err
	}

	if err := a.writeArchive(reader, newJob, newImages, outputPath); err != nil {
		return "", err
	}
	a.logger.Info(fmt.Sprintf("wrote optimized archive %s", outputPath))
	return outputPath, nil
}

// loadMasks reads every mask referenced by the job from the archive's image
// store. A referenced mask missing from the store is fatal; an absent store
// with nothing referenced is an empty mapping.
func (a *App) loadMasks(
	reader ports.ArchiveReader,
	job domain.PrintJob,
	cfg domain.Config,
) (map[string]*domain.Mask, error) {
	images := make(map[string]*domain.Mask)
	for _, name := range job.ReferencedMasks() {
		rc, err := reader.OpenMask(name)
		if err != nil {
			return nil, err
		}
		mask, err := a.masks.Decode(rc)
		_ = rc.Close()
		if err != nil {
			return nil, zerr.With(err, "image", name)
		}
		if mask.Width != cfg.CanvasWidth || mask.Height != cfg.CanvasHeight {
			mismatch := zerr.With(zerr.Wrap(domain.ErrCanvasMismatch, "refusing to optimize"), "image", name)
			mismatch = zerr.With(mismatch, "mask", fmt.Sprintf("%dx%d", mask.Width, mask.Height))
			return nil, zerr.With(mismatch, "canvas", fmt.Sprintf("%dx%d", cfg.CanvasWidth, cfg.CanvasHeight))
		}
		images[name] = mask
	}
	return images, nil
}

// warnOrphanMasks reports image-store entries no setting references. Only
// referenced masks are carried into the output, so orphans silently vanish
// unless surfaced here.
func (a *App) warnOrphanMasks(reader ports.ArchiveReader, job domain.PrintJob) error {
	names, err := reader.MaskNames()
	if err != nil {
		return err
	}
	referenced := make(map[string]bool)
	for _, name := range job.ReferencedMasks() {
		referenced[name] = true
	}
	for _, name := range names {
		if !referenced[name] {
			a.logger.Warn(fmt.Sprintf("mask %s is not referenced by any layer and will not be carried over", name))
		}
	}
	return nil
}

// writeArchive produces the output archive: the re-encoded settings
// document, every still-referenced original mask copied verbatim, and every
// newly composed mask in the canonical raster format.
func (a *App) writeArchive(
	reader ports.ArchiveReader,
	job domain.PrintJob,
	newImages map[string]*domain.Mask,
	outputPath string,
) (err error) {
	encoded, err := a.settings.Encode(job)
	if err != nil {
		return err
	}

	writer, err := a.creator.Create(outputPath)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = writer.Abort()
		}
	}()

	if err = writer.PutSettings(encoded); err != nil {
		return err
	}

	for _, name := range job.ReferencedMasks() {
		if _, created := newImages[name]; created {
			continue
		}
		if err = a.copyMask(reader, writer, name); err != nil {
			return err
		}
	}

	// Deterministic entry order keeps output archives reproducible.
	created := make([]string, 0, len(newImages))
	for name := range newImages {
		created = append(created, name)
	}
	sort.Strings(created)
	for _, name := range created {
		var buf bytes.Buffer
		if err = a.masks.Encode(&buf, newImages[name]); err != nil {
			return err
		}
		if err = writer.PutMask(name, &buf); err != nil {
			return err
		}
	}

	return writer.Close()
}

// copyMask streams one original mask into the new archive unchanged.
func (a *App) copyMask(reader ports.ArchiveReader, writer ports.ArchiveWriter, name string) error {
	rc, err := reader.OpenMask(name)
	if err != nil {
		return err
	}
	defer rc.Close() //nolint:errcheck // Best effort close in defer
	return writer.PutMask(name, rc)
}
