package optimizer

import (
	"context"
	"fmt"

	"go.trai.ch/dose/internal/core/domain"
	"go.trai.ch/dose/internal/core/ports"
	"golang.org/x/sync/errgroup"
)

// Optimizer applies layer optimization across a whole print job.
type Optimizer struct {
	logger  ports.Logger
	tracer  ports.Tracer
	workers int
}

// New creates an Optimizer. workers bounds per-layer parallelism; values
// below 1 mean serial execution.
func New(logger ports.Logger, tracer ports.Tracer, workers int) *Optimizer {
	if workers < 1 {
		workers = 1
	}
	return &Optimizer{logger: logger, tracer: tracer, workers: workers}
}

// OptimizeJob rewrites every layer's image settings and returns the new job
// plus all composite masks created across layers. Layer count and order are
// preserved; layers with no image settings pass through unchanged. The
// input job and images mapping are never mutated.
func (o *Optimizer) OptimizeJob(
	ctx context.Context,
	job domain.PrintJob,
	images map[string]*domain.Mask,
) (domain.PrintJob, map[string]*domain.Mask, error) {
	ctx, span := o.tracer.Start(ctx, "optimize_job")
	defer span.End()

	layers := job.Layers()
	span.SetAttribute("layers", len(layers))

	results := make([][]domain.ImageSetting, len(layers))
	created := make([]map[string]*domain.Mask, len(layers))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.workers)

	for i, layer := range layers {
		g.Go(func() error {
			_, layerSpan := o.tracer.Start(ctx, fmt.Sprintf("optimize_layer_%d", i))
			defer layerSpan.End()

			optimized, newImages, err := OptimizeLayer(layer.Settings(), images, NewNamer(i))
			if err != nil {
				layerSpan.RecordError(err)
				return err
			}
			results[i] = optimized
			created[i] = newImages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return domain.PrintJob{}, nil, err
	}

	passesBefore, passesAfter := 0, 0
	newLayers := make([]domain.Layer, len(layers))
	newImages := make(map[string]*domain.Mask)
	for i, layer := range layers {
		passesBefore += len(layer.Settings())
		if len(layer.Settings()) == 0 {
			// Nothing to rewrite; keep the layer document untouched.
			newLayers[i] = layer
			continue
		}
		passesAfter += len(results[i])
		newLayers[i] = layer.WithSettings(results[i])
		for name, mask := range created[i] {
			newImages[name] = mask
		}
	}

	o.logger.Info(fmt.Sprintf(
		"optimized %d layers: %d passes -> %d passes",
		len(layers), passesBefore, passesAfter,
	))

	if len(newImages) == 0 {
		newImages = nil
	}
	return job.WithLayers(newLayers), newImages, nil
}
