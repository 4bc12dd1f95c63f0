package domain

import (
	"encoding/json"
	"sort"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/zerr"
)

// Wire-contract field names of the settings document. These must round-trip
// exactly; they are part of the printer's file format, not ours to rename.
const (
	// LayersKey is the top-level array of layers.
	LayersKey = "Layers"

	// ImageSettingsKey is the per-layer array of image settings.
	ImageSettingsKey = "Image settings list"

	// ImageFileKey names the mask file a setting projects.
	ImageFileKey = "Image file"

	// ExposureKey is the exposure duration of a setting in milliseconds.
	ExposureKey = "Layer exposure time (ms)"
)

// ImageSetting is one projector pass description: a mask file name, an
// exposure duration, and arbitrary other fields. The other fields define the
// setting's compatibility identity and are never modified by optimization.
type ImageSetting struct {
	doc *Object
}

// NewImageSetting wraps an ordered object as an image setting.
func NewImageSetting(doc *Object) ImageSetting {
	return ImageSetting{doc: doc}
}

// Doc returns the underlying ordered object.
func (s ImageSetting) Doc() *Object {
	return s.doc
}

// FileName returns the mask file name, or "" when the field is absent.
func (s ImageSetting) FileName() string {
	v, ok := s.doc.Get(ImageFileKey)
	if !ok {
		return ""
	}
	name, _ := v.(string)
	return name
}

// Exposure returns the exposure duration in milliseconds.
func (s ImageSetting) Exposure() (int64, error) {
	v, ok := s.doc.Get(ExposureKey)
	if !ok {
		return 0, zerr.With(zerr.Wrap(ErrInvalidExposure, "exposure field missing"), "image", s.FileName())
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, zerr.With(zerr.Wrap(ErrInvalidExposure, "exposure is not a number"), "image", s.FileName())
	}
	ms, err := num.Int64()
	if err != nil || ms < 0 {
		expErr := zerr.With(zerr.Wrap(ErrInvalidExposure, "exposure must be a non-negative integer"), "image", s.FileName())
		return 0, zerr.With(expErr, "value", num.String())
	}
	return ms, nil
}

// WithPass returns a copy of the setting rewritten for an emitted pass:
// same other fields, new mask file name and exposure duration.
func (s ImageSetting) WithPass(fileName string, exposureMS int64) ImageSetting {
	doc := s.doc.Clone()
	doc.Set(ImageFileKey, fileName)
	doc.Set(ExposureKey, json.Number(strconv.FormatInt(exposureMS, 10)))
	return ImageSetting{doc: doc}
}

// Fingerprint hashes every field except the mask file name and exposure
// duration. Settings with equal fingerprints are compatible for merging.
// Field order does not influence the hash; keys are visited sorted.
func (s ImageSetting) Fingerprint() uint64 {
	h := xxhash.New()
	keys := groupKeys(s.doc)
	sort.Strings(keys)
	for _, key := range keys {
		v, _ := s.doc.Get(key)
		_, _ = h.WriteString(key)
		_, _ = h.Write([]byte{0})
		hashValue(h, v)
		_, _ = h.Write([]byte{0})
	}
	return h.Sum64()
}

// GroupFieldsEqual reports whether two settings carry equal fields outside
// the mask file name and exposure duration. Equal fingerprints are necessary
// but not sufficient for merging; callers confirm with this check so a hash
// collision can never fuse incompatible settings.
func (s ImageSetting) GroupFieldsEqual(other ImageSetting) bool {
	keys := groupKeys(s.doc)
	otherKeys := groupKeys(other.doc)
	if len(keys) != len(otherKeys) {
		return false
	}
	for _, key := range keys {
		ov, ok := other.doc.Get(key)
		if !ok {
			return false
		}
		v, _ := s.doc.Get(key)
		if !valueEqual(v, ov) {
			return false
		}
	}
	return true
}

// groupKeys returns the keys of doc that participate in grouping identity.
func groupKeys(doc *Object) []string {
	keys := make([]string, 0, doc.Len())
	for _, f := range doc.Fields() {
		if f.Key == ImageFileKey || f.Key == ExposureKey {
			continue
		}
		keys = append(keys, f.Key)
	}
	return keys
}

// valueEqual compares two document values. Field order inside objects does
// not matter; numbers compare by their lexical form, matching hashValue.
func valueEqual(a, b Value) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && av.String() == bv.String()
	case []Value:
		bv, ok := b.([]Value)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !valueEqual(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv, ok := b.(*Object)
		if !ok || av.Len() != bv.Len() {
			return false
		}
		for _, f := range av.Fields() {
			inner, ok := bv.Get(f.Key)
			if !ok || !valueEqual(f.Value, inner) {
				return false
			}
		}
		return true
	}
	return false
}

// hashValue feeds a canonical form of v into the digest. Each value is
// prefixed by a type tag so e.g. the string "1" and the number 1 differ.
func hashValue(h *xxhash.Digest, v Value) {
	switch t := v.(type) {
	case nil:
		_, _ = h.Write([]byte{'n'})
	case bool:
		if t {
			_, _ = h.Write([]byte{'b', 1})
		} else {
			_, _ = h.Write([]byte{'b', 0})
		}
	case string:
		_, _ = h.Write([]byte{'s'})
		_, _ = h.WriteString(t)
	case json.Number:
		_, _ = h.Write([]byte{'d'})
		_, _ = h.WriteString(t.String())
	case []Value:
		_, _ = h.Write([]byte{'a'})
		for _, item := range t {
			hashValue(h, item)
			_, _ = h.Write([]byte{0})
		}
	case *Object:
		_, _ = h.Write([]byte{'o'})
		keys := make([]string, 0, t.Len())
		for _, f := range t.Fields() {
			keys = append(keys, f.Key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			inner, _ := t.Get(key)
			_, _ = h.WriteString(key)
			_, _ = h.Write([]byte{0})
			hashValue(h, inner)
			_, _ = h.Write([]byte{0})
		}
	}
}

// Layer is one layer of a print job.
type Layer struct {
	doc *Object
}

// Doc returns the underlying ordered object.
func (l Layer) Doc() *Object {
	return l.doc
}

// Settings returns the layer's image settings in document order. A missing
// or empty list yields nil.
func (l Layer) Settings() []ImageSetting {
	v, ok := l.doc.Get(ImageSettingsKey)
	if !ok {
		return nil
	}
	items, ok := v.([]Value)
	if !ok {
		return nil
	}
	settings := make([]ImageSetting, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(*Object); ok {
			settings = append(settings, ImageSetting{doc: obj})
		}
	}
	return settings
}

// WithSettings returns a copy of the layer whose image settings list is
// replaced. Every other layer field is preserved verbatim.
func (l Layer) WithSettings(settings []ImageSetting) Layer {
	doc := l.doc.Clone()
	items := make([]Value, len(settings))
	for i, s := range settings {
		items[i] = s.doc
	}
	doc.Set(ImageSettingsKey, items)
	return Layer{doc: doc}
}

// PrintJob is a decoded settings document: an ordered sequence of layers
// plus any top-level vendor fields.
type PrintJob struct {
	doc *Object
}

// NewPrintJob wraps an ordered object as a print job.
func NewPrintJob(doc *Object) PrintJob {
	return PrintJob{doc: doc}
}

// Doc returns the underlying ordered object.
func (j PrintJob) Doc() *Object {
	return j.doc
}

// Layers returns the job's layers in document order.
func (j PrintJob) Layers() []Layer {
	v, ok := j.doc.Get(LayersKey)
	if !ok {
		return nil
	}
	items, ok := v.([]Value)
	if !ok {
		return nil
	}
	layers := make([]Layer, 0, len(items))
	for _, item := range items {
		if obj, ok := item.(*Object); ok {
			layers = append(layers, Layer{doc: obj})
		}
	}
	return layers
}

// WithLayers returns a copy of the job whose layers array is replaced.
// Layer count and order are the caller's responsibility; top-level fields
// are preserved verbatim.
func (j PrintJob) WithLayers(layers []Layer) PrintJob {
	doc := j.doc.Clone()
	items := make([]Value, len(layers))
	for i, l := range layers {
		items[i] = l.doc
	}
	doc.Set(LayersKey, items)
	return PrintJob{doc: doc}
}

// ReferencedMasks returns the distinct mask file names referenced anywhere
// in the job, in first-reference order.
func (j PrintJob) ReferencedMasks() []string {
	seen := make(map[string]bool)
	var names []string
	for _, layer := range j.Layers() {
		for _, s := range layer.Settings() {
			name := s.FileName()
			if name == "" || seen[name] {
				continue
			}
			seen[name] = true
			names = append(names, name)
		}
	}
	return names
}
