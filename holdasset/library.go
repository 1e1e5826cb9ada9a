package holdasset

import (
	"bytes"
	"embed"
	"fmt"
	"io/fs"
	"strings"

	"go.uber.org/zap"

	"github.com/benoitkugler/speedwall/internal/memo"
	"github.com/benoitkugler/speedwall/wallerr"
)

// Loader provides the raw SVG text of a hold type.
type Loader interface {
	LoadAsset(holdType string) ([]byte, error)
}

// MapLoader serves assets from memory, keyed by type tag (case insensitive).
type MapLoader map[string]string

func (m MapLoader) LoadAsset(holdType string) ([]byte, error) {
	key := normalizeType(holdType)
	for k, v := range m {
		if normalizeType(k) == key {
			return []byte(v), nil
		}
	}
	return nil, fs.ErrNotExist
}

// FSLoader reads <type>.svg files, lower cased, from FS.
type FSLoader struct {
	FS fs.FS
}

func (l FSLoader) LoadAsset(holdType string) ([]byte, error) {
	return fs.ReadFile(l.FS, strings.ToLower(normalizeType(holdType))+".svg")
}

//go:embed assets/*.svg
var defaultAssets embed.FS

// Defaults returns a loader for the assets of the builtin hold types.
func Defaults() Loader {
	sub, err := fs.Sub(defaultAssets, "assets")
	if err != nil {
		panic(err)
	}
	return FSLoader{FS: sub}
}

// Library loads, parses and memoizes hold assets and their configurations.
// The zero value is not usable; use NewLibrary.
type Library struct {
	loader Loader
	types  *Types
	mode   ErrorMode
	log    *zap.Logger

	assets  memo.Cache[*Asset]
	configs memo.Cache[TypeConfig]
}

// Option customizes a Library.
type Option func(*Library)

// WithTypes replaces the builtin type table.
func WithTypes(t *Types) Option { return func(l *Library) { l.types = t } }

// WithErrorMode sets how unknown SVG elements are handled (default IgnoreErrorMode).
func WithErrorMode(mode ErrorMode) Option { return func(l *Library) { l.mode = mode } }

// WithLogger sets the logger used for parse warnings.
func WithLogger(log *zap.Logger) Option { return func(l *Library) { l.log = log } }

func NewLibrary(loader Loader, opts ...Option) *Library {
	l := &Library{loader: loader, types: BuiltinTypes, log: zap.NewNop()}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Asset returns the parsed asset of holdType. Each call returns
// a fresh copy of the cached value.
func (l *Library) Asset(holdType string) (*Asset, error) {
	key := normalizeType(holdType)
	asset, err := l.assets.GetOrPopulate(key, func() (*Asset, error) {
		content, err := l.loader.LoadAsset(key)
		if err != nil {
			if wallerr.KindOf(err) != nil {
				return nil, err
			}
			return nil, wallerr.New(wallerr.ErrUnknownHoldType, "no asset for %q (%s)", holdType, err)
		}
		asset, err := parse(bytes.NewReader(content), l.mode, l.log.With(zap.String("holdType", key)))
		if err != nil {
			return nil, fmt.Errorf("hold asset %s: %w", key, err)
		}
		l.log.Debug("parsed hold asset", zap.String("holdType", key),
			zap.Bool("shape", asset.Shape != nil), zap.Int("auxiliary", len(asset.Auxiliary)))
		return asset, nil
	})
	if err != nil {
		return nil, err
	}
	return asset.Clone(), nil
}

// TypeConfig returns the static configuration of holdType.
func (l *Library) TypeConfig(holdType string) (TypeConfig, error) {
	key := normalizeType(holdType)
	return l.configs.GetOrPopulate(key, func() (TypeConfig, error) {
		return l.types.Lookup(key)
	})
}

// RestAngle implements rotation.RestAngles.
func (l *Library) RestAngle(holdType string) (float64, error) {
	c, err := l.TypeConfig(holdType)
	if err != nil {
		return 0, err
	}
	return c.RestAngle, nil
}

// ClearCache drops every memoized asset and configuration.
func (l *Library) ClearCache() {
	l.assets.Clear()
	l.configs.Clear()
}
