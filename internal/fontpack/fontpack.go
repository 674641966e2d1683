// Package fontpack loads the three typeface sizes the generators draw
// with. A TrueType file can be supplied; when it is missing the embedded
// Go Bold face is used so a generation pass never fails on fonts alone.
package fontpack

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

// Face sizes in points, shared by all asset families.
const (
	SizeBig   = 48
	SizeMed   = 36
	SizeSmall = 24
)

// Pack bundles one font source and the three faces cut from it.
type Pack struct {
	// Name identifies the loaded font family, for logging.
	Name string

	Big   text.Face
	Med   text.Face
	Small text.Face

	source *text.FontSource
}

// Load opens the TrueType font at path and cuts the three standard faces.
// When path is empty or the file cannot be parsed, it falls back to the
// embedded Go Bold face and logs a warning.
func Load(log *slog.Logger, path string) (*Pack, error) {
	if path != "" {
		src, err := text.NewFontSourceFromFile(path)
		if err == nil {
			return newPack(src), nil
		}
		log.Warn("font unavailable, using embedded fallback", "path", path, "error", err)
	}

	src, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("fontpack: embedded fallback: %w", err)
	}
	return newPack(src), nil
}

func newPack(src *text.FontSource) *Pack {
	return &Pack{
		Name:   src.Name(),
		Big:    src.Face(SizeBig),
		Med:    src.Face(SizeMed),
		Small:  src.Face(SizeSmall),
		source: src,
	}
}

// Close releases the underlying font source. The faces must not be used
// after Close.
func (p *Pack) Close() error {
	return p.source.Close()
}
