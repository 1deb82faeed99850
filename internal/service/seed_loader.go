package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/AdamBeresnev/op-bracket/internal/seed"
)

// ResolveSeed picks the bracket to serve. A seed file always wins. Otherwise
// name is looked up in the catalog first, then among the presets. With a
// catalog, whatever came from a file or preset is imported and read back, so
// the served bracket is the stored one.
//
// catalog may be nil when no database is configured.
func ResolveSeed(ctx context.Context, catalog *CatalogService, name, file string) (*seed.Definition, error) {
	var def *seed.Definition
	var err error

	switch {
	case file != "":
		def, err = seed.LoadFile(file)
	case catalog != nil:
		b, loadErr := catalog.Load(ctx, name)
		if loadErr == nil {
			return &seed.Definition{Name: name, Bracket: b}, nil
		}
		if !errors.Is(loadErr, ErrBracketNotFound) {
			return nil, loadErr
		}
		def, err = seed.Preset(name)
	default:
		def, err = seed.Preset(name)
	}
	if err != nil {
		return nil, err
	}

	if catalog == nil {
		return def, nil
	}

	if _, err := catalog.Import(ctx, def); err != nil {
		return nil, fmt.Errorf("import %q: %w", def.Name, err)
	}
	b, err := catalog.Load(ctx, def.Name)
	if err != nil {
		return nil, err
	}
	return &seed.Definition{Name: def.Name, Bracket: b, Warnings: def.Warnings}, nil
}
