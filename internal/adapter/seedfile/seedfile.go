// Package seedfile supplies the catalog seed: either an Avro
// snapshot file written by cmd/seedgen, or the built-in mock
// products when no snapshot is configured.
package seedfile

import (
	"fmt"
	"log/slog"

	"github.com/spf13/afero"

	"github.com/hovixy/storefront/internal/core/domain"
	"github.com/hovixy/storefront/internal/core/port"
	"github.com/hovixy/storefront/pkg/schema"
)

var _ port.CatalogSource = (*Source)(nil)

type Source struct {
	fs   afero.Fs
	path string
}

// New returns a source reading the snapshot at path; an empty path
// means the built-in seed.
func New(fs afero.Fs, path string) Source {
	return Source{fs: fs, path: path}
}

func (s Source) Load() ([]domain.Product, error) {
	const op = "seedfile.Source.Load"

	if s.path == "" {
		return Builtin(), nil
	}

	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	records, err := schema.DecodeCatalogV1(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	slog.Info("catalog snapshot loaded", "op", op, "path", s.path, "nProducts", len(records))
	return FromRecords(records), nil
}

// ToRecords maps domain products to the snapshot schema.
func ToRecords(ps []domain.Product) []schema.ProductV1 {
	out := make([]schema.ProductV1, 0, len(ps))
	for _, p := range ps {
		out = append(out, schema.ProductV1{
			ProductID:     p.ProductID,
			Name:          p.Name,
			Description:   p.Description,
			Price:         p.Price,
			OriginalPrice: p.OriginalPrice,
			Image:         p.Image,
			Category:      p.Category,
			Rating:        p.Rating,
			Stock:         p.Stock,
			Tags:          p.Tags,
			Features:      p.Features,
		})
	}
	return out
}

// FromRecords maps snapshot records back to domain products.
func FromRecords(rs []schema.ProductV1) []domain.Product {
	out := make([]domain.Product, 0, len(rs))
	for _, r := range rs {
		out = append(out, domain.Product{
			ProductID:     r.ProductID,
			Name:          r.Name,
			Description:   r.Description,
			Price:         r.Price,
			OriginalPrice: r.OriginalPrice,
			Image:         r.Image,
			Category:      r.Category,
			Rating:        r.Rating,
			Stock:         r.Stock,
			Tags:          r.Tags,
			Features:      r.Features,
		})
	}
	return out
}
