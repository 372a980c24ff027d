package schema_test

import (
	"testing"

	"github.com/hamba/avro/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hovixy/storefront/pkg/schema"
)

func TestCatalogV1(t *testing.T) {
	t.Run("SchemaParses", func(t *testing.T) {
		require.NotPanics(t, func() {
			_ = schema.CatalogV1Avro()
		})
	})

	t.Run("SnapshotRoundtrip", func(t *testing.T) {
		in := []schema.ProductV1{
			{
				ProductID:     "1",
				Name:          "Quantum Laptop X1",
				Description:   "Next-gen computing",
				Price:         2999.99,
				OriginalPrice: 3499.99,
				Image:         "https://example.com/laptop.jpg",
				Category:      "Electronics",
				Rating:        4.8,
				Stock:         15,
				Tags:          []string{"quantum", "laptop"},
				Features:      []string{"Quantum CPU"},
			},
			{
				ProductID: "3",
				Name:      "Solar Jacket",
				Price:     249.99,
				Category:  "Fashion",
				Rating:    4.4,
				Stock:     50,
				Tags:      []string{},
				Features:  []string{},
			},
		}

		data, err := schema.EncodeCatalogV1(in)
		require.NoError(t, err)

		out, err := schema.DecodeCatalogV1(data)
		require.NoError(t, err)

		require.Len(t, out, 2)
		assert.Equal(t, in[0], out[0])
		assert.Equal(t, "3", out[1].ProductID)
		assert.Zero(t, out[1].OriginalPrice)
	})

	t.Run("GarbageFailsDecode", func(t *testing.T) {
		_, err := schema.DecodeCatalogV1([]byte("not avro"))
		assert.Error(t, err)
	})

	t.Run("EmptyCatalog", func(t *testing.T) {
		data, err := avro.Marshal(schema.CatalogV1Avro(), []schema.ProductV1{})
		require.NoError(t, err)

		out, err := schema.DecodeCatalogV1(data)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
