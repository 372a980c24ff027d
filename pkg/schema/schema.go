// Package schema defines the Avro snapshot format for the product
// catalog and its encode/decode helpers.
package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

// EncodeCatalogV1 serializes a catalog snapshot.
func EncodeCatalogV1(ps []ProductV1) ([]byte, error) {
	const op = "EncodeCatalogV1"

	data, err := avro.Marshal(CatalogV1Avro(), ps)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return data, nil
}

// DecodeCatalogV1 deserializes a catalog snapshot.
func DecodeCatalogV1(data []byte) ([]ProductV1, error) {
	const op = "DecodeCatalogV1"

	var ps []ProductV1
	if err := avro.Unmarshal(CatalogV1Avro(), data, &ps); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}
