package schema

import "github.com/hamba/avro/v2"

const CatalogSchemaTextV1 = `{
	"type": "array",
	"items": {
		"type": "record",
		"namespace": "storefront",
		"name": "product",
		"fields": [
			{"name": "product_id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "description", "type": "string"},
			{"name": "price", "type": "double"},
			{"name": "original_price", "type": "double"},
			{"name": "image", "type": "string"},
			{"name": "category", "type": "string"},
			{"name": "rating", "type": "double"},
			{"name": "stock", "type": "long"},
			{"name": "tags", "type": {"type": "array", "items": "string"}},
			{"name": "features", "type": {"type": "array", "items": "string"}}
		]
	}
}`

type ProductV1 struct {
	ProductID     string   `avro:"product_id"`
	Name          string   `avro:"name"`
	Description   string   `avro:"description"`
	Price         float64  `avro:"price"`
	OriginalPrice float64  `avro:"original_price"`
	Image         string   `avro:"image"`
	Category      string   `avro:"category"`
	Rating        float64  `avro:"rating"`
	Stock         int      `avro:"stock"`
	Tags          []string `avro:"tags"`
	Features      []string `avro:"features"`
}

// CatalogV1Avro returns the parsed catalog snapshot schema.
// Panics on an invalid schema text.
func CatalogV1Avro() avro.Schema {
	return avro.MustParse(CatalogSchemaTextV1)
}
