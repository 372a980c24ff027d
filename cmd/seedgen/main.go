// Seedgen writes the built-in catalog seed to an Avro snapshot file
// that the storefront can load via the catalog_snapshot config key.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/pflag"

	"github.com/hovixy/storefront/internal/adapter/seedfile"
	"github.com/hovixy/storefront/pkg/schema"
)

func main() {
	out := pflag.String("out", "catalog.avro", "snapshot output path")
	pflag.Parse()

	seed := seedfile.Builtin()

	data, err := schema.EncodeCatalogV1(seedfile.ToRecords(seed))
	if err != nil {
		fail(err)
	}

	if err := afero.WriteFile(afero.NewOsFs(), *out, data, 0o644); err != nil {
		fail(err)
	}

	fmt.Printf("wrote %d products to %s\n", len(seed), *out)
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "seedgen:", err)
	os.Exit(1)
}
