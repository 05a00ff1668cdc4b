package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/export/jsonl"
	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/source/folder"
	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/exporta-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/exporta-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/exporta-cli/internal/core/domain"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driven"
	"github.com/custodia-labs/exporta-cli/internal/core/ports/driving"
	"github.com/custodia-labs/exporta-cli/internal/core/services"
	"github.com/custodia-labs/exporta-cli/internal/logger"
)

func main() {
	os.Exit(run())
}

func run() int {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	// The catalog is best effort; when the database cannot be opened,
	// an in-memory store keeps the run working for its own duration.
	var catalogStore driven.CatalogStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("catalog database unavailable, records will not persist: %v", err)
		catalogStore = memory.NewCatalogStore()
	} else {
		catalogStore = store
		defer store.Close()
	}

	factory := func(inputDir string, recursive bool) (driving.Converter, driven.DocumentSource, error) {
		source := folder.New(inputDir, recursive)
		converter := services.NewConvertService(source, jsonl.New(), catalogStore)
		return converter, source, nil
	}

	cli.Configure(&cli.Config{
		Converter:   factory,
		Catalog:     services.NewCatalogService(catalogStore),
		ConfigStore: configStore,
	})

	if err := cli.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, domain.ErrNoDocuments) {
			return 2
		}
		return 1
	}
	return 0
}
