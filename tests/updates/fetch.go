package main

import (
	"context"
	"fmt"

	"tidify/config"
	"tidify/database"
)

// dumpTables prints every row of the three table documents, raw, for manual
// inspection of a deployment's datastore.
func dumpTables(ctx context.Context, store *database.Store) error {
	paths := []string{
		config.DataUsersPath,
		config.DataWorkersPath,
		config.DataBookingsPath,
	}
	for _, p := range paths {
		table, sha, err := store.Load(ctx, p)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", p, err)
		}
		if sha == "" {
			sha = "missing"
		}
		fmt.Printf("%s (sha %s): %d rows\n", p, sha, len(table.Rows))
		for _, raw := range table.Rows {
			fmt.Printf("  %s\n", raw)
		}
	}
	return nil
}
