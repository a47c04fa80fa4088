package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"time"

	"tidify/config"
	"tidify/database"
	"tidify/models"
	"tidify/utils"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

var errNoChanges = errors.New("no rows needed backfilling")

// Backfills id and created_at on legacy rows of users.json. Early deployments
// wrote rows without either field; the API tolerates that, but admin listings
// render better with both set. Safe to rerun.
//
//	go run ./tests/updates          backfill users.json
//	go run ./tests/updates -dump    print all three tables instead
func main() {
	dump := flag.Bool("dump", false, "print the datastore tables instead of backfilling")
	flag.Parse()

	_ = godotenv.Load()
	config.LoadConfig()
	if err := config.ValidateDatastore(); err != nil {
		log.Fatalf("Invalid datastore configuration: %v", err)
	}

	store := database.NewStore(database.NewClientFromConfig(&config.AppConfig))
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	if *dump {
		if err := dumpTables(ctx, store); err != nil {
			log.Fatalf("Failed to dump tables: %v", err)
		}
		return
	}

	// Rows are patched as raw maps so fields this build does not know about
	// survive the rewrite.
	patched := 0
	err := store.Update(ctx, config.DataUsersPath, func(table *models.Table) (string, error) {
		patched = 0 // the mutate may rerun on a write conflict
		for i, raw := range table.Rows {
			var row map[string]any
			if err := json.Unmarshal(raw, &row); err != nil {
				continue // leave undecodable rows alone
			}
			dirty := false
			if s, _ := row["id"].(string); s == "" {
				row["id"] = uuid.New().String()
				dirty = true
			}
			if s, _ := row["created_at"].(string); s == "" {
				row["created_at"] = utils.NowISO()
				dirty = true
			}
			if !dirty {
				continue
			}
			data, err := json.Marshal(row)
			if err != nil {
				return "", fmt.Errorf("failed to re-encode row %d: %w", i, err)
			}
			table.Rows[i] = data
			patched++
		}
		if patched == 0 {
			return "", errNoChanges
		}
		return fmt.Sprintf("Backfill ids on %d user rows", patched), nil
	})
	switch {
	case errors.Is(err, errNoChanges):
		fmt.Println("All user rows already carry id and created_at.")
	case err != nil:
		log.Fatalf("Failed to backfill users.json: %v", err)
	default:
		fmt.Printf("Backfilled %d user rows.\n", patched)
	}
}
