// Command reclassify re-runs role classification over every stored
// result. Useful after editing the role profiles: new labels are
// merged into each record's category without removing existing ones.
package main

import (
	"flag"
	"log"
	"strings"

	"resume-extractor/internal/classify"
	"resume-extractor/internal/storage"
)

func main() {
	var dryRun bool
	var storePath string
	flag.BoolVar(&dryRun, "dry-run", true, "If true, do not persist updates; just print changes")
	flag.StringVar(&storePath, "store", "results.json", "Path to the JSON results store")
	flag.Parse()

	store, err := storage.NewStore(storePath)
	if err != nil {
		log.Fatalf("failed to open store: %v", err)
	}

	classifier, err := classify.New()
	if err != nil {
		log.Fatalf("failed to load role profiles: %v", err)
	}

	results, err := store.All()
	if err != nil {
		log.Fatalf("failed to read results: %v", err)
	}
	log.Printf("Loaded %d results from %s", len(results), storePath)

	updated := 0
	for _, r := range results {
		classification := classifier.Classify(r.Data.Skills)

		var missing []string
		current := r.Category
		for _, label := range classification.Labels {
			if current.Merge(label) {
				missing = append(missing, label)
			}
		}
		if len(missing) == 0 {
			continue
		}

		log.Printf("%s (%s): adding %s", r.ID, r.Filename, strings.Join(missing, ", "))
		if dryRun {
			continue
		}
		for _, label := range missing {
			if err := store.UpdateCategory(r.ID, label); err != nil {
				log.Printf("update failed for %s: %v", r.ID, err)
			}
		}
		updated++
	}

	if dryRun {
		log.Printf("Dry run complete; rerun with -dry-run=false to persist")
		return
	}
	log.Printf("Updated %d results", updated)
}
