package ocean_test

import (
	"fmt"
	"log"
	"os"

	"github.com/oceannotes/ocean"
	"github.com/oceannotes/ocean/pkg/core"
)

// Example_basic demonstrates opening a collection, creating a note, and
// finding it through search.
func Example_basic() {
	tmpDir, err := os.MkdirTemp("", "ocean-example-*")
	if err != nil {
		log.Fatal(err)
	}
	defer os.RemoveAll(tmpDir)

	store, err := ocean.Open(tmpDir)
	if err != nil {
		log.Fatal(err)
	}

	// A fresh collection is seeded with the welcome note.
	n := store.Create()
	store.Update(n.ID, core.Patch{
		Title: ocean.String("Groceries"),
		Body:  ocean.String("- milk\n- coffee"),
	})

	for _, hit := range store.Search("coffee") {
		fmt.Println(hit.Title)
	}
	// Output:
	// Groceries
}
