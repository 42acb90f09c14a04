package main

import (
	"fmt"
	"os"

	"github.com/nida1khurram/school-fee-app/app/config"
	"github.com/nida1khurram/school-fee-app/app/storage"
)

// reinit resets the fee record store to an empty 12-column file, backing up
// the existing data first.
func main() {
	config.Load()
	store := storage.NewRecordStore(config.Get().RecordsFile)

	backup, err := store.Reinitialize()
	if err != nil {
		fmt.Printf("Error reinitializing record store: %v\n", err)
		os.Exit(1)
	}

	if backup != "" {
		fmt.Printf("Created backup: %s\n", backup)
	}
	fmt.Printf("Record store reinitialized: %s\n", store.Path())
}
