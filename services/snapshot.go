// services/snapshot.go
package services

import (
	"encoding/json"
	"log"
	"os"

	"carwash-backend/models"
)

// SnapshotStore keeps a local JSON copy of the sales list so the records view
// can fall back to the last known data when the database is unreachable. An
// absent or malformed snapshot loads as an empty list, never an error.
type SnapshotStore struct {
	path string
}

func NewSnapshotStore(path string) *SnapshotStore {
	return &SnapshotStore{path: path}
}

// Save overwrites the snapshot with the given sales list.
func (s *SnapshotStore) Save(sales []models.Sale) error {
	data, err := json.Marshal(sales)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Load returns the last saved sales list, or an empty list if the snapshot
// is missing or unreadable.
func (s *SnapshotStore) Load() []models.Sale {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return []models.Sale{}
	}

	var sales []models.Sale
	if err := json.Unmarshal(data, &sales); err != nil {
		log.Printf("Ignoring malformed sales snapshot at %s: %v", s.path, err)
		return []models.Sale{}
	}
	if sales == nil {
		sales = []models.Sale{}
	}
	return sales
}
