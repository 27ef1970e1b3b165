package store

import "fmt"

// KV is the persistence interface for checked-state. Keys are flat strings,
// values are strings; both backends treat the data as advisory (last writer
// wins, no locking across processes).
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(key string) error
	// Keys returns every stored key with the given prefix.
	Keys(prefix string) ([]string, error)
}

// CheckKeyPrefix namespaces all checklist state in the KV store.
const CheckKeyPrefix = "checklist_"

// CheckKey builds the storage key for one item's checked state.
// The value under it is the string "true" or "false".
func CheckKey(checklistID, itemID string) string {
	return fmt.Sprintf("%s%s_%s", CheckKeyPrefix, checklistID, itemID)
}
