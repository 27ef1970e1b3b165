package checklist

import (
	"strconv"

	"pretrade/internal/model"
	"pretrade/internal/store"
)

// Restore applies saved checked-state to a checklist's items. Items with no
// saved key keep their current (default) state.
func Restore(kv store.KV, c *model.Checklist) error {
	for i := range c.Items {
		v, ok, err := kv.Get(store.CheckKey(c.ID, c.Items[i].ID))
		if err != nil {
			return err
		}
		if ok {
			c.Items[i].Checked = v == "true"
		}
	}
	return nil
}

// RestoreAll restores every checklist in place.
func RestoreAll(kv store.KV, lists []model.Checklist) error {
	for i := range lists {
		if err := Restore(kv, &lists[i]); err != nil {
			return err
		}
	}
	return nil
}

// SetChecked updates one item and writes its state through to the store.
func SetChecked(kv store.KV, c *model.Checklist, itemID string, checked bool) error {
	it := c.Item(itemID)
	if it == nil {
		return nil
	}
	it.Checked = checked
	return kv.Set(store.CheckKey(c.ID, itemID), strconv.FormatBool(checked))
}

// Toggle flips one item's state and persists it, returning the new state.
func Toggle(kv store.KV, c *model.Checklist, itemID string) (bool, error) {
	it := c.Item(itemID)
	if it == nil {
		return false, nil
	}
	if err := SetChecked(kv, c, itemID, !it.Checked); err != nil {
		return false, err
	}
	return it.Checked, nil
}

// Prune deletes stored checklist keys that no current definition owns.
// Items removed from a definition otherwise leave their keys behind forever.
func Prune(kv store.KV, lists []model.Checklist) (int, error) {
	valid := map[string]bool{}
	for _, c := range lists {
		for _, it := range c.Items {
			valid[store.CheckKey(c.ID, it.ID)] = true
		}
	}
	keys, err := kv.Keys(store.CheckKeyPrefix)
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, k := range keys {
		if valid[k] {
			continue
		}
		if err := kv.Delete(k); err != nil {
			return removed, err
		}
		removed++
	}
	return removed, nil
}
