package checklist

import (
	"testing"

	"github.com/go-playground/assert/v2"

	"pretrade/internal/model"
	"pretrade/internal/store"
)

type memKV map[string]string

func (m memKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}
func (m memKV) Set(key, value string) error { m[key] = value; return nil }
func (m memKV) Delete(key string) error     { delete(m, key); return nil }
func (m memKV) Keys(prefix string) ([]string, error) {
	var out []string
	for k := range m {
		if len(k) >= len(prefix) && k[:len(prefix)] == prefix {
			out = append(out, k)
		}
	}
	return out, nil
}

func TestToggleThenRestoreRoundTrip(t *testing.T) {
	kv := memKV{}
	c := card(
		model.ChecklistItem{ID: "a", Required: true},
		model.ChecklistItem{ID: "b"},
	)
	_, err := Toggle(kv, &c, "a")
	assert.Equal(t, nil, err)
	assert.Equal(t, true, c.Items[0].Checked)
	assert.Equal(t, "true", kv["checklist_c1_a"])

	// Simulate a reload: fresh card with server defaults, restore from store.
	fresh := card(
		model.ChecklistItem{ID: "a", Required: true},
		model.ChecklistItem{ID: "b"},
	)
	assert.Equal(t, nil, Restore(kv, &fresh))
	assert.Equal(t, true, fresh.Items[0].Checked)
	assert.Equal(t, false, fresh.Items[1].Checked)
}

func TestRestoreIgnoresAbsentKeys(t *testing.T) {
	kv := memKV{"checklist_c1_b": "false"}
	c := card(
		model.ChecklistItem{ID: "a", Checked: true}, // server-rendered default
		model.ChecklistItem{ID: "b", Checked: true},
	)
	assert.Equal(t, nil, Restore(kv, &c))
	assert.Equal(t, true, c.Items[0].Checked)  // no key: default kept
	assert.Equal(t, false, c.Items[1].Checked) // stored "false" applied
}

func TestSetCheckedWritesStringBool(t *testing.T) {
	kv := memKV{}
	c := card(model.ChecklistItem{ID: "a"})
	assert.Equal(t, nil, SetChecked(kv, &c, "a", true))
	assert.Equal(t, "true", kv["checklist_c1_a"])
	assert.Equal(t, nil, SetChecked(kv, &c, "a", false))
	assert.Equal(t, "false", kv["checklist_c1_a"])
}

func TestSetCheckedUnknownItemIsNoop(t *testing.T) {
	kv := memKV{}
	c := card(model.ChecklistItem{ID: "a"})
	assert.Equal(t, nil, SetChecked(kv, &c, "nope", true))
	assert.Equal(t, 0, len(kv))
}

func TestPruneRemovesOnlyStaleKeys(t *testing.T) {
	kv := memKV{
		store.CheckKey("c1", "a"):    "true",
		store.CheckKey("c1", "gone"): "true",
		store.CheckKey("old", "x"):   "false",
		"unrelated":                  "keep",
	}
	lists := []model.Checklist{card(model.ChecklistItem{ID: "a"})}
	removed, err := Prune(kv, lists)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, removed)
	assert.Equal(t, "true", kv[store.CheckKey("c1", "a")])
	assert.Equal(t, "keep", kv["unrelated"])
}
