package store

import (
	"testing"

	"github.com/go-playground/assert/v2"
)

func TestJSONKVRoundTrip(t *testing.T) {
	dir := t.TempDir()
	kv, err := OpenJSON(dir)
	assert.Equal(t, nil, err)

	assert.Equal(t, nil, kv.Set(CheckKey("c1", "a"), "true"))

	// Reopen to prove it hit disk.
	kv2, err := OpenJSON(dir)
	assert.Equal(t, nil, err)
	v, found, err := kv2.Get(CheckKey("c1", "a"))
	assert.Equal(t, nil, err)
	assert.Equal(t, true, found)
	assert.Equal(t, "true", v)
}

func TestJSONKVMissingKey(t *testing.T) {
	kv, err := OpenJSON(t.TempDir())
	assert.Equal(t, nil, err)
	_, found, err := kv.Get("nope")
	assert.Equal(t, nil, err)
	assert.Equal(t, false, found)
}

func TestJSONKVDelete(t *testing.T) {
	kv, err := OpenJSON(t.TempDir())
	assert.Equal(t, nil, err)
	assert.Equal(t, nil, kv.Set("k", "v"))
	assert.Equal(t, nil, kv.Delete("k"))
	_, found, _ := kv.Get("k")
	assert.Equal(t, false, found)
	// deleting again is fine
	assert.Equal(t, nil, kv.Delete("k"))
}

func TestJSONKVKeysPrefix(t *testing.T) {
	kv, err := OpenJSON(t.TempDir())
	assert.Equal(t, nil, err)
	kv.Set(CheckKey("c1", "a"), "true")
	kv.Set(CheckKey("c2", "b"), "false")
	kv.Set("other", "x")

	keys, err := kv.Keys(CheckKeyPrefix)
	assert.Equal(t, nil, err)
	assert.Equal(t, []string{"checklist_c1_a", "checklist_c2_b"}, keys)
}

func TestCheckKeyFormat(t *testing.T) {
	assert.Equal(t, "checklist_pre-trade_rrr", CheckKey("pre-trade", "rrr"))
}
