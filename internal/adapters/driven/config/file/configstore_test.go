package file

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
	_, err = os.Stat(store.Path())
	assert.True(t, os.IsNotExist(err), "file is created on first write")
}

func TestNewConfigStore_DefaultDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewConfigStore("")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".stylequote", "config.toml"), store.Path())
}

func TestNewConfigStore_NestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewConfigStore_MkdirError(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	_, err := NewConfigStore(filepath.Join(blocker, "sub"))

	assert.Error(t, err)
}

func TestNewConfigStore_CorruptFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte("][ not toml"), 0o600))

	_, err := NewConfigStore(tmpDir)

	assert.Error(t, err)
}

func TestConfigStore_ReadsNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	content := `
[enquiry]
recipient = "hello@example.com"
contact_name = "Jo"

[animation]
quote_ms = 900

[pricing]
express_multiplier = "1.3"

[pricing.base.airbnb]
2bed = 3400

[pricing.package]
premium = 1.6
`
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), []byte(content), 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "hello@example.com", store.GetString("enquiry.recipient"))
	assert.Equal(t, "Jo", store.GetString("enquiry.contact_name"))
	assert.Equal(t, 900, store.GetInt("animation.quote_ms"))
	assert.Equal(t, "1.3", store.GetString("pricing.express_multiplier"))

	base, ok := store.Get("pricing.base.airbnb.2bed")
	require.True(t, ok)
	assert.Equal(t, int64(3400), base)

	pkg, ok := store.Get("pricing.package.premium")
	require.True(t, ok)
	assert.InDelta(t, 1.6, pkg, 1e-9)
}

func TestConfigStore_WritesNestedTables(t *testing.T) {
	tmpDir := t.TempDir()
	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	require.NoError(t, store.Set("enquiry.recipient", "a@b.co"))
	require.NoError(t, store.Set("animation.counter_ms", int64(1200)))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[enquiry]")
	assert.Contains(t, string(raw), "[animation]")
	assert.NotContains(t, string(raw), "'enquiry.recipient'")
}

func TestConfigStore_PersistenceAcrossInstances(t *testing.T) {
	tmpDir := t.TempDir()
	first, err := NewConfigStore(tmpDir)
	require.NoError(t, err)
	require.NoError(t, first.Set("enquiry.business_name", "Fen Interiors"))
	require.NoError(t, first.Set("animation.quote_ms", int64(700)))
	require.NoError(t, first.Set("pricing.package.premium", "1.6"))

	second, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	assert.Equal(t, "Fen Interiors", second.GetString("enquiry.business_name"))
	assert.Equal(t, 700, second.GetInt("animation.quote_ms"))
	assert.Equal(t, "1.6", second.GetString("pricing.package.premium"))
}

func TestConfigStore_TypedGettersOnMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("n", int64(5)))
	require.NoError(t, store.Set("s", "text"))

	assert.Equal(t, "", store.GetString("n"))
	assert.Equal(t, 0, store.GetInt("s"))
	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("missing"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_GetInt_Float(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("animation.quote_ms", 1500.0))

	assert.Equal(t, 1500, store.GetInt("animation.quote_ms"))
}

func TestConfigStore_FilePermissions(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("enquiry.contact_name", "Jo"))

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigStore_EmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmpDir, "config.toml"), nil, 0o600))

	store, err := NewConfigStore(tmpDir)
	require.NoError(t, err)

	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestConfigStore_SetUnencodableValueRollsBack(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("k", "before"))

	err = store.Set("k", make(chan int))
	assert.Error(t, err)
	assert.Equal(t, "before", store.GetString("k"))

	err = store.Set("fresh", make(chan int))
	assert.Error(t, err)
	_, ok := store.Get("fresh")
	assert.False(t, ok)
}

func TestConfigStore_SetConflictingKeys(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("enquiry", "flat"))

	err = store.Set("enquiry.recipient", "a@b.co")

	assert.Error(t, err)
	_, ok := store.Get("enquiry.recipient")
	assert.False(t, ok)
}

func TestConfigStore_WriteError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, os.Mkdir(store.Path(), 0o700))

	assert.Error(t, store.Set("k", "v"))
	_, ok := store.Get("k")
	assert.False(t, ok)
}

func TestConfigStore_LoadReplacesMemory(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("a.b", "one"))
	require.NoError(t, os.WriteFile(store.Path(), []byte("[c]\nd = \"two\"\n"), 0o600))

	require.NoError(t, store.Load())

	_, ok := store.Get("a.b")
	assert.False(t, ok)
	assert.Equal(t, "two", store.GetString("c.d"))
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			key := "k" + string(rune('0'+id))
			_ = store.Set(key, int64(id))
			_ = store.GetInt(key)
			_, _ = store.Get(key)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 7, store.GetInt("k7"))
}

func TestNestKeys(t *testing.T) {
	tree, err := nestKeys(map[string]any{
		"a.b.c": 1,
		"a.d":   "x",
		"e":     true,
	})

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"a": map[string]any{
			"b": map[string]any{"c": 1},
			"d": "x",
		},
		"e": true,
	}, tree)
}

func TestFlattenInto(t *testing.T) {
	dst := map[string]any{}

	flattenInto(dst, map[string]any{
		"x": map[string]any{"y": map[string]any{"z": 1}},
		"w": 2,
	}, "")

	assert.Equal(t, map[string]any{"x.y.z": 1, "w": 2}, dst)
}
