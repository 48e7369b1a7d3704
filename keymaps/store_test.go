package keymaps

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	input := strings.Join([]string{
		"# Keyboard to Touch Mapping Configuration",
		"",
		"hold_triggers_continuous_tap=1",
		"30 400 300 A",
		"57 10 20 Space Bar",
		"garbage line",
		"31 x 3 S",
		"32 7 8",
		"   ",
	}, "\n")

	snap, err := Decode(strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, ContinuousTap, snap.Policy)
	assert.Equal(t, []Entry{
		{Key: 30, Mapping: KeyMapping{X: 400, Y: 300, Label: "A"}},
		{Key: 57, Mapping: KeyMapping{X: 10, Y: 20, Label: "Space Bar"}},
		{Key: 32, Mapping: KeyMapping{X: 7, Y: 8, Label: ""}},
	}, snap.Entries)
}

func TestDecode_HoldOptionValues(t *testing.T) {
	tests := map[string]HoldPolicy{
		"hold_triggers_continuous_tap=0":     MaintainContact,
		"hold_triggers_continuous_tap=1":     ContinuousTap,
		"hold_triggers_continuous_tap=true":  ContinuousTap,
		"hold_triggers_continuous_tap=false": MaintainContact,
	}
	for line, want := range tests {
		snap, err := Decode(strings.NewReader(line))
		require.NoError(t, err)
		assert.Equal(t, want, snap.Policy, line)
	}
}

func TestEncode_Format(t *testing.T) {
	var sb strings.Builder
	err := Encode(&sb, Snapshot{
		Policy: ContinuousTap,
		Entries: []Entry{
			{Key: 30, Mapping: KeyMapping{X: 400, Y: 300, Label: "A"}},
		},
	})
	require.NoError(t, err)

	out := sb.String()
	assert.True(t, strings.HasPrefix(out, "# "))
	assert.Contains(t, out, "\nhold_triggers_continuous_tap=1\n")
	assert.True(t, strings.HasSuffix(out, "30 400 300 A\n"))
}

func TestStore_SaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "mappings.txt")
	store := NewStore(path)

	want := Snapshot{
		Policy: ContinuousTap,
		Entries: []Entry{
			{Key: 30, Mapping: KeyMapping{X: 400, Y: 300, Label: "A"}},
			{Key: 57, Mapping: KeyMapping{X: 1, Y: 2, Label: "Space Bar"}},
		},
	}
	require.NoError(t, store.Save(want))

	got, err := NewStore(path).Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestStore_LoadMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.txt"))

	snap, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, snap.Entries)
	assert.Equal(t, MaintainContact, snap.Policy)
}

func TestStore_SaveSkipsUnchangedContent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.txt")
	store := NewStore(path)
	snap := Snapshot{Entries: []Entry{{Key: 30, Mapping: KeyMapping{X: 1, Y: 1, Label: "A"}}}}

	require.NoError(t, store.Save(snap))
	require.NoError(t, os.WriteFile(path, []byte("edited elsewhere\n"), 0644))

	// Same content as the last save: the external edit is left alone.
	require.NoError(t, store.Save(snap))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "edited elsewhere\n", string(data))
}

func TestStore_SaveUnwritablePath(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, nil, 0644))

	store := NewStore(filepath.Join(blocker, "mappings.txt"))
	err := store.Save(Snapshot{})
	assert.ErrorIs(t, err, ErrPersistence)
}

func TestStore_WatchReloadsExternalEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mappings.txt")
	store := NewStore(path)
	require.NoError(t, store.Save(Snapshot{}))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var got []Snapshot
	go func() {
		_ = store.Watch(ctx, func(s Snapshot) {
			mu.Lock()
			got = append(got, s)
			mu.Unlock()
		})
	}()

	// Give the watcher time to register before editing.
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("30 5 6 A\n"), 0644))

	assert.Eventually(t, func() bool {
		mu.Lock()
		defer mu.Unlock()
		return len(got) == 1 && len(got[0].Entries) == 1 && got[0].Entries[0].Key == 30
	}, 3*time.Second, 20*time.Millisecond)
}
