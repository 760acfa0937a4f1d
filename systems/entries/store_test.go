package entries

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/iredun/ha-gismeteo/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tempFile(t *testing.T) (string, func()) {
	dir, err := ioutil.TempDir("", "entries")
	require.NoError(t, err)
	return filepath.Join(dir, "entries.yaml"), func() { os.RemoveAll(dir) } // nolint: errcheck
}

func newStore(t *testing.T, file string) *Store {
	s, err := NewStore(&ConstructStore{Logger: mocks.FakeNewLogger(nil), File: file})
	require.NoError(t, err)
	return s
}

// Tests adding entries.
func TestAdd(t *testing.T) {
	s := newStore(t, "")

	e, err := s.Add(NewEntry("Home", SourceUser, "1-2", map[string]interface{}{"name": "Home"}))
	require.NoError(t, err)
	assert.NotEmpty(t, e.EntryID)

	_, err = s.Add(NewEntry("Other", SourceUser, "1-2", nil))
	assert.IsType(t, &ErrAlreadyConfigured{}, err)

	_, err = s.Add(NewEntry("Legacy", SourceImport, "", nil))
	require.NoError(t, err)
	_, err = s.Add(NewEntry("Legacy 2", SourceImport, "", nil))
	require.NoError(t, err)

	assert.Equal(t, 3, len(s.List()))
	assert.Equal(t, 2, len(s.FindBySource(SourceImport)))
	assert.Equal(t, "Home", s.FindByUniqueID("1-2").Title)
	assert.Nil(t, s.FindByUniqueID("3-4"))
}

// Tests that returned entries are copies.
func TestGetReturnsCopy(t *testing.T) {
	s := newStore(t, "")
	e, err := s.Add(NewEntry("Home", SourceUser, "", map[string]interface{}{"name": "Home"}))
	require.NoError(t, err)

	e.Data["name"] = "Changed"
	stored, err := s.Get(e.EntryID)
	require.NoError(t, err)
	assert.Equal(t, "Home", stored.Data["name"])

	_, err = s.Get("missing")
	assert.IsType(t, &ErrEntryNotFound{}, err)
}

// Tests options update and listeners.
func TestUpdateOptions(t *testing.T) {
	s := newStore(t, "")
	e, err := s.Add(NewEntry("Home", SourceUser, "", map[string]interface{}{"name": "Home"}))
	require.NoError(t, err)

	var received *ConfigEntry
	unsub := s.AddUpdateListener(e.EntryID, func(entry *ConfigEntry) {
		received = entry
	})

	updated, err := s.UpdateOptions(e.EntryID, map[string]interface{}{"platform.sensor": false})
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"platform.sensor": false}, updated.Options)
	assert.Equal(t, "Home", updated.Title)
	require.NotNil(t, received)
	assert.Equal(t, updated.Options, received.Options)

	unsub()
	received = nil
	_, err = s.UpdateOptions(e.EntryID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Nil(t, received)

	_, err = s.UpdateOptions("missing", nil)
	assert.Error(t, err)
}

// Tests removing entries.
func TestRemove(t *testing.T) {
	s := newStore(t, "")
	e1, _ := s.Add(NewEntry("One", SourceUser, "1", nil))
	e2, _ := s.Add(NewEntry("Two", SourceUser, "2", nil))

	require.NoError(t, s.Remove(e1.EntryID))
	assert.Error(t, s.Remove(e1.EntryID))

	list := s.List()
	require.Equal(t, 1, len(list))
	assert.Equal(t, e2.EntryID, list[0].EntryID)
}

// Tests that entries survive restart.
func TestPersistence(t *testing.T) {
	file, cleanup := tempFile(t)
	defer cleanup()

	s := newStore(t, file)
	e, err := s.Add(NewEntry("Home", SourceUser, "55.75-37.62", map[string]interface{}{
		"name":          "Home",
		"token":         "abc",
		"latitude":      55.75,
		"longitude":     37.62,
		"forecast_days": 3,
	}))
	require.NoError(t, err)
	_, err = s.UpdateOptions(e.EntryID, map[string]interface{}{"platform.sensor": false})
	require.NoError(t, err)

	restored := newStore(t, file)
	list := restored.List()
	require.Equal(t, 1, len(list))

	expected, _ := s.Get(e.EntryID)
	if diff := cmp.Diff(expected, list[0]); diff != "" {
		t.Errorf("restored entry mismatch (-want +got):\n%s", diff)
	}
}

// Tests broken entries file.
func TestBrokenFile(t *testing.T) {
	file, cleanup := tempFile(t)
	defer cleanup()

	require.NoError(t, ioutil.WriteFile(file, []byte("entry_id: [1"), 0600))
	_, err := NewStore(&ConstructStore{Logger: mocks.FakeNewLogger(nil), File: file})
	assert.Error(t, err)
}
