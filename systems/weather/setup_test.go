package weather

import (
	"testing"

	"github.com/iredun/ha-gismeteo/mocks"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/systems/entries"
	"github.com/iredun/ha-gismeteo/systems/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type addCall struct {
	entities []weather.IEntity
	update   bool
}

func recorder(calls *[]addCall) func([]weather.IEntity, bool) {
	return func(e []weather.IEntity, u bool) {
		*calls = append(*calls, addCall{entities: e, update: u})
	}
}

// Tests setup of the imported entry.
func TestSetupImport(t *testing.T) {
	reg := registry.NewRegistry(map[string]map[string]interface{}{
		"home_sweet_home": nil,
		"office":          {"name": "Main office"},
	})
	reg.Add("entry", "home_sweet_home", mocks.FakeNewDataSource("1-1", nil))
	reg.Add("entry", "office", mocks.FakeNewDataSource("2-2", nil))

	calls := make([]addCall, 0)
	err := SetupEntry(reg, entries.NewEntry("Import", entries.SourceImport, "", nil), recorder(&calls))
	require.NoError(t, err)

	require.Equal(t, 1, len(calls))
	assert.False(t, calls[0].update)
	require.Equal(t, 2, len(calls[0].entities))
	assert.Equal(t, "Home sweet home", calls[0].entities[0].Name())
	assert.Equal(t, "1-1", calls[0].entities[0].UniqueID())
	assert.Equal(t, "Main office", calls[0].entities[1].Name())
}

// Tests setup of the user entry.
func TestSetupUser(t *testing.T) {
	reg := registry.NewRegistry(nil)
	reg.Add("entry", "entry", mocks.FakeNewDataSource("55.75-37.62", nil))

	e := entries.NewEntry("Home", entries.SourceUser, "55.75-37.62",
		map[string]interface{}{"name": "Home", "token": "abc"})
	e.EntryID = "entry"
	e.Options["name"] = "Cottage"

	calls := make([]addCall, 0)
	require.NoError(t, SetupEntry(reg, e, recorder(&calls)))
	require.Equal(t, 1, len(calls))
	require.Equal(t, 1, len(calls[0].entities))
	assert.Equal(t, "Cottage", calls[0].entities[0].Name())
	assert.Equal(t, "55.75-37.62", calls[0].entities[0].UniqueID())
}

// Tests per-location isolation on missing coordinator.
func TestSetupMissingCoordinator(t *testing.T) {
	reg := registry.NewRegistry(map[string]map[string]interface{}{
		"home":   nil,
		"office": nil,
	})
	reg.Add("entry", "office", mocks.FakeNewDataSource("2-2", nil))

	calls := make([]addCall, 0)
	err := SetupEntry(reg, entries.NewEntry("Import", entries.SourceImport, "", nil), recorder(&calls))
	assert.IsType(t, &registry.ErrMissingCoordinator{}, err)

	require.Equal(t, 1, len(calls))
	require.Equal(t, 1, len(calls[0].entities))
	assert.Equal(t, "Office", calls[0].entities[0].Name())
}
