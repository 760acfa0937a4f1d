package state

import (
	"sync"
	"testing"

	"github.com/iredun/ha-gismeteo/mocks"
	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
	"github.com/iredun/ha-gismeteo/plugins/weather/enums"
	"github.com/iredun/ha-gismeteo/providers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEntity struct {
	sync.Mutex
	uid      string
	name     string
	platform enums.Platform
	state    interface{}
	listener func()
	unsubbed bool
}

func (e *fakeEntity) UniqueID() string { return e.uid }
func (e *fakeEntity) Name() string { return e.name }
func (e *fakeEntity) Platform() enums.Platform { return e.platform }
func (e *fakeEntity) Available() bool { return true }
func (e *fakeEntity) State() interface{} { return e.state }
func (e *fakeEntity) Attributes() map[string]interface{} { return map[string]interface{}{"a": 1} }

func (e *fakeEntity) AddListener(l func()) common.Unsubscribe {
	e.Lock()
	defer e.Unlock()
	e.listener = l
	return func() {
		e.Lock()
		defer e.Unlock()
		e.unsubbed = true
	}
}

func (e *fakeEntity) fire() {
	e.Lock()
	l := e.listener
	e.Unlock()
	l()
}

func newRegistry() (*Registry, providers.IFanOutProvider) {
	fo := mocks.FakeNewFanOut()
	return NewRegistry(&ConstructRegistry{Logger: mocks.FakeNewLogger(nil), FanOut: fo}), fo
}

func drain(fo providers.IFanOutProvider) []*providers.MsgEntityUpdate {
	result := make([]*providers.MsgEntityUpdate, 0)
	for {
		select {
		case m := <-fo.ChannelInEntityUpdates():
			result = append(result, m)
		default:
			return result
		}
	}
}

// Tests adding entities.
func TestAddEntities(t *testing.T) {
	r, fo := newRegistry()
	w := &fakeEntity{uid: "1-2", name: "Home", platform: enums.PlatformWeather, state: "sunny"}
	s := &fakeEntity{uid: "1-2-temperature", name: "Home Temperature", platform: enums.PlatformSensor, state: 1.5}

	r.AddEntities("entry")([]weather.IEntity{w, s}, false)
	assert.Equal(t, []string{"sensor.home_temperature", "weather.home"}, r.IDs())
	assert.Equal(t, 2, len(drain(fo)))

	st, ok := r.State("weather.home")
	require.True(t, ok)
	assert.Equal(t, "sunny", st.State)
	assert.Equal(t, "entry", st.EntryID)
	assert.Equal(t, "weather", st.Platform)
	assert.Equal(t, "1-2", st.UniqueID)

	_, ok = r.State("weather.missing")
	assert.False(t, ok)

	e, ok := r.Get("sensor.home_temperature")
	require.True(t, ok)
	assert.Equal(t, s, e)
}

// Tests entity IDs collisions and duplicated unique IDs.
func TestDuplicates(t *testing.T) {
	r, _ := newRegistry()
	add := r.AddEntities("entry")

	add([]weather.IEntity{&fakeEntity{uid: "1", name: "Home", platform: enums.PlatformWeather}}, false)
	add([]weather.IEntity{&fakeEntity{uid: "2", name: "Home", platform: enums.PlatformWeather}}, false)
	add([]weather.IEntity{&fakeEntity{uid: "2", name: "Other", platform: enums.PlatformWeather}}, false)

	assert.Equal(t, []string{"weather.home", "weather.home_2"}, r.IDs())
}

// Tests entity updates publishing.
func TestEntityUpdate(t *testing.T) {
	r, fo := newRegistry()
	w := &fakeEntity{uid: "1", name: "Home", platform: enums.PlatformWeather}
	r.AddEntities("entry")([]weather.IEntity{w}, true)
	drain(fo)

	w.fire()
	msgs := drain(fo)
	require.Equal(t, 1, len(msgs))
	assert.Equal(t, "weather.home", msgs[0].ID)
	assert.False(t, msgs[0].Removed)
}

// Tests removing entry entities.
func TestRemoveEntry(t *testing.T) {
	r, fo := newRegistry()
	w1 := &fakeEntity{uid: "1", name: "Home", platform: enums.PlatformWeather}
	w2 := &fakeEntity{uid: "2", name: "Office", platform: enums.PlatformWeather}
	r.AddEntities("entry1")([]weather.IEntity{w1}, false)
	r.AddEntities("entry2")([]weather.IEntity{w2}, false)
	drain(fo)

	r.RemoveEntry("entry1")
	assert.Equal(t, []string{"weather.office"}, r.IDs())
	assert.True(t, w1.unsubbed)
	assert.False(t, w2.unsubbed)

	msgs := drain(fo)
	require.Equal(t, 1, len(msgs))
	assert.True(t, msgs[0].Removed)

	r.AddEntities("entry1")([]weather.IEntity{w1}, false)
	assert.Equal(t, 2, len(r.States()))
}

type disabledEntity struct {
	fakeEntity
}

func (e *disabledEntity) EnabledDefault() bool { return false }

// Tests entities disabled by default.
func TestDisabledEntities(t *testing.T) {
	r, fo := newRegistry()
	w := &fakeEntity{uid: "1", name: "Home", platform: enums.PlatformWeather}
	d := &disabledEntity{fakeEntity{uid: "1-uv", name: "Home UV index", platform: enums.PlatformSensor, state: 2.0}}

	r.AddEntities("entry")([]weather.IEntity{w, d}, false)
	msgs := drain(fo)
	require.Equal(t, 1, len(msgs))
	assert.Equal(t, "weather.home", msgs[0].ID)

	assert.Equal(t, []string{"weather.home"}, r.IDs())
	assert.Equal(t, []string{"sensor.home_uv_index"}, r.Disabled())
	assert.Equal(t, 1, len(r.States()))
	_, ok := r.State("sensor.home_uv_index")
	assert.False(t, ok)
	_, ok = r.Get("sensor.home_uv_index")
	assert.False(t, ok)
	assert.Nil(t, d.listener)

	assert.False(t, r.Enable("sensor.missing"))
	require.True(t, r.Enable("sensor.home_uv_index"))
	assert.True(t, r.Enable("sensor.home_uv_index"))
	msgs = drain(fo)
	require.Equal(t, 1, len(msgs))
	assert.Equal(t, "sensor.home_uv_index", msgs[0].ID)

	st, ok := r.State("sensor.home_uv_index")
	require.True(t, ok)
	assert.Equal(t, 2.0, st.State)
	assert.Empty(t, r.Disabled())

	d.fire()
	assert.Equal(t, 1, len(drain(fo)))

	r.RemoveEntry("entry")
	assert.True(t, d.unsubbed)
	assert.Equal(t, 2, len(drain(fo)))
}

// Tests that removed disabled entities are not published.
func TestRemoveDisabled(t *testing.T) {
	r, fo := newRegistry()
	d := &disabledEntity{fakeEntity{uid: "1-uv", name: "Home UV index", platform: enums.PlatformSensor}}
	r.AddEntities("entry")([]weather.IEntity{d}, false)

	r.RemoveEntry("entry")
	assert.Empty(t, drain(fo))
	assert.Empty(t, r.Disabled())
	assert.False(t, d.unsubbed)
}
