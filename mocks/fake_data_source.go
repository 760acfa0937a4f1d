//+build !release

package mocks

import (
	"sync"

	"github.com/iredun/ha-gismeteo/plugins/common"
	"github.com/iredun/ha-gismeteo/plugins/weather"
)

type fakeDataSource struct {
	sync.Mutex
	id        string
	data      weather.ISensorData
	success   bool
	listeners map[int]func()
	next      int
	unloaded  bool
}

func (f *fakeDataSource) UniqueID() string {
	return f.id
}

func (f *fakeDataSource) Gismeteo() weather.ISensorData {
	f.Lock()
	defer f.Unlock()
	return f.data
}

func (f *fakeDataSource) LastUpdateSuccess() bool {
	f.Lock()
	defer f.Unlock()
	return f.success
}

func (f *fakeDataSource) AddListener(l func()) common.Unsubscribe {
	f.Lock()
	defer f.Unlock()

	f.next++
	id := f.next
	f.listeners[id] = l
	return func() {
		f.Lock()
		defer f.Unlock()
		delete(f.listeners, id)
	}
}

func (f *fakeDataSource) Unload() {
	f.Lock()
	defer f.Unlock()
	f.unloaded = true
}

// Unloaded checks whether data source was unloaded.
func (f *fakeDataSource) Unloaded() bool {
	f.Lock()
	defer f.Unlock()
	return f.unloaded
}

// Update swaps data and notifies listeners.
func (f *fakeDataSource) Update(data weather.ISensorData, success bool) {
	f.Lock()
	f.data = data
	f.success = success
	listeners := make([]func(), 0, len(f.listeners))
	for _, v := range f.listeners {
		listeners = append(listeners, v)
	}
	f.Unlock()

	for _, v := range listeners {
		v()
	}
}

// FakeNewDataSource creates a fake coordinator.
// Nil data means snapshot without any values.
func FakeNewDataSource(id string, data weather.ISensorData) *fakeDataSource {
	if nil == data {
		data = &FakeWeatherData{}
	}

	return &fakeDataSource{
		id:        id,
		data:      data,
		success:   true,
		listeners: make(map[int]func()),
	}
}
