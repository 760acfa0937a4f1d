//+build !release

package mocks

import (
	"github.com/iredun/ha-gismeteo/providers"
)

type fakeFanOut struct {
	inEntityUpdates chan *providers.MsgEntityUpdate
}

func (f *fakeFanOut) SubscribeEntityUpdates() (int64, chan *providers.MsgEntityUpdate) {
	return 1, f.inEntityUpdates
}

func (f *fakeFanOut) UnSubscribeEntityUpdates(int64) {
}

func (f *fakeFanOut) ChannelInEntityUpdates() chan *providers.MsgEntityUpdate {
	return f.inEntityUpdates
}

// FakeNewFanOut creates a fan-out which echoes published messages to the subscriber.
func FakeNewFanOut() providers.IFanOutProvider {
	return &fakeFanOut{
		inEntityUpdates: make(chan *providers.MsgEntityUpdate, 100),
	}
}
