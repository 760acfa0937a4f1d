// Package fanout contains implementation of pub-sub fanout channels.
package fanout

import (
	"math/rand"
	"sync"

	"github.com/iredun/ha-gismeteo/providers"
	"github.com/iredun/ha-gismeteo/utils"
)

// Subscriber channel buffer size.
const bufferSize = 50

// Implements IInternalFanOutProvider.
type provider struct {
	sync.Mutex

	inEntityUpdates  chan *providers.MsgEntityUpdate
	outEntityUpdates map[int64]chan *providers.MsgEntityUpdate

	done chan struct{}
	once sync.Once
}

// NewFanOut constructs new FanOut provider.
func NewFanOut() providers.IInternalFanOutProvider {
	p := &provider{
		inEntityUpdates:  make(chan *providers.MsgEntityUpdate, bufferSize),
		outEntityUpdates: make(map[int64]chan *providers.MsgEntityUpdate),
		done:             make(chan struct{}),
	}

	go p.internalCycle()
	return p
}

// SubscribeEntityUpdates allows to subscribe to the entities updates.
func (p *provider) SubscribeEntityUpdates() (int64, chan *providers.MsgEntityUpdate) {
	p.Lock()
	defer p.Unlock()

	c := make(chan *providers.MsgEntityUpdate, bufferSize)
	rnd := p.getID()
	p.outEntityUpdates[rnd] = c
	return rnd, c
}

// UnSubscribeEntityUpdates allows to un-subscribe from the entities updates.
func (p *provider) UnSubscribeEntityUpdates(id int64) {
	p.Lock()
	defer p.Unlock()

	c, ok := p.outEntityUpdates[id]
	if !ok {
		return
	}

	close(c)
	delete(p.outEntityUpdates, id)
}

// ChannelInEntityUpdates returns input channel for the entities updates.
func (p *provider) ChannelInEntityUpdates() chan *providers.MsgEntityUpdate {
	return p.inEntityUpdates
}

// Stop closes all subscribers and stops broadcasting.
func (p *provider) Stop() {
	p.once.Do(func() {
		close(p.done)

		p.Lock()
		defer p.Unlock()
		for k, v := range p.outEntityUpdates {
			close(v)
			delete(p.outEntityUpdates, k)
		}
	})
}

// Returns random ID.
func (p *provider) getID() int64 {
	for {
		id := utils.TimeNow() + rand.Int63()
		if _, ok := p.outEntityUpdates[id]; !ok {
			return id
		}
	}
}

func (p *provider) internalCycle() {
	for {
		select {
		case <-p.done:
			return
		case u := <-p.inEntityUpdates:
			p.entityUpdates(u)
		}
	}
}

// Broadcasts entity updates.
// Slow subscribers lose messages instead of blocking others.
func (p *provider) entityUpdates(update *providers.MsgEntityUpdate) {
	p.Lock()
	defer p.Unlock()

	for _, v := range p.outEntityUpdates {
		select {
		case v <- update:
		default:
		}
	}
}
