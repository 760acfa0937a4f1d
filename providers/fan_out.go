package providers

// MsgEntityUpdate contains ID of the entity which state has changed.
type MsgEntityUpdate struct {
	ID      string
	Removed bool
}

// IFanOutProvider defines interface used for distributing
// entity updates across all subscribers.
type IFanOutProvider interface {
	SubscribeEntityUpdates() (int64, chan *MsgEntityUpdate)
	UnSubscribeEntityUpdates(int64)
	ChannelInEntityUpdates() chan *MsgEntityUpdate
}

// IInternalFanOutProvider adds shutdown capability used by the server itself.
type IInternalFanOutProvider interface {
	IFanOutProvider
	Stop()
}
