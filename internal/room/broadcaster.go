package room

// Broadcaster delivers events to connected clients. The websocket hub
// implements it; tests substitute a recorder. The two methods encode the
// delivery contract: Broadcast is room-wide and public, SendTo is private to
// a single connection and must never be widened.
type Broadcaster interface {
	Broadcast(roomCode, event string, data any)
	SendTo(connID, event string, data any)
}

// noopBroadcaster is used until a real broadcaster is wired in.
type noopBroadcaster struct{}

func (noopBroadcaster) Broadcast(string, string, any) {}
func (noopBroadcaster) SendTo(string, string, any)    {}
