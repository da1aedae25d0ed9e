package web

// Event is a control message sent by a client.
type Event = uint8

const (
	KeepAlive Event = 254
	Closing   Event = 255
)

// Type is the first byte of every message sent to a client.
type Type = uint8

const (
	// Frame carries a full frame: the cache slot (uint16 little endian)
	// followed by 3 bytes of RGB per pixel.
	Frame Type = iota
	// FrameSkip repeats the previous frame.
	FrameSkip
	// FrameCache repeats the frame held in the given cache slot.
	FrameCache
	// ClientInfo carries the client's ID, sent once on connect.
	ClientInfo
)
