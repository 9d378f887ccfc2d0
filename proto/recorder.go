package proto

// Direction of a recorded envelope
type Direction string

// revive:exported
const (
	DirectionSend Direction = "send"
	DirectionRecv Direction = "recv"
)

// Recorder observes every envelope crossing the channel, used by the
// trace store. Implementations must be safe for concurrent calls and
// must not block the read loop for long.
type Recorder interface {
	Record(dir Direction, env *Envelope)
}

// NopRecorder discards everything
type NopRecorder struct{}

// Record does nothing
func (NopRecorder) Record(Direction, *Envelope) {}
