package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRotate         // W, Up arrow - rotate the falling piece clockwise
	ActionLeft           // A, Left arrow - shift one column left
	ActionRight          // D, Right arrow - shift one column right
	ActionDrop           // S, Down arrow - soft drop one extra row
	ActionPause          // P - pause/unpause game
	ActionRestart        // R - restart game after game over
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionDrop:
		return "Drop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsMove reports whether the action steers the falling piece.
func (a Action) IsMove() bool {
	return a >= ActionRotate && a <= ActionDrop
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Move returns the movement action carried by this frame.
// When several are set the lowest-numbered one wins so the result does not
// depend on map iteration order.
func (f InputFrame) Move() Action {
	for a := ActionRotate; a <= ActionDrop; a++ {
		if f.Has(a) {
			return a
		}
	}
	return ActionNone
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// DefaultQueueSize bounds how many keystrokes an InputQueue keeps.
const DefaultQueueSize = 16

// InputQueue buffers movement actions between ticks in arrival order.
// One action is consumed per tick, the way a terminal input buffer is read
// one character at a time. When full, new actions are dropped.
type InputQueue struct {
	buf []Action
	max int
}

// NewInputQueue creates a queue holding at most size actions.
func NewInputQueue(size int) *InputQueue {
	if size <= 0 {
		size = DefaultQueueSize
	}
	return &InputQueue{
		buf: make([]Action, 0, size),
		max: size,
	}
}

// Push appends an action. It returns false if the queue was full.
func (q *InputQueue) Push(a Action) bool {
	if len(q.buf) >= q.max {
		return false
	}
	q.buf = append(q.buf, a)
	return true
}

// Pop removes and returns the oldest action, or ActionNone when empty.
func (q *InputQueue) Pop() Action {
	if len(q.buf) == 0 {
		return ActionNone
	}
	a := q.buf[0]
	copy(q.buf, q.buf[1:])
	q.buf = q.buf[:len(q.buf)-1]
	return a
}

// Len returns the number of buffered actions.
func (q *InputQueue) Len() int {
	return len(q.buf)
}

// Clear drops every buffered action.
func (q *InputQueue) Clear() {
	q.buf = q.buf[:0]
}
