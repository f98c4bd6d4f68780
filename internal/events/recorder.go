package events

import "sync"

// Recorder is a listener that keeps every event it sees, in order
type Recorder struct {
	mu       sync.Mutex
	id       string
	priority int
	events   []Event
}

// NewRecorder creates a recorder listener
func NewRecorder(id string) *Recorder {
	return &Recorder{id: id, priority: 1000}
}

func (r *Recorder) HandleEvent(event Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *Recorder) Priority() int { return r.priority }
func (r *Recorder) ID() string    { return r.id }

// Events returns a copy of everything recorded
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event{}, r.events...)
}

// OfType returns the recorded events of one type
func (r *Recorder) OfType(eventType EventType) []Event {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Event
	for _, e := range r.events {
		if e.GetType() == eventType {
			out = append(out, e)
		}
	}
	return out
}
