// Package color holds the committed picker color and notifies subscribers
// when it changes.
package color

// Store owns the committed State. Hue and the saturation/brightness pair are
// written by different controls and never in the same commit.
type Store struct {
	state State
	subs  map[int]func(State)
	next  int
}

func NewStore(initial State) *Store {
	return &Store{state: initial, subs: make(map[int]func(State))}
}

func (s *Store) State() State        { return s.state }
func (s *Store) Hue() float64        { return s.state.Hue }
func (s *Store) Saturation() float64 { return s.state.Saturation }
func (s *Store) Brightness() float64 { return s.state.Brightness }

// CommitHue overwrites the hue channel.
func (s *Store) CommitHue(h float64) {
	s.state.Hue = h
	s.publish()
}

// CommitSaturationBrightness overwrites both grid channels in one step.
func (s *Store) CommitSaturationBrightness(sat, bright float64) {
	s.state.Saturation = sat
	s.state.Brightness = bright
	s.publish()
}

// Subscribe registers fn to run after every commit. The returned function
// removes it.
func (s *Store) Subscribe(fn func(State)) (cancel func()) {
	id := s.next
	s.next++
	s.subs[id] = fn
	return func() { delete(s.subs, id) }
}

func (s *Store) publish() {
	for _, fn := range s.subs {
		fn(s.state)
	}
}
