package engine

import "github.com/kamstrup/intmap"

// snake holds the ordered segments (head first) and a cell occupancy index kept in
// lockstep with them
type snake struct {
	cfg      *Config
	body     []Point
	occupied *intmap.Map[int, struct{}]
}

func newSnake(cfg *Config) *snake {
	return &snake{
		cfg:      cfg,
		occupied: intmap.New[int, struct{}](cfg.InitialLength),
	}
}

// reset replaces the body with a copy of segments
func (s *snake) reset(segments []Point) {
	s.occupied.Clear()
	s.body = append(s.body[:0], segments...)
	for _, p := range s.body {
		s.occupied.Put(s.cfg.CellIndex(p), struct{}{})
	}
}

func (s *snake) head() Point {
	return s.body[0]
}

func (s *snake) length() int {
	return len(s.body)
}

// occupies reports whether any segment sits on p; p must be on the board
func (s *snake) occupies(p Point) bool {
	_, ok := s.occupied.Get(s.cfg.CellIndex(p))
	return ok
}

// prepend adds a new head; caller guarantees p is on the board and free
func (s *snake) prepend(p Point) {
	s.body = append(s.body, Point{})
	copy(s.body[1:], s.body)
	s.body[0] = p
	s.occupied.Put(s.cfg.CellIndex(p), struct{}{})
}

// popTail removes the last segment
func (s *snake) popTail() {
	last := len(s.body) - 1
	s.occupied.Del(s.cfg.CellIndex(s.body[last]))
	s.body = s.body[:last]
}

// segments returns a copy safe to hand to other goroutines
func (s *snake) segments() []Point {
	out := make([]Point, len(s.body))
	copy(out, s.body)
	return out
}
