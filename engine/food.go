package engine

import (
	"math/rand/v2"

	"github.com/lixenwraith/crystal-snake/constants"
)

// Food is the single collectible cell
type Food struct {
	At     Point
	Active bool
}

// foodPlacer picks free cells for food: bounded rejection sampling first, then an
// exhaustive scan of free cells so a nearly full board never stalls a tick
type foodPlacer struct {
	cfg  *Config
	rng  *rand.Rand
	free []int // Scratch buffer reused across scans
}

func newFoodPlacer(cfg *Config, rng *rand.Rand) *foodPlacer {
	return &foodPlacer{cfg: cfg, rng: rng}
}

// place returns a cell not covered by s, or false when every cell is covered
func (f *foodPlacer) place(s *snake) (Point, bool) {
	cells := f.cfg.GridWidth * f.cfg.GridHeight
	if s.length() >= cells {
		return Point{}, false
	}

	attempts := f.cfg.FoodAttempts
	if attempts == 0 {
		attempts = constants.FoodSampleAttempts
	}
	for i := 0; i < attempts; i++ {
		p := f.cfg.CellPoint(f.rng.IntN(cells))
		if !s.occupies(p) {
			return p, true
		}
	}

	f.free = f.free[:0]
	for idx := 0; idx < cells; idx++ {
		if p := f.cfg.CellPoint(idx); !s.occupies(p) {
			f.free = append(f.free, idx)
		}
	}
	if len(f.free) == 0 {
		return Point{}, false
	}
	return f.cfg.CellPoint(f.free[f.rng.IntN(len(f.free))]), true
}

// newRand returns a PCG source for seed, time-based when seed is 0
func newRand(seed uint64, now func() int64) *rand.Rand {
	if seed == 0 {
		seed = uint64(now())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15))
}
