// Package road generates the tile track a round is played on and decides
// whether a landing position ends the round.
package road

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// Tile is one position along the track.
type Tile uint8

const (
	Solid Tile = iota
	Gap
)

// String returns a human-readable name for the tile.
func (t Tile) String() string {
	switch t {
	case Solid:
		return "Solid"
	case Gap:
		return "Gap"
	default:
		return fmt.Sprintf("Tile(%d)", uint8(t))
	}
}

// Track is the ordered sequence of tiles for one round.
// Index 0 is the start tile.
type Track []Tile

// RandomBit returns 0 or 1.
type RandomBit func() int

// ErrDoubleGap is returned by Validate when two gaps are adjacent.
var ErrDoubleGap = errors.New("road: consecutive gap tiles")

// ErrGapStart is returned by Validate when the start tile is not solid.
var ErrGapStart = errors.New("road: start tile is a gap")

// Generate builds a track of the given length. The first tile is solid and
// a gap is always followed by a solid tile; every other tile is solid or a
// gap depending on bit. A non-positive length yields an empty track.
func Generate(length int, bit RandomBit) Track {
	if length <= 0 {
		return Track{}
	}

	track := make(Track, length)
	track[0] = Solid
	for i := 1; i < length; i++ {
		if track[i-1] == Gap {
			track[i] = Solid
			continue
		}
		if bit()&1 == 1 {
			track[i] = Gap
		} else {
			track[i] = Solid
		}
	}
	return track
}

// BitsFromRand adapts a *rand.Rand into a RandomBit.
func BitsFromRand(rng *rand.Rand) RandomBit {
	return func() int {
		return rng.Intn(2)
	}
}

// SeededBits returns a reproducible RandomBit for the given seed.
func SeededBits(seed int64) RandomBit {
	return BitsFromRand(rand.New(rand.NewSource(seed)))
}

// Len returns the number of tiles.
func (t Track) Len() int {
	return len(t)
}

// At returns the tile at index i and whether i is on the track.
func (t Track) At(i int) (Tile, bool) {
	if i < 0 || i >= len(t) {
		return Gap, false
	}
	return t[i], true
}

// Solids returns the indices of the solid tiles, in order.
func (t Track) Solids() []int {
	idx := make([]int, 0, len(t))
	for i, tile := range t {
		if tile == Solid {
			idx = append(idx, i)
		}
	}
	return idx
}

// Gaps returns the number of gap tiles.
func (t Track) Gaps() int {
	n := 0
	for _, tile := range t {
		if tile == Gap {
			n++
		}
	}
	return n
}

// Validate checks the track invariants: solid start, no adjacent gaps.
func (t Track) Validate() error {
	if len(t) == 0 {
		return nil
	}
	if t[0] != Solid {
		return ErrGapStart
	}
	for i := 1; i < len(t); i++ {
		if t[i-1] == Gap && t[i] == Gap {
			return fmt.Errorf("%w at index %d", ErrDoubleGap, i)
		}
	}
	return nil
}

// String renders the track with '#' for solid tiles and '_' for gaps.
func (t Track) String() string {
	var sb strings.Builder
	sb.Grow(len(t))
	for _, tile := range t {
		if tile == Gap {
			sb.WriteByte('_')
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

// Parse reads a track written by String. Unknown characters are rejected.
func Parse(s string) (Track, error) {
	track := make(Track, 0, len(s))
	for i, r := range s {
		switch r {
		case '#':
			track = append(track, Solid)
		case '_':
			track = append(track, Gap)
		default:
			return nil, fmt.Errorf("road: invalid tile %q at %d", r, i)
		}
	}
	return track, nil
}
