package steps

import "sort"

// textLabel is a Label backed by a string the renderer reads.
type textLabel struct {
	text string
}

func (l *textLabel) SetText(text string) {
	l.text = text
}

// toggle is a Toggle backed by a visibility flag.
type toggle struct {
	active bool
}

func (t *toggle) SetActive(active bool) {
	t.active = active
}

// blockScene records the tiles that have a block spawned on them.
// Spawn is called in ascending index order by the controller.
type blockScene struct {
	blocks []int
}

func (s *blockScene) Clear() {
	s.blocks = s.blocks[:0]
}

func (s *blockScene) Spawn(index int) {
	s.blocks = append(s.blocks, index)
}

// Has reports whether a block exists at index.
func (s *blockScene) Has(index int) bool {
	i := sort.SearchInts(s.blocks, index)
	return i < len(s.blocks) && s.blocks[i] == index
}

// Range returns the block indices in [from, to).
func (s *blockScene) Range(from, to int) []int {
	lo := sort.SearchInts(s.blocks, from)
	hi := sort.SearchInts(s.blocks, to)
	if lo >= hi {
		return nil
	}
	return s.blocks[lo:hi]
}
