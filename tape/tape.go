// Package tape implements an unbounded byte tape addressed by signed cell
// indices. Cells are stored in a single slice; offset maps a logical index to
// its slot, so the tape can grow at either end without moving the head.
package tape

type Tape struct {
	data   []byte
	offset int
	head   int
}

func New() *Tape {
	return &Tape{}
}

func (t *Tape) MoveRight() { t.head++ }
func (t *Tape) MoveLeft()  { t.head-- }

func (t *Tape) Increment() { t.Set(t.head, t.Get(t.head)+1) }
func (t *Tape) Decrement() { t.Set(t.head, t.Get(t.head)-1) }

func (t *Tape) Read() byte     { return t.Get(t.head) }
func (t *Tape) Write(val byte) { t.Set(t.head, val) }

// Get returns the cell at index. Cells outside the allocated window read as
// zero and are not allocated.
func (t *Tape) Get(index int) byte {
	i := t.offset + index
	if i < 0 || i >= len(t.data) {
		return 0
	}
	return t.data[i]
}

// Set stores val at index, growing the window to cover it.
func (t *Tape) Set(index int, val byte) {
	i := t.offset + index

	if i < 0 {
		t.growLeft(-i)
		i = t.offset + index
	}
	if i >= len(t.data) {
		t.growRight(i - len(t.data) + 1)
	}

	t.data[i] = val
}

// growLeft prepends at least n zero cells. The window at least doubles so a
// head walking left keeps amortized constant cost per cell.
func (t *Tape) growLeft(n int) {
	if n < len(t.data) {
		n = len(t.data)
	}
	data := make([]byte, n+len(t.data))
	copy(data[n:], t.data)
	t.data = data
	t.offset += n
}

func (t *Tape) growRight(n int) {
	t.data = append(t.data, make([]byte, n)...)
}
