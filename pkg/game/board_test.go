package game

import (
	"testing"

	"github.com/lorenzhs/gpn17-snake/pkg/config"
	"github.com/lorenzhs/gpn17-snake/pkg/hal"
)

func TestIndexRoundTrip(t *testing.T) {
	for i := 0; i < config.Size; i++ {
		x, y := ToCoords(i)
		if x < 0 || x >= config.Width || y < 0 || y >= config.Height {
			t.Fatalf("ToCoords(%d) = (%d,%d) out of range", i, x, y)
		}
		if got := ToIndex(x, y); got != i {
			t.Fatalf("ToIndex(ToCoords(%d)) = %d", i, got)
		}
	}
}

// TestOffsetInverse checks offset(offset(p, D), reverse(D)) == p everywhere
func TestOffsetInverse(t *testing.T) {
	for i := 0; i < config.Size; i++ {
		for _, d := range Directions {
			if got := Offset(Offset(i, d), d.Reverse()); got != i {
				t.Fatalf("cell %d dir %v: round trip gave %d", i, d, got)
			}
		}
	}
}

func TestOffsetInterior(t *testing.T) {
	for y := 1; y < config.Height-1; y++ {
		for x := 1; x < config.Width-1; x++ {
			i := ToIndex(x, y)
			want := map[Direction]int{
				Up:    i - config.Width,
				Down:  i + config.Width,
				Left:  i - 1,
				Right: i + 1,
			}
			for d, w := range want {
				if got := Offset(i, d); got != w {
					t.Fatalf("Offset((%d,%d), %v) = %d, want %d", x, y, d, got, w)
				}
			}
		}
	}
}

func TestOffsetWraps(t *testing.T) {
	w, h := config.Width, config.Height
	for y := 0; y < h; y++ {
		if got := Offset(ToIndex(0, y), Left); got != ToIndex(w-1, y) {
			t.Errorf("row %d: left edge wrapped to %d", y, got)
		}
		if got := Offset(ToIndex(w-1, y), Right); got != ToIndex(0, y) {
			t.Errorf("row %d: right edge wrapped to %d", y, got)
		}
	}
	for x := 0; x < w; x++ {
		if got := Offset(ToIndex(x, 0), Up); got != ToIndex(x, h-1) {
			t.Errorf("column %d: top edge wrapped to %d", x, got)
		}
		if got := Offset(ToIndex(x, h-1), Down); got != ToIndex(x, 0) {
			t.Errorf("column %d: bottom edge wrapped to %d", x, got)
		}
	}

	corners := []struct {
		x, y int
		d    Direction
		wx   int
		wy   int
	}{
		{0, 0, Up, 0, h - 1},
		{0, 0, Left, w - 1, 0},
		{w - 1, 0, Right, 0, 0},
		{w - 1, h - 1, Down, w - 1, 0},
		{0, h - 1, Left, w - 1, h - 1},
	}
	for _, c := range corners {
		if got := Offset(ToIndex(c.x, c.y), c.d); got != ToIndex(c.wx, c.wy) {
			x, y := ToCoords(got)
			t.Errorf("corner (%d,%d) %v went to (%d,%d)", c.x, c.y, c.d, x, y)
		}
	}
}

type drawCall struct {
	x, y int
	p    hal.Pattern
}

type fakePixels struct {
	draws   []drawCall
	clears  int
	commits int
}

func (f *fakePixels) DrawBlock(x, y int, p hal.Pattern) { f.draws = append(f.draws, drawCall{x, y, p}) }
func (f *fakePixels) ClearScreen()                      { f.clears++ }
func (f *fakePixels) CommitFrame()                      { f.commits++ }

func TestBoardSetDraws(t *testing.T) {
	px := &fakePixels{}
	b := NewBoard(px)

	b.Set(ToIndex(3, 4), Food)
	b.Set(ToIndex(5, 6), SnakeLeft)
	b.Set(ToIndex(5, 6), Empty)

	want := []drawCall{{3, 4, hal.Diamond}, {5, 6, hal.SolidOn}, {5, 6, hal.SolidOff}}
	if len(px.draws) != len(want) {
		t.Fatalf("got %d draws, want %d", len(px.draws), len(want))
	}
	for i := range want {
		if px.draws[i] != want[i] {
			t.Errorf("draw %d = %+v, want %+v", i, px.draws[i], want[i])
		}
	}

	b.Clear()
	if px.clears != 1 || len(px.draws) != len(want) {
		t.Errorf("Clear: clears=%d draws=%d, want one clear and no draws", px.clears, len(px.draws))
	}
	if b.Occupied() != 0 {
		t.Errorf("Occupied after Clear = %d", b.Occupied())
	}
}

func TestBoardNext(t *testing.T) {
	b := NewBoard(nil)
	i := ToIndex(0, 0)
	b.Set(i, SnakeLeft)
	if n, ok := b.Next(i); !ok || n != ToIndex(config.Width-1, 0) {
		t.Errorf("Next across edge = %d,%v", n, ok)
	}
	b.Set(i, SnakeEnd)
	if _, ok := b.Next(i); ok {
		t.Error("SnakeEnd must not link further")
	}
	b.Set(i, Food)
	if _, ok := b.Next(i); ok {
		t.Error("Food must not link")
	}
}
