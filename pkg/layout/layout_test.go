package layout

import (
	"math"
	"reflect"
	"testing"

	"github.com/londailey6937/QuillPilot-Native-sub006/pkg/errors"
)

func TestArrangeEmpty(t *testing.T) {
	arr, err := Arrange(nil, Options{MaxWidth: 100, Spacing: 5})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	if arr.Len() != 0 {
		t.Errorf("Len = %d, want 0", arr.Len())
	}
	if arr.Width != 0 || arr.Height != 0 {
		t.Errorf("bounds = %vx%v, want 0x0", arr.Width, arr.Height)
	}
}

func TestArrangeWrapScenario(t *testing.T) {
	// Three items against a 100-wide line with spacing 10: the second
	// item wraps, the third fits beside it on line two.
	items := []Size{{W: 50, H: 20}, {W: 60, H: 20}, {W: 60, H: 20}}
	arr, err := Arrange(items, Options{MaxWidth: 100, Spacing: 10})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}

	wantPos := []Point{{X: 0, Y: 0}, {X: 0, Y: 30}, {X: 70, Y: 30}}
	if !reflect.DeepEqual(arr.Positions, wantPos) {
		t.Errorf("positions = %v, want %v", arr.Positions, wantPos)
	}
	if arr.Width != 130 {
		t.Errorf("Width = %v, want 130", arr.Width)
	}
	if arr.Height != 50 {
		t.Errorf("Height = %v, want 50", arr.Height)
	}
}

func TestArrangeSingleItemUnbounded(t *testing.T) {
	arr, err := Arrange([]Size{{W: 40, H: 15}}, Options{MaxWidth: Unbounded(), Spacing: 10})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	if got := arr.Positions[0]; got != (Point{}) {
		t.Errorf("position = %v, want (0,0)", got)
	}
	if arr.Width != 40 || arr.Height != 15 {
		t.Errorf("bounds = %vx%v, want 40x15", arr.Width, arr.Height)
	}
}

func TestArrangeUnboundedSingleLine(t *testing.T) {
	items := []Size{{W: 30, H: 10}, {W: 30, H: 20}, {W: 30, H: 5}}
	arr, err := Arrange(items, Options{MaxWidth: Unbounded(), Spacing: 4})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	for i, p := range arr.Positions {
		if p.Y != 0 {
			t.Errorf("item %d wrapped to y=%v with unbounded width", i, p.Y)
		}
	}
	if arr.Height != 20 {
		t.Errorf("Height = %v, want max item height 20", arr.Height)
	}
}

func TestArrangeOversizedItem(t *testing.T) {
	// An item wider than the line is still placed at x=0 of a fresh
	// line; the wrap guard must not reject or loop.
	items := []Size{{W: 10, H: 10}, {W: 500, H: 10}, {W: 10, H: 10}}
	arr, err := Arrange(items, Options{MaxWidth: 100, Spacing: 5})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}

	if arr.Positions[1].X != 0 {
		t.Errorf("oversized item x = %v, want 0", arr.Positions[1].X)
	}
	if arr.Positions[1].Y != 15 {
		t.Errorf("oversized item y = %v, want 15", arr.Positions[1].Y)
	}
	// The item after the oversized one wraps again since the cursor
	// sits past the line width.
	if arr.Positions[2] != (Point{X: 0, Y: 30}) {
		t.Errorf("trailing item at %v, want (0,30)", arr.Positions[2])
	}
	if arr.Width != 500 {
		t.Errorf("Width = %v, want 500", arr.Width)
	}
}

func TestArrangeIndexCorrespondence(t *testing.T) {
	items := []Size{{W: 10, H: 1}, {W: 20, H: 2}, {W: 30, H: 3}, {W: 40, H: 4}}
	arr, err := Arrange(items, Options{MaxWidth: 55, Spacing: 2})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	if len(arr.Positions) != len(items) || len(arr.Sizes) != len(items) {
		t.Fatalf("output lengths %d/%d, want %d", len(arr.Positions), len(arr.Sizes), len(items))
	}
	for i := range items {
		if arr.Sizes[i] != items[i] {
			t.Errorf("Sizes[%d] = %v, want %v", i, arr.Sizes[i], items[i])
		}
	}
}

func TestArrangeSameLineGaps(t *testing.T) {
	// Every consecutive pair on the same line must be separated by
	// exactly the spacing constant, with no overlap.
	items := []Size{{W: 10, H: 5}, {W: 15, H: 5}, {W: 20, H: 5}, {W: 25, H: 5}}
	const spacing = 3.5
	arr, err := Arrange(items, Options{MaxWidth: 60, Spacing: spacing})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}

	for i := 1; i < arr.Len(); i++ {
		prev, cur := arr.Positions[i-1], arr.Positions[i]
		if prev.Y != cur.Y {
			continue // new line
		}
		gap := cur.X - (prev.X + arr.Sizes[i-1].W)
		if gap != spacing {
			t.Errorf("gap between items %d and %d = %v, want %v", i-1, i, gap, spacing)
		}
	}
}

func TestArrangeLineSpacing(t *testing.T) {
	// Two lines of differing heights: vertical gap equals spacing and
	// line height is the max item height on the line.
	items := []Size{{W: 60, H: 10}, {W: 60, H: 25}, {W: 60, H: 5}}
	arr, err := Arrange(items, Options{MaxWidth: 70, Spacing: 8})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}

	wantYs := []float64{0, 18, 51}
	for i, want := range wantYs {
		if arr.Positions[i].Y != want {
			t.Errorf("item %d y = %v, want %v", i, arr.Positions[i].Y, want)
		}
	}
	if arr.Height != 56 {
		t.Errorf("Height = %v, want 56", arr.Height)
	}
}

func TestArrangeZeroSizeItems(t *testing.T) {
	items := []Size{{}, {}, {}}
	arr, err := Arrange(items, Options{MaxWidth: 100, Spacing: 5})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	wantXs := []float64{0, 5, 10}
	for i, want := range wantXs {
		if arr.Positions[i] != (Point{X: want}) {
			t.Errorf("item %d at %v, want (%v,0)", i, arr.Positions[i], want)
		}
	}
	if arr.Width != 10 || arr.Height != 0 {
		t.Errorf("bounds = %vx%v, want 10x0", arr.Width, arr.Height)
	}
}

func TestArrangeIdempotent(t *testing.T) {
	items := []Size{{W: 12, H: 7}, {W: 90, H: 3}, {W: 41, H: 11}, {W: 8, H: 2}}
	opts := Options{MaxWidth: 100, Spacing: 6}

	first, err := Arrange(items, opts)
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	second, err := Arrange(items, opts)
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("repeated calls with identical input should be bit-identical")
	}
}

func TestArrangeInvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		items []Size
		opts  Options
		code  errors.Code
	}{
		{"NegativeItemWidth", []Size{{W: -1, H: 5}}, Options{MaxWidth: 100}, errors.ErrCodeInvalidSize},
		{"NegativeItemHeight", []Size{{W: 1, H: -5}}, Options{MaxWidth: 100}, errors.ErrCodeInvalidSize},
		{"NaNItem", []Size{{W: math.NaN(), H: 5}}, Options{MaxWidth: 100}, errors.ErrCodeInvalidSize},
		{"InfiniteItem", []Size{{W: math.Inf(1), H: 5}}, Options{MaxWidth: 100}, errors.ErrCodeInvalidSize},
		{"ZeroMaxWidth", nil, Options{MaxWidth: 0}, errors.ErrCodeInvalidWidth},
		{"NegativeMaxWidth", nil, Options{MaxWidth: -10}, errors.ErrCodeInvalidWidth},
		{"NaNMaxWidth", nil, Options{MaxWidth: math.NaN()}, errors.ErrCodeInvalidWidth},
		{"NegativeSpacing", nil, Options{MaxWidth: 100, Spacing: -1}, errors.ErrCodeInvalidSpacing},
		{"NaNSpacing", nil, Options{MaxWidth: 100, Spacing: math.NaN()}, errors.ErrCodeInvalidSpacing},
		{"InfiniteSpacing", nil, Options{MaxWidth: 100, Spacing: math.Inf(1)}, errors.ErrCodeInvalidSpacing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Arrange(tt.items, tt.opts)
			if err == nil {
				t.Fatal("Arrange should reject malformed input")
			}
			if !errors.Is(err, tt.code) {
				t.Errorf("code = %v, want %v", errors.GetCode(err), tt.code)
			}
		})
	}
}

func TestArrangeNoOverlapOnLine(t *testing.T) {
	items := []Size{
		{W: 33, H: 9}, {W: 12, H: 14}, {W: 51, H: 6}, {W: 7, H: 3},
		{W: 28, H: 17}, {W: 44, H: 8}, {W: 19, H: 12},
	}
	arr, err := Arrange(items, Options{MaxWidth: 90, Spacing: 4})
	if err != nil {
		t.Fatalf("Arrange error: %v", err)
	}

	for i := 0; i < arr.Len(); i++ {
		for j := i + 1; j < arr.Len(); j++ {
			if arr.Positions[i].Y != arr.Positions[j].Y {
				continue
			}
			iRight := arr.Positions[i].X + arr.Sizes[i].W
			if arr.Positions[j].X < iRight {
				t.Errorf("items %d and %d overlap on line y=%v", i, j, arr.Positions[i].Y)
			}
		}
	}
}
