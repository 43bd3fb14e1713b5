package layout

import "testing"

func TestParseConstraint(t *testing.T) {
	cases := map[string]Constraint{
		"20%":   PercentageOf(20),
		"10min": MinOf(10),
		"5max":  MaxOf(5),
		"1:2":   RatioOf(1, 2),
		"7":     LengthOf(7),
		"bogus": LengthOf(1),
		"":      LengthOf(1),
		"x%":    PercentageOf(1),
		" 3 ":   LengthOf(3),
	}
	for raw, want := range cases {
		if got := ParseConstraint(raw); got != want {
			t.Fatalf("ParseConstraint(%q) = %v (%s), want %v (%s)", raw, got, got.Kind, want, want.Kind)
		}
	}
}

func TestSplitLengthAndMin(t *testing.T) {
	area := NewRect(0, 0, 10, 20)
	chunks := Split(area, Vertical, 0, []Constraint{ParseConstraint("5"), ParseConstraint("10min")})
	if len(chunks) != 2 {
		t.Fatalf("expected 2 chunks, got %d", len(chunks))
	}
	if chunks[0] != NewRect(0, 0, 10, 5) {
		t.Fatalf("unexpected first chunk %v", chunks[0])
	}
	if chunks[1].H < 10 || chunks[1].Y != 5 || chunks[1].Bottom() != 20 {
		t.Fatalf("expected second chunk to take the remainder, got %v", chunks[1])
	}
}

func TestSplitLeftoverGoesToLastWithoutMin(t *testing.T) {
	chunks := Split(NewRect(0, 0, 30, 3), Horizontal, 0, []Constraint{LengthOf(5), PercentageOf(10)})
	if chunks[0].W != 5 || chunks[1].W != 25 || chunks[1].X != 5 {
		t.Fatalf("unexpected chunks %v", chunks)
	}
}

func TestSplitClipsToRemainingSpace(t *testing.T) {
	chunks := Split(NewRect(0, 0, 10, 4), Vertical, 0, []Constraint{LengthOf(3), LengthOf(3), MinOf(2)})
	if chunks[0].H != 3 || chunks[1].H != 1 || chunks[2].H != 0 {
		t.Fatalf("unexpected clipping %v", chunks)
	}
}

func TestSplitAppliesMargin(t *testing.T) {
	chunks := Split(NewRect(2, 2, 12, 6), Horizontal, 1, []Constraint{RatioOf(1, 2), RatioOf(1, 2)})
	if chunks[0] != NewRect(3, 3, 5, 4) || chunks[1] != NewRect(8, 3, 5, 4) {
		t.Fatalf("unexpected chunks %v", chunks)
	}
}

func TestDirectionDefaults(t *testing.T) {
	if RootDirection("") != Vertical || RootDirection("Horizontal") != Horizontal {
		t.Fatalf("unexpected root direction defaults")
	}
	if NestedDirection("") != Horizontal || NestedDirection("vertical") != Vertical {
		t.Fatalf("unexpected nested direction defaults")
	}
}

func TestCentered(t *testing.T) {
	got := Centered(NewRect(0, 0, 80, 24))
	if got != NewRect(16, 6, 48, 12) {
		t.Fatalf("unexpected overlay %v", got)
	}
}

func TestRectInner(t *testing.T) {
	if got := NewRect(0, 0, 1, 5).Inner(1); !got.Empty() {
		t.Fatalf("expected empty inner rect, got %v", got)
	}
	if got := NewRect(1, 1, 4, 4).Inner(1); got != NewRect(2, 2, 2, 2) {
		t.Fatalf("unexpected inner %v", got)
	}
}
