package plot

import (
	"errors"
	"testing"
)

func TestRenderPie_Defaults(t *testing.T) {
	tb := mustTable(t, "fruit,count\napple,10\nbanana,20\ncherry,5")

	data, err := renderPie(tb, Options{})
	if err != nil {
		t.Fatalf("renderPie failed: %v", err)
	}
	w, h := pngSize(t, data)
	if w != 768 || h != 768 {
		t.Errorf("dimensions: got %dx%d, want 768x768", w, h)
	}
}

func TestRenderPie_ColumnScan(t *testing.T) {
	// Labels come from the first text column, values from the first
	// numeric column, regardless of position.
	tb := mustTable(t, "count,fruit\n10,apple\n20,banana")

	if _, err := renderPie(tb, Options{}); err != nil {
		t.Fatalf("renderPie failed: %v", err)
	}
}

func TestPieSlices_CountAndOrder(t *testing.T) {
	tb := mustTable(t, "fruit,count\napple,10\nbanana,20\ncherry,5")

	slices, err := pieSlices(tb)
	if err != nil {
		t.Fatalf("pieSlices failed: %v", err)
	}
	if len(slices) != 3 {
		t.Fatalf("slices: got %d, want 3", len(slices))
	}
	for i, want := range []string{"apple", "banana", "cherry"} {
		if slices[i].Label != want {
			t.Errorf("slice %d: got label %q, want %q", i, slices[i].Label, want)
		}
	}
	if slices[1].Value != 20 {
		t.Errorf("banana value: got %v, want 20", slices[1].Value)
	}
}

func TestRenderPie_NoTextColumn(t *testing.T) {
	tb := mustTable(t, "a,b\n1,2\n3,4")

	_, err := renderPie(tb, Options{})
	if !errors.Is(err, ErrAmbiguousShape) {
		t.Errorf("error = %v, want ErrAmbiguousShape", err)
	}
}

func TestRenderPie_NoNumericColumn(t *testing.T) {
	tb := mustTable(t, "a,b\nx,y\nz,w")

	_, err := renderPie(tb, Options{})
	if !errors.Is(err, ErrAmbiguousShape) {
		t.Errorf("error = %v, want ErrAmbiguousShape", err)
	}
}

func TestRenderPie_NonPositiveValue(t *testing.T) {
	for _, csv := range []string{
		"fruit,count\napple,0\nbanana,20",
		"fruit,count\napple,-3\nbanana,20",
	} {
		tb := mustTable(t, csv)
		if _, err := renderPie(tb, Options{}); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("%q: error = %v, want ErrInvalidValue", csv, err)
		}
	}
}

func TestRenderPie_SkipsIncompleteRows(t *testing.T) {
	tb := mustTable(t, "fruit,count\napple,10\n,5\npear,")

	if _, err := renderPie(tb, Options{}); err != nil {
		t.Fatalf("renderPie failed: %v", err)
	}
}

func TestRenderPie_RejectsOptions(t *testing.T) {
	tb := mustTable(t, "fruit,count\napple,10")
	opts, err := DecodeOptions(`{"x": "fruit"}`)
	if err != nil {
		t.Fatalf("DecodeOptions failed: %v", err)
	}

	if _, err := renderPie(tb, opts); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("error = %v, want ErrInvalidOptions", err)
	}
}
