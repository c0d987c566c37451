package plot

import (
	"errors"
	"testing"
)

func TestRenderWorldMap_Defaults(t *testing.T) {
	tb := mustTable(t, "city,lat,lon\nParis,48.86,2.35\nNew York,40.71,-74.01\nSydney,-33.87,151.21")

	data, err := renderWorldMap(tb, Options{})
	if err != nil {
		t.Fatalf("renderWorldMap failed: %v", err)
	}
	w, h := pngSize(t, data)
	if w != 1024 || h != 576 {
		t.Errorf("dimensions: got %dx%d, want 1024x576", w, h)
	}
}

func TestRenderWorldMap_HeaderAliases(t *testing.T) {
	// Aliases match case-insensitively: "Latitude" and "Long" both count.
	tb := mustTable(t, "City,Latitude,Long\nParis,48.86,2.35")

	if _, err := renderWorldMap(tb, Options{}); err != nil {
		t.Fatalf("renderWorldMap failed: %v", err)
	}
}

func TestRenderWorldMap_NoMarkers(t *testing.T) {
	// No row has usable coordinates; the empty map still renders.
	tb := mustTable(t, "lat,lon\n,\nnope,200")

	data, err := renderWorldMap(tb, Options{})
	if err != nil {
		t.Fatalf("renderWorldMap failed: %v", err)
	}
	w, h := pngSize(t, data)
	if w != 1024 || h != 576 {
		t.Errorf("dimensions: got %dx%d, want 1024x576", w, h)
	}
}

func TestRenderWorldMap_MissingColumns(t *testing.T) {
	tb := mustTable(t, "city,value\nParis,1")

	_, err := renderWorldMap(tb, Options{})
	if !errors.Is(err, ErrMissingCoordinates) {
		t.Errorf("error = %v, want ErrMissingCoordinates", err)
	}
}

func TestRenderWorldMap_MissingLongitude(t *testing.T) {
	tb := mustTable(t, "lat,value\n10,1")

	_, err := renderWorldMap(tb, Options{})
	if !errors.Is(err, ErrMissingCoordinates) {
		t.Errorf("error = %v, want ErrMissingCoordinates", err)
	}
}

func TestRenderWorldMap_MarkerOptions(t *testing.T) {
	tb := mustTable(t, "lat,lon\n48.86,2.35")
	opts, err := DecodeOptions(`{"s": 120, "c": "#336699", "alpha": 0.5, "marker": "D"}`)
	if err != nil {
		t.Fatalf("DecodeOptions failed: %v", err)
	}

	if _, err := renderWorldMap(tb, opts); err != nil {
		t.Fatalf("renderWorldMap failed: %v", err)
	}
}

func TestResolveCoordinate(t *testing.T) {
	tests := []struct {
		name       string
		csv        string
		candidates []string
		want       string
		found      bool
	}{
		{"exact lat", "city,lat\nx,1", latCandidates, "lat", true},
		{"case-insensitive", "city,Latitude\nx,1", latCandidates, "Latitude", true},
		{"candidate priority", "y,lat\n1,2", latCandidates, "lat", true},
		{"fallback to y", "y,value\n1,2", latCandidates, "y", true},
		{"lon alias", "Long,value\n1,2", lonCandidates, "Long", true},
		{"lng alias", "lng,value\n1,2", lonCandidates, "lng", true},
		{"none", "a,b\n1,2", latCandidates, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tb := mustTable(t, tt.csv)
			col, ok := resolveCoordinate(tb, tt.candidates)
			if ok != tt.found {
				t.Fatalf("found = %v, want %v", ok, tt.found)
			}
			if ok && col.Name != tt.want {
				t.Errorf("column: got %q, want %q", col.Name, tt.want)
			}
		})
	}
}

func TestCollectPoints(t *testing.T) {
	// Rows: ok, lat out of range, lon out of range, junk lat, ok.
	tb := mustTable(t, "lat,lon\n10,20\n91,0\n45,181\nnope,10\n-33.9,151.2")
	latCol, ok := resolveCoordinate(tb, latCandidates)
	if !ok {
		t.Fatal("lat column not found")
	}
	lonCol, ok := resolveCoordinate(tb, lonCandidates)
	if !ok {
		t.Fatal("lon column not found")
	}

	points := collectPoints(latCol, lonCol, tb.RowCount())
	if len(points) != 2 {
		t.Fatalf("points: got %d, want 2", len(points))
	}
	if points[0].lat != 10 || points[0].lon != 20 {
		t.Errorf("point 0: got (%v, %v), want (20, 10)", points[0].lon, points[0].lat)
	}
	if points[1].lat != -33.9 || points[1].lon != 151.2 {
		t.Errorf("point 1: got (%v, %v), want (151.2, -33.9)", points[1].lon, points[1].lat)
	}
}

func TestCollectPoints_BoundaryValues(t *testing.T) {
	tb := mustTable(t, "lat,lon\n90,180\n-90,-180")
	latCol, _ := resolveCoordinate(tb, latCandidates)
	lonCol, _ := resolveCoordinate(tb, lonCandidates)

	points := collectPoints(latCol, lonCol, tb.RowCount())
	if len(points) != 2 {
		t.Errorf("points: got %d, want 2 (the degree ranges are inclusive)", len(points))
	}
}
