package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/Garsondee/Resonant/internal/config"
	"github.com/Garsondee/Resonant/internal/overlay"
	"github.com/Garsondee/Resonant/internal/regions"
)

var testOpts = sweepOptions{grid: 21, extent: 6, targetHitbox: 1, playerHitbox: 0.5}

func sweepMode(t *testing.T, m regions.FlankMode) sweepStats {
	t.Helper()
	p := config.NewProfile("test")
	p.Positionals.FlankType = m
	st, err := sweep(context.Background(), p, testOpts)
	if err != nil {
		t.Fatalf("sweep %s: %v", m, err)
	}
	return st
}

func TestCellSymbol(t *testing.T) {
	cases := []struct {
		res  overlay.Result
		want byte
	}{
		{overlay.Result{}, '.'},
		{overlay.Result{HasHighlight: true, Highlighted: regions.Pair{Zone: regions.ZoneFront}}, 'F'},
		{overlay.Result{HasHighlight: true, Highlighted: regions.Pair{Zone: regions.ZoneFlank, Ability: true}}, 'l'},
		{overlay.Result{HasHighlight: true, Highlighted: regions.Pair{Zone: regions.ZoneRear, Ability: true}}, 'r'},
	}
	for _, c := range cases {
		if got := cellSymbol(c.res); got != c.want {
			t.Fatalf("cellSymbol(%+v) = %q, want %q", c.res, got, c.want)
		}
	}
}

func TestParseModes(t *testing.T) {
	all, err := parseModes("all")
	if err != nil || len(all) != len(regions.FlankModes) {
		t.Fatalf("expected every mode, got %v (err=%v)", all, err)
	}
	two, err := parseModes("full, rear-only")
	if err != nil || len(two) != 2 || two[0] != regions.FlankFull || two[1] != regions.FlankRearOnly {
		t.Fatalf("unexpected modes %v (err=%v)", two, err)
	}
	if _, err := parseModes("sideways"); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func TestSweep_ZonesAroundTarget(t *testing.T) {
	st := sweepMode(t, regions.FlankFull)

	if st.regions != 8 || st.frames != 21*21 {
		t.Fatalf("expected 8 regions over 441 frames, got %d over %d", st.regions, st.frames)
	}
	// melee = 1 + 0.5 + 2.1; cells are 12/21 wide, centre column is x=0
	checks := []struct {
		row, col int
		want     byte
	}{
		{6, 10, 'F'},  // ahead, z~2.3
		{14, 10, 'R'}, // behind, z~-2.3
		{11, 6, 'L'},  // -X side, slightly behind
		{11, 14, 'L'}, // +X side, slightly behind
		{3, 10, 'f'},  // ahead, z~4.0, ability band
		{0, 0, '.'},   // corner, out of range
	}
	for _, c := range checks {
		if got := st.rows[c.row][c.col]; got != c.want {
			t.Fatalf("cell (%d,%d) = %q, want %q\n%s", c.row, c.col, got, c.want, bytes.Join(st.rows, []byte("\n")))
		}
	}
}

func TestSweep_RearOnlyNarrowsFlanks(t *testing.T) {
	full := sweepMode(t, regions.FlankFull)
	rear := sweepMode(t, regions.FlankRearOnly)

	if rear.occupancy['L'] >= full.occupancy['L'] {
		t.Fatalf("expected fewer flank cells in rear-only mode, got %d vs %d", rear.occupancy['L'], full.occupancy['L'])
	}
	if rear.occupancy['F'] <= full.occupancy['F'] {
		t.Fatalf("expected a wider front in rear-only mode, got %d vs %d", rear.occupancy['F'], full.occupancy['F'])
	}
}

func TestSweep_StopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := sweep(ctx, config.NewProfile("x"), testOpts); err == nil {
		t.Fatal("expected a cancelled sweep to fail")
	}
}

func TestSweepAllAndReport(t *testing.T) {
	p := config.NewProfile("report")
	all, err := sweepAll(context.Background(), zap.NewNop(), p, regions.FlankModes, testOpts)
	if err != nil {
		t.Fatalf("sweepAll: %v", err)
	}
	if len(all) != len(regions.FlankModes) {
		t.Fatalf("expected %d sweeps, got %d", len(regions.FlankModes), len(all))
	}
	for i, st := range all {
		if st.mode != regions.FlankModes[i] {
			t.Fatalf("sweep %d is %s, want %s", i, st.mode, regions.FlankModes[i])
		}
	}
	if p.Positionals.FlankType != regions.FlankRearOnly {
		t.Fatalf("sweeps must not modify the base profile")
	}

	var buf bytes.Buffer
	printReport(&buf, p, testOpts, all)
	out := buf.String()
	for _, want := range []string{"=== Headless Positional Report ===", "--- full-separated:", "occupancy: front="} {
		if !strings.Contains(out, want) {
			t.Fatalf("report missing %q:\n%s", want, out)
		}
	}
}
