package core

import "testing"

func TestNudge(t *testing.T) {
	workers := ParameterControl{Key: "workers", Type: ParamTypeInt, Step: 1, Min: 1, Max: 4}
	sat := ParameterControl{Key: "saturation", Type: ParamTypeFloat, Step: 0.05, Min: 0, Max: 1}
	cases := []struct {
		name      string
		ctrl      ParameterControl
		value     float64
		direction int
		want      float64
		ok        bool
	}{
		{"int up", workers, 2, 1, 3, true},
		{"int at max", workers, 4, 1, 4, false},
		{"int at min", workers, 1, -1, 1, false},
		{"float down", sat, 0.8, -1, 0.75, true},
		{"float clamps", sat, 0.98, 1, 1, true},
		{"float at max", sat, 1, 1, 1, false},
		{"no direction", sat, 0.5, 0, 0.5, false},
	}
	for _, tc := range cases {
		got, ok := tc.ctrl.Nudge(tc.value, tc.direction)
		if ok != tc.ok || got < tc.want-1e-9 || got > tc.want+1e-9 {
			t.Fatalf("%s: Nudge = (%v, %v), want (%v, %v)", tc.name, got, ok, tc.want, tc.ok)
		}
	}
}

func TestFormat(t *testing.T) {
	if got := (ParameterControl{Type: ParamTypeInt}).Format(7); got != "7" {
		t.Fatalf("int format = %q", got)
	}
	if got := (ParameterControl{Type: ParamTypeFloat, Step: 0.05}).Format(0.8); got != "0.80" {
		t.Fatalf("float format = %q", got)
	}
}

func TestSnapshotLookup(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{
		{Name: "A", Params: []Parameter{{Key: "w", Value: "10"}}},
		{Name: "B", Params: []Parameter{{Key: "workers", Value: "4"}}},
	}}
	if p, ok := s.Lookup("workers"); !ok || p.Value != "4" {
		t.Fatalf("Lookup(workers) = %+v, %v", p, ok)
	}
	if _, ok := s.Lookup("missing"); ok {
		t.Fatal("unexpected hit for missing key")
	}
}
