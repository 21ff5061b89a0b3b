package core

import (
	"testing"

	"github.com/signalsfoundry/jpl2mpc/model"
)

func TestParseCoordsLabeledMatchesUnlabeled(t *testing.T) {
	labeledLayout, labeledVec := ParseCoords(labeledPos(1.0, 2.0, 3.0))
	unlabeledLayout, unlabeledVec := ParseCoords(unlabeled(1.0, 2.0, 3.0))

	if labeledLayout != model.LayoutLabeled {
		t.Fatalf("labeled layout = %v, want labeled", labeledLayout)
	}
	if unlabeledLayout != model.LayoutUnlabeled {
		t.Fatalf("unlabeled layout = %v, want unlabeled", unlabeledLayout)
	}
	want := model.Vec3{X: 1, Y: 2, Z: 3}
	if labeledVec != want || unlabeledVec != want {
		t.Fatalf("ParseCoords labeled=%+v unlabeled=%+v, want %+v", labeledVec, unlabeledVec, want)
	}
}

func TestParseCoordsNegativeAndVelocityLines(t *testing.T) {
	cases := []struct {
		name   string
		line   string
		layout model.Layout
		want   model.Vec3
	}{
		{
			name:   "labeled negative",
			line:   labeledPos(-1.25e-2, 3.5e-3, -7.0e-4),
			layout: model.LayoutLabeled,
			want:   model.Vec3{X: -1.25e-2, Y: 3.5e-3, Z: -7.0e-4},
		},
		{
			name:   "labeled velocity",
			line:   labeledVel(1.5e-4, -2.5e-4, 3.5e-4),
			layout: model.LayoutLabeled,
			want:   model.Vec3{X: 1.5e-4, Y: -2.5e-4, Z: 3.5e-4},
		},
		{
			name:   "unlabeled negative",
			line:   unlabeled(-9.87654321e+05, 1.0e+06, -2.0e+00),
			layout: model.LayoutUnlabeled,
			want:   model.Vec3{X: -9.87654321e+05, Y: 1.0e+06, Z: -2.0},
		},
		{
			name:   "short line",
			line:   " 1.5",
			layout: model.LayoutUnlabeled,
			want:   model.Vec3{X: 1.5},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			layout, got := ParseCoords(tc.line)
			if layout != tc.layout {
				t.Fatalf("layout = %v, want %v", layout, tc.layout)
			}
			if got != tc.want {
				t.Fatalf("ParseCoords(%q) = %+v, want %+v", tc.line, got, tc.want)
			}
		})
	}
}

func TestLayoutOfEdgeCases(t *testing.T) {
	if LayoutOf("") != model.LayoutUnlabeled {
		t.Fatalf("empty line should be unlabeled")
	}
	if LayoutOf(" X") != model.LayoutLabeled {
		t.Fatalf("X at column 1 should be labeled")
	}
	if LayoutOf("  X") != model.LayoutLabeled {
		t.Fatalf("X at column 2 should be labeled")
	}
	if LayoutOf("X  ") != model.LayoutUnlabeled {
		t.Fatalf("X at column 0 should not be labeled")
	}
}
