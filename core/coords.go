package core

import "github.com/signalsfoundry/jpl2mpc/model"

// Column offsets of the X, Y and Z values for each coordinate line layout.
var layoutColumns = map[model.Layout][3]int{
	model.LayoutUnlabeled: {1, 24, 47},
	model.LayoutLabeled:   {4, 30, 56},
}

// LayoutOf picks the layout of a single coordinate line. Labeled lines carry
// an 'X' tag at column 1 (" X =") or 2 (" VX=").
func LayoutOf(line string) model.Layout {
	if (len(line) > 1 && line[1] == 'X') || (len(line) > 2 && line[2] == 'X') {
		return model.LayoutLabeled
	}
	return model.LayoutUnlabeled
}

// ParseCoords reads the three values of a coordinate line at the columns of
// its own layout. Missing columns read as zero.
func ParseCoords(line string) (model.Layout, model.Vec3) {
	layout := LayoutOf(line)
	cols := layoutColumns[layout]
	return layout, model.Vec3{
		X: leadingFloat(column(line, cols[0])),
		Y: leadingFloat(column(line, cols[1])),
		Z: leadingFloat(column(line, cols[2])),
	}
}
