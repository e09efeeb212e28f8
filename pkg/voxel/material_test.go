package voxel

import (
	"testing"

	"github.com/df07/go-voxel-raytracer/pkg/core"
)

func TestMaterialColorKnownIds(t *testing.T) {
	tests := []struct {
		name     string
		id       uint8
		expected core.Vec3
	}{
		{"stone", MaterialStone, core.NewVec3(0.28, 0.30, 0.33)},
		{"brick", MaterialBrick, core.NewVec3(0.95, 0.30, 0.18)},
		{"moss", MaterialMoss, core.NewVec3(0.15, 0.75, 0.35)},
		{"steel", MaterialSteel, core.NewVec3(0.20, 0.45, 0.95)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaterialColor(tt.id); got != tt.expected {
				t.Errorf("Expected color %v for id %d, got %v", tt.expected, tt.id, got)
			}
		})
	}
}

func TestMaterialColorUnknownIdIsWhite(t *testing.T) {
	white := core.NewVec3(1, 1, 1)
	for _, id := range []uint8{5, 42, 255} {
		if got := MaterialColor(id); got != white {
			t.Errorf("Expected white for unknown id %d, got %v", id, got)
		}
	}
}
