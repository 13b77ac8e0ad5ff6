package anatomy

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// Layer is an anatomical depth category used for visibility grouping.
// 0 is the skeleton; 1..7 are muscle layers, deeper numbers are more internal.
type Layer int

const (
	Bone Layer = iota
	Muscle1
	Muscle2
	Muscle3
	Muscle4
	Muscle5
	Muscle6
	Muscle7
)

// LayerCount is the fixed number of layers (1 skeletal + 7 muscle).
const LayerCount = 8

// MuscleLayers lists every muscle layer from superficial to deep.
var MuscleLayers = []Layer{Muscle1, Muscle2, Muscle3, Muscle4, Muscle5, Muscle6, Muscle7}

// Valid reports whether l is within [0, LayerCount).
func (l Layer) Valid() bool {
	return l >= 0 && l < LayerCount
}

func (l Layer) String() string {
	switch {
	case l == Bone:
		return "Bone"
	case l.Valid():
		return fmt.Sprintf("Muscle%d", int(l))
	default:
		return fmt.Sprintf("Layer(%d)", int(l))
	}
}

// DisplayName returns the English long name shown in the UI.
func (l Layer) DisplayName() string {
	switch l {
	case Bone:
		return "Skeletal System"
	case Muscle1:
		return "Superficial Muscles (Layer 1)"
	case Muscle7:
		return "Deep Muscles (Layer 7)"
	}
	if l.Valid() {
		return fmt.Sprintf("Muscle Layer %d", int(l))
	}
	return "Unknown Layer"
}

// layerColors: bone is off-white, muscle layers get darker with depth.
var layerColors = [LayerCount]rl.Color{
	rl.NewColor(242, 242, 230, 255),
	rl.NewColor(204, 77, 77, 255),
	rl.NewColor(179, 51, 51, 255),
	rl.NewColor(153, 38, 38, 255),
	rl.NewColor(128, 26, 26, 255),
	rl.NewColor(102, 20, 20, 255),
	rl.NewColor(89, 15, 15, 255),
	rl.NewColor(77, 13, 13, 255),
}

// Color returns the base albedo for parts in layer l. Unknown layers get a mid red.
func (l Layer) Color() rl.Color {
	if !l.Valid() {
		return rl.NewColor(153, 51, 51, 255)
	}
	return layerColors[l]
}

// PartType classifies a part as bone or muscle.
type PartType int

const (
	TypeBone PartType = iota
	TypeMuscle
)

func (t PartType) String() string {
	switch t {
	case TypeBone:
		return "Bone"
	case TypeMuscle:
		return "Muscle"
	default:
		return fmt.Sprintf("PartType(%d)", int(t))
	}
}

// ParsePartType accepts "bone" or "muscle" in any case.
func ParsePartType(s string) (PartType, error) {
	switch {
	case strings.EqualFold(s, "bone"):
		return TypeBone, nil
	case strings.EqualFold(s, "muscle"):
		return TypeMuscle, nil
	}
	return 0, fmt.Errorf("unknown part type %q", s)
}

// MarshalYAML writes the type as "bone" / "muscle".
func (t PartType) MarshalYAML() (interface{}, error) {
	switch t {
	case TypeBone:
		return "bone", nil
	case TypeMuscle:
		return "muscle", nil
	}
	return nil, fmt.Errorf("unknown part type %d", int(t))
}

// UnmarshalYAML reads "bone" / "muscle".
func (t *PartType) UnmarshalYAML(value *yaml.Node) error {
	v, err := ParsePartType(value.Value)
	if err != nil {
		return err
	}
	*t = v
	return nil
}
