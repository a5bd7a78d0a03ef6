package palette

import (
	"fmt"
	"strconv"

	"github.com/Azir-11/azir-theme/internal/log"
)

const (
	Auburn = "auburn"
	Blue   = "blue"
	Brown  = "brown"
	Coral  = "coral"
	Cyan   = "cyan"
	Gray   = "gray"
	Green  = "green"
	Indigo = "indigo"
	Lemon  = "lemon"
	Lime   = "lime"
	Olive  = "olive"
	Orange = "orange"
	Pine   = "pine"
	Pink   = "pink"
	Plum   = "plum"
	Purple = "purple"
	Red    = "red"
	Teal   = "teal"
	Yellow = "yellow"
)

// Hues lists every ramp read from the token source, in declaration order.
var Hues = []string{
	Auburn, Blue, Brown, Coral, Cyan, Gray, Green, Indigo, Lemon, Lime,
	Olive, Orange, Pine, Pink, Plum, Purple, Red, Teal, Yellow,
}

const Steps = 10

const (
	White = "#ffffff"
	Black = "#000000"
)

// Ramp is one hue indexed by lightness step.
type Ramp [Steps]string

type Scale struct {
	Ramps map[string]Ramp `json:"ramps"`
	White string          `json:"white"`
	Black string          `json:"black"`
}

// Lookup reads a single variable; BuildScale only needs this much of the token map.
type Lookup interface {
	Get(name string) (string, bool)
}

// BuildScale reads display-<hue>-scale-<i> for every hue and step. Missing
// steps get a "#<hue><i>" placeholder so every index is always populated.
func BuildScale(vars Lookup) Scale {
	s := Scale{
		Ramps: make(map[string]Ramp, len(Hues)),
		White: White,
		Black: Black,
	}

	missing := 0
	for _, hue := range Hues {
		var ramp Ramp
		for i := 0; i < Steps; i++ {
			value, ok := vars.Get(ScaleToken(hue, i))
			if !ok || value == "" {
				ramp[i] = Placeholder(hue, i)
				missing++
				continue
			}
			ramp[i] = Normalize(value)
		}
		s.Ramps[hue] = ramp
	}

	if missing > 0 {
		log.Debugf("color scale: %d of %d steps use placeholders", missing, len(Hues)*Steps)
	}

	return s
}

// Hue returns the ramp for name, or a ramp of placeholders for an unknown hue.
func (s Scale) Hue(name string) Ramp {
	if ramp, ok := s.Ramps[name]; ok {
		return ramp
	}
	var ramp Ramp
	for i := range ramp {
		ramp[i] = Placeholder(name, i)
	}
	return ramp
}

func ScaleToken(hue string, step int) string {
	return fmt.Sprintf("display-%s-scale-%d", hue, step)
}

func Placeholder(hue string, step int) string {
	return "#" + hue + strconv.Itoa(step)
}
