package tube

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-tube/dsp/core"
)

// ParamID is the stable host-facing identifier of a parameter.
type ParamID uint32

const (
	// ParamBalance is the dry/wet mix in [0, 1].
	ParamBalance ParamID = 0
	// ParamGain is the drive in dB.
	ParamGain ParamID = 1
	// ParamGainOut is the output trim in dB.
	ParamGainOut ParamID = 2
)

// ParamInfo describes one automatable parameter.
type ParamInfo struct {
	ID      ParamID
	Name    string
	Min     float64
	Max     float64
	Default float64
	Unit    string

	precision int
}

// Format renders v the way a host displays it, e.g. "0.50" or "-3.0dB".
func (p ParamInfo) Format(v float64) string {
	return fmt.Sprintf("%.*f%s", p.precision, v, p.Unit)
}

// Clamp limits v to the parameter range.
func (p ParamInfo) Clamp(v float64) float64 {
	return core.Clamp(v, p.Min, p.Max)
}

var paramTable = [...]ParamInfo{
	{ID: ParamBalance, Name: "Dry/Wet", Min: 0, Max: 1, Default: 1, precision: 2},
	{ID: ParamGain, Name: "Heat", Min: -12, Max: 12, Default: 0, Unit: "dB", precision: 1},
	{ID: ParamGainOut, Name: "Output gain", Min: 0, Max: 12, Default: 0, Unit: "dB", precision: 1},
}

// ParamInfos returns the parameter table in id order.
func ParamInfos() []ParamInfo {
	out := make([]ParamInfo, len(paramTable))
	copy(out, paramTable[:])

	return out
}

// LookupParam returns the description of id.
func LookupParam(id ParamID) (ParamInfo, bool) {
	if int(id) >= len(paramTable) {
		return ParamInfo{}, false
	}

	return paramTable[id], true
}

// Params is the engine-wide parameter snapshot.
type Params struct {
	Balance float64 `json:"balance"`
	Gain    float64 `json:"gain"`
	GainOut float64 `json:"gain_out"`
}

// DefaultParams returns every parameter at its declared default.
func DefaultParams() Params {
	return Params{
		Balance: paramTable[ParamBalance].Default,
		Gain:    paramTable[ParamGain].Default,
		GainOut: paramTable[ParamGainOut].Default,
	}
}

// Set stores value for id, clamped to the declared range. It reports false,
// leaving p unchanged, for an unknown id or a NaN value.
func (p *Params) Set(id ParamID, value float64) bool {
	info, ok := LookupParam(id)
	if !ok || math.IsNaN(value) {
		return false
	}

	*p.field(id) = info.Clamp(value)

	return true
}

// Get returns the value of id.
func (p Params) Get(id ParamID) (float64, bool) {
	if _, ok := LookupParam(id); !ok {
		return 0, false
	}

	return *p.field(id), true
}

// Clamped returns p with every value limited to its range. NaN values are
// replaced by the parameter default.
func (p Params) Clamped() Params {
	for _, info := range paramTable {
		f := p.field(info.ID)
		if math.IsNaN(*f) {
			*f = info.Default
			continue
		}

		*f = info.Clamp(*f)
	}

	return p
}

// Events returns one change event per parameter at offset 0, for pushing a
// loaded snapshot into an engine through Flush.
func (p Params) Events() []Event {
	events := make([]Event, 0, len(paramTable))
	for _, info := range paramTable {
		events = append(events, Event{ID: info.ID, Value: *p.field(info.ID)})
	}

	return events
}

func (p *Params) field(id ParamID) *float64 {
	switch id {
	case ParamBalance:
		return &p.Balance
	case ParamGain:
		return &p.Gain
	default:
		return &p.GainOut
	}
}
