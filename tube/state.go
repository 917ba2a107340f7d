package tube

import (
	"encoding/json"
	"fmt"
	"io"
)

type paramState struct {
	Balance *float64 `json:"balance"`
	Gain    *float64 `json:"gain"`
	GainOut *float64 `json:"gain_out"`
}

// Save writes p as a JSON object with the keys balance, gain and gain_out.
func (p Params) Save(w io.Writer) error {
	return json.NewEncoder(w).Encode(p)
}

// LoadParams reads a snapshot written by Save. All three keys are required and
// values are clamped to their ranges. On failure the returned snapshot is
// DefaultParams and the error wraps ErrParamState.
func LoadParams(r io.Reader) (Params, error) {
	var st paramState

	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()

	if err := dec.Decode(&st); err != nil {
		return DefaultParams(), fmt.Errorf("%w: %w", ErrParamState, err)
	}

	if st.Balance == nil || st.Gain == nil || st.GainOut == nil {
		return DefaultParams(), fmt.Errorf("%w: missing field", ErrParamState)
	}

	p := Params{Balance: *st.Balance, Gain: *st.Gain, GainOut: *st.GainOut}

	return p.Clamped(), nil
}
