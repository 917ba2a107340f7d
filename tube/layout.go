package tube

import "fmt"

// Format is a channel format of one bus.
type Format int

const (
	FormatMono Format = iota
	FormatStereo
)

// ChannelCount returns the number of channels of f, or 0 if f is unknown.
func (f Format) ChannelCount() int {
	switch f {
	case FormatMono:
		return 1
	case FormatStereo:
		return 2
	default:
		return 0
	}
}

func (f Format) String() string {
	switch f {
	case FormatMono:
		return "mono"
	case FormatStereo:
		return "stereo"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Layout is the bus configuration offered by the host. The engine processes
// in place and accepts exactly one format.
type Layout struct {
	Formats []Format
}

// SupportedLayouts lists the layouts the engine accepts, preferred first.
func SupportedLayouts() []Layout {
	return []Layout{
		{Formats: []Format{FormatStereo}},
		{Formats: []Format{FormatMono}},
	}
}

// ChannelCount validates l and returns its channel count.
func (l Layout) ChannelCount() (int, error) {
	if len(l.Formats) != 1 {
		return 0, fmt.Errorf("%w: want exactly one format, got %d", ErrUnsupportedLayout, len(l.Formats))
	}

	n := l.Formats[0].ChannelCount()
	if n == 0 {
		return 0, fmt.Errorf("%w: unknown format %v", ErrUnsupportedLayout, l.Formats[0])
	}

	return n, nil
}
