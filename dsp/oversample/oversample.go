package oversample

// Upsampler doubles the sample rate. Each input sample yields two output
// samples, computed by the even and odd phases of the prototype.
//
// The history is stored twice so that the newest TapsPerPhase samples are
// always contiguous.
type Upsampler struct {
	even [TapsPerPhase]float64
	odd  [TapsPerPhase]float64

	hist [2 * TapsPerPhase]float64
	pos  int
}

// NewUpsampler returns an upsampler with cleared history.
func NewUpsampler() *Upsampler {
	u := &Upsampler{}

	taps := Kernel()
	for j := range TapsPerPhase {
		// Gain Factor restores the level lost to zero stuffing.
		u.even[j] = Factor * taps[Factor*j]
		u.odd[j] = Factor * taps[Factor*j+1]
	}

	return u
}

// Process consumes one base-rate sample and returns the two oversampled
// samples in time order.
func (u *Upsampler) Process(x float64) (first, second float64) {
	u.pos--
	if u.pos < 0 {
		u.pos = TapsPerPhase - 1
	}

	u.hist[u.pos] = x
	u.hist[u.pos+TapsPerPhase] = x

	h := u.hist[u.pos : u.pos+TapsPerPhase]
	for j, v := range h {
		first += u.even[j] * v
		second += u.odd[j] * v
	}

	return first, second
}

// ProcessBlock upsamples src into dst. dst must hold Factor*len(src) samples.
func (u *Upsampler) ProcessBlock(dst, src []float64) {
	if len(src) == 0 {
		return
	}

	_ = dst[Factor*len(src)-1]

	for i, x := range src {
		dst[Factor*i], dst[Factor*i+1] = u.Process(x)
	}
}

// Reset clears the history.
func (u *Upsampler) Reset() {
	u.hist = [2 * TapsPerPhase]float64{}
	u.pos = 0
}

// Downsampler halves the sample rate after band-limiting with the full
// prototype.
type Downsampler struct {
	taps [KernelLength]float64

	hist [2 * KernelLength]float64
	pos  int
}

// NewDownsampler returns a downsampler with cleared history.
func NewDownsampler() *Downsampler {
	d := &Downsampler{}
	copy(d.taps[:], Kernel())

	return d
}

// Process consumes two oversampled samples in time order and returns one
// base-rate sample.
func (d *Downsampler) Process(first, second float64) float64 {
	d.push(first)
	d.push(second)

	var y float64

	h := d.hist[d.pos : d.pos+KernelLength]
	for k, v := range h {
		y += d.taps[k] * v
	}

	return y
}

// ProcessBlock downsamples src into dst. src must hold Factor*len(dst)
// samples.
func (d *Downsampler) ProcessBlock(dst, src []float64) {
	if len(dst) == 0 {
		return
	}

	_ = src[Factor*len(dst)-1]

	for i := range dst {
		dst[i] = d.Process(src[Factor*i], src[Factor*i+1])
	}
}

// Reset clears the history.
func (d *Downsampler) Reset() {
	d.hist = [2 * KernelLength]float64{}
	d.pos = 0
}

func (d *Downsampler) push(x float64) {
	d.pos--
	if d.pos < 0 {
		d.pos = KernelLength - 1
	}

	d.hist[d.pos] = x
	d.hist[d.pos+KernelLength] = x
}
