// Package tube implements a realtime tube saturation processor.
//
// Each channel runs through its own Track:
//
//	upsample 2x -> drive -> envelope-biased tube curve between a
//	pre/post tilt pair -> DC block -> output gain -> downsample 2x
//
// and is then blended with a delay-aligned copy of the dry input. The Engine
// owns one Track per channel plus the shared Params, splits every buffer at
// event offsets and feeds Tracks in chunks of at most MaxBlockSize samples.
//
// A silent input does not give a silent output: the curve is evaluated at a
// fixed positive bias, and the resulting step decays through the output DC
// blocker.
package tube
