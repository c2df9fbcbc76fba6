package cobs

// maxRun is the largest distance that a single distance byte can hold.  A
// distance byte of maxRun means that maxRun-1 payload bytes follow, and then
// another distance byte, without any marker having been removed in between.
const maxRun = 0xff

// tracker remembers where the most recently emitted distance byte lives in
// the output buffer, so that it can be filled in once we know how far away the
// next one is.  pointsTo is always index+maxRun: the output position where a
// distance byte must be forced if no marker shows up before then.
type tracker struct {
	index    int
	pointsTo int
}

func newTracker() tracker {
	return tracker{index: 0, pointsTo: maxRun}
}

// due reports whether outIndex is the position where a forced distance byte
// has to go.
func (t *tracker) due(outIndex int) bool {
	return t.pointsTo == outIndex
}

// advance writes the distance from the previous distance byte to newIndex,
// and makes newIndex the new previous distance byte.  Distances are XOR'd with
// the marker, so that a distance byte can never collide with it.
func (t *tracker) advance(dst []byte, newIndex int, marker byte) {
	distance := newIndex - t.index
	if distance < 1 || distance > maxRun {
		panic("cobs: distance byte out of range")
	}
	dst[t.index] = byte(distance) ^ marker
	t.index = newIndex
	t.pointsTo = newIndex + maxRun
}
