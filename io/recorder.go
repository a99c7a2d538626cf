package io

// Recorder captures every value sent to it.
// If Capacity is non-zero, sends beyond Capacity values fail.
type Recorder struct {
	Capacity int
	Values   []byte
}

var _ Channel = (*Recorder)(nil)

// Rewind discards all recorded values.
func (rc *Recorder) Rewind() {
	rc.Values = rc.Values[:0]
}

// Send records value.
func (rc *Recorder) Send(value byte) (err error) {
	if rc.Capacity != 0 && len(rc.Values) >= rc.Capacity {
		err = ErrChannelFull
		return
	}

	rc.Values = append(rc.Values, value)
	return
}
