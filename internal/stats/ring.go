package stats

// WindowSize is how many recent attempts are kept per case.
const WindowSize = 3

// Ring holds the most recent attempts of a case, oldest first once full.
// It is a plain value; copying it copies the attempts.
type Ring struct {
	Attempts [WindowSize]Attempt `json:"attempts"`
	Next     int                 `json:"next"`
	Len      int                 `json:"len"`
}

// Push returns the ring with a added, dropping the oldest attempt if full.
func (r Ring) Push(a Attempt) Ring {
	r.Attempts[r.Next] = a
	r.Next = (r.Next + 1) % WindowSize
	if r.Len < WindowSize {
		r.Len++
	}
	return r
}

// Slice returns the attempts oldest first.
func (r Ring) Slice() []Attempt {
	out := make([]Attempt, r.Len)
	start := (r.Next - r.Len + WindowSize) % WindowSize
	for i := 0; i < r.Len; i++ {
		out[i] = r.Attempts[(start+i)%WindowSize]
	}
	return out
}

// Latest returns the most recent attempt.
func (r Ring) Latest() (Attempt, bool) {
	if r.Len == 0 {
		return Attempt{}, false
	}
	return r.Attempts[(r.Next-1+WindowSize)%WindowSize], true
}
