package learning

// DrillRepetitions is how many correct and fast attempts in a row end a drill.
const DrillRepetitions = 3

// Driller counts down the successful attempts still needed in a drill.
type Driller struct {
	Remaining int `json:"remaining"`
}

// NewDriller starts a drill.
func NewDriller() Driller {
	return Driller{Remaining: DrillRepetitions}
}

// Record returns the driller after one more attempt. A correct and fast
// attempt counts down; anything else starts the count over.
func (d Driller) Record(correct, fast bool) Driller {
	if correct && fast {
		if d.Remaining > 0 {
			d.Remaining--
		}
		return d
	}
	d.Remaining = DrillRepetitions
	return d
}

// Done reports whether the drill is complete.
func (d Driller) Done() bool {
	return d.Remaining == 0
}
