package event

// Outcome reports how far an event was processed.
type Outcome int

const (
	// Continue means the event was not recognized. The caller should offer
	// it to the next candidate.
	Continue Outcome = iota
	// Unchanged means the event was processed but nothing observable
	// changed. Processing stops; no redraw is needed.
	Unchanged
	// Changed means the event was processed and state changed. Processing
	// stops; a redraw is needed.
	Changed
	// Consumed means the event was swallowed for side effects outside the
	// state/redraw model. Whether to redraw is up to the caller.
	Consumed
)

func (o Outcome) String() string {
	switch o {
	case Continue:
		return "Continue"
	case Unchanged:
		return "Unchanged"
	case Changed:
		return "Changed"
	case Consumed:
		return "Consumed"
	default:
		return "Unknown"
	}
}

// Valid reports whether o is one of the four named outcomes.
func (o Outcome) Valid() bool {
	return o >= Continue && o <= Consumed
}

// normalize maps out-of-range values to Continue.
func (o Outcome) normalize() Outcome {
	if !o.Valid() {
		return Continue
	}
	return o
}

// IsConsumed reports whether the next handler must not be tried.
// True for Unchanged, Changed and Consumed.
func (o Outcome) IsConsumed() bool {
	return o.normalize() != Continue
}

// NeedsRedraw reports whether the event changed visible state.
// Only Changed does; callers decide separately for Consumed.
func (o Outcome) NeedsRedraw() bool {
	return o == Changed
}

// Or returns o if it is consumed, otherwise the result of f.
func (o Outcome) Or(f func() Outcome) Outcome {
	if o.IsConsumed() {
		return o.normalize()
	}
	return f().normalize()
}

// Then always calls f and returns the larger of o and its result.
func (o Outcome) Then(f func() Outcome) Outcome {
	return Combine(o, f())
}

// Combine returns the more significant of a and b.
// Continue is the identity: Combine(x, Continue) == x.
func Combine(a, b Outcome) Outcome {
	a, b = a.normalize(), b.normalize()
	if a > b {
		return a
	}
	return b
}

// Join combines any number of outcomes. Join() is Continue.
func Join(outcomes ...Outcome) Outcome {
	r := Continue
	for _, o := range outcomes {
		r = Combine(r, o)
	}
	return r
}

// FromBool converts a "did it change" flag: true is Changed, false is Unchanged.
func FromBool(changed bool) Outcome {
	if changed {
		return Changed
	}
	return Unchanged
}
