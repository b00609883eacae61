package genetic

import "github.com/katalvlaran/gatsp/tsp"

// Best tracks the best-known tour of one run.
//
// The zero value is empty and ready to use. Offer replaces the stored tour
// only with a strictly shorter one, so Length never increases.
type Best struct {
	tour       *tsp.Tour
	length     float64
	generation int
	updates    int
}

// Offer records t as found in generation if no tour is known yet or t is
// strictly shorter than the known one. A private copy is stored, so later
// mutation of t does not affect the tracker. Reports whether it replaced.
func (b *Best) Offer(t *tsp.Tour, generation int) bool {
	if t == nil {
		return false
	}
	l := t.Length()
	if b.tour != nil && l >= b.length {
		return false
	}
	b.tour = t.Clone()
	b.length = l
	b.generation = generation
	b.updates++

	return true
}

// Found reports whether any tour has been offered successfully.
func (b *Best) Found() bool { return b.tour != nil }

// Tour returns a copy of the best-known tour, or nil when none is known.
func (b *Best) Tour() *tsp.Tour {
	if b.tour == nil {
		return nil
	}

	return b.tour.Clone()
}

// Length returns the best-known length (0 when none is known).
func (b *Best) Length() float64 { return b.length }

// Generation returns the generation in which the best-known tour was found.
func (b *Best) Generation() int { return b.generation }

// Updates returns how many times the tracker improved.
func (b *Best) Updates() int { return b.updates }

// Reset forgets the best-known tour.
func (b *Best) Reset() { *b = Best{} }
