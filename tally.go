package qsim

import (
	"sort"
	"time"
)

/*
Tally accumulates the classical outcomes of repeated independent trials
on one computer. The probability of an outcome is only ever visible this
way, as a frequency.
*/
type Tally struct {
	Width   int
	Counts  map[int]int
	Elapsed time.Duration
	shots   int
}

func NewTally(width int) *Tally {
	return &Tally{
		Width:  width,
		Counts: make(map[int]int),
	}
}

/*
RunTrials resets qc, lets prepare build the state, collapses and records
the outcome, shots times over. prepare may be nil to measure |0…0⟩.
*/
func RunTrials(qc *QuantumComputer, shots int, prepare func(*QuantumComputer)) *Tally {
	tally := NewTally(qc.Width())
	start := time.Now()

	for i := 0; i < shots; i++ {
		qc.Reset()
		if prepare != nil {
			prepare(qc)
		}
		qc.Collapse()
		tally.Record(qc.Value())
	}

	tally.Elapsed = time.Since(start)
	qc.Reset()

	return tally
}

func (t *Tally) Record(value int) {
	t.Counts[value]++
	t.shots++
}

func (t *Tally) Shots() int {
	return t.shots
}

func (t *Tally) Count(value int) int {
	return t.Counts[value]
}

// Frequency is Count/Shots, 0 before any shot.
func (t *Tally) Frequency(value int) float64 {
	if t.shots == 0 {
		return 0
	}
	return float64(t.Counts[value]) / float64(t.shots)
}

// MostFrequent returns the modal outcome, breaking ties toward the lower index.
func (t *Tally) MostFrequent() (int, bool) {
	if t.shots == 0 {
		return 0, false
	}

	values := t.Outcomes()
	best := values[0]
	for _, v := range values[1:] {
		if t.Counts[v] > t.Counts[best] {
			best = v
		}
	}

	return best, true
}

// Outcomes lists every observed value in ascending order.
func (t *Tally) Outcomes() []int {
	values := make([]int, 0, len(t.Counts))
	for v := range t.Counts {
		values = append(values, v)
	}
	sort.Ints(values)
	return values
}

func (t *Tally) Export() map[string]interface{} {
	frequencies := make(map[int]float64, len(t.Counts))
	for v := range t.Counts {
		frequencies[v] = t.Frequency(v)
	}

	return map[string]interface{}{
		"width":       t.Width,
		"shots":       t.shots,
		"outcomes":    len(t.Counts),
		"frequencies": frequencies,
		"elapsed_ms":  t.Elapsed.Milliseconds(),
	}
}
