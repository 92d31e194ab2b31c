package model

// Clause is one weighted segment of a reflection text. A text is partitioned
// into an ordered sequence of clauses; weights are assigned after
// segmentation and reflect rhetorical prominence (a clause after "but"
// carries double weight).
type Clause struct {
	Text              string
	Position          int
	Weight            float64
	HasContrastBefore bool
	HasFeelsLike      bool
}
