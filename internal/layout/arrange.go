package layout

import "time"

// Block is a positioned cluster: the primary interval gets a placement, the
// rest are carried along for the overlap badge.
type Block[T Interval] struct {
	Primary    T
	Overlapped []T
	Position
}

// OverlapCount returns the number of intervals hidden behind the primary.
func (b Block[T]) OverlapCount() int {
	return len(b.Overlapped)
}

// Arrange groups items and positions each cluster's primary on day.
func Arrange[T Interval](items []T, day time.Time, unitsPerHour float64) []Block[T] {
	clusters := Group(items)
	blocks := make([]Block[T], 0, len(clusters))
	for _, c := range clusters {
		primary := c.Primary()
		blocks = append(blocks, Block[T]{
			Primary:    primary,
			Overlapped: c.Overlapped(),
			Position:   Calculate(primary.StartTime(), primary.EndTime(), day, unitsPerHour),
		})
	}
	return blocks
}
