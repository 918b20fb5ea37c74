package layout

import "slices"

// Cluster is an ordered group of intervals sharing one visual slot.
// Members are linked through overlap chaining; two members need not
// overlap each other directly.
type Cluster[T Interval] []T

// Primary returns the earliest member, the one that gets positioned.
func (c Cluster[T]) Primary() T {
	return c[0]
}

// Overlapped returns the members rendered as a count badge.
func (c Cluster[T]) Overlapped() []T {
	return c[1:]
}

func (c Cluster[T]) overlapsAny(item T) bool {
	for _, member := range c {
		if Overlaps(member, item) {
			return true
		}
	}
	return false
}

// Group partitions items into clusters of overlapping intervals.
//
// Items are sorted by start (stable for ties) and assigned first-fit: each
// item joins the first cluster, in creation order, holding any member it
// overlaps. Otherwise it opens a new cluster. This is not connected
// components: an item overlapping two clusters joins only the first.
func Group[T Interval](items []T) []Cluster[T] {
	if len(items) == 0 {
		return nil
	}

	sorted := slices.Clone(items)
	slices.SortStableFunc(sorted, func(a, b T) int {
		return a.StartTime().Compare(b.StartTime())
	})

	var clusters []Cluster[T]
	for _, item := range sorted {
		placed := false
		for i := range clusters {
			if clusters[i].overlapsAny(item) {
				clusters[i] = append(clusters[i], item)
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, Cluster[T]{item})
		}
	}

	return clusters
}
