package layout

import (
	"testing"
	"time"
)

type item struct {
	name  string
	start time.Time
	end   time.Time
}

func (i item) StartTime() time.Time { return i.start }
func (i item) EndTime() time.Time   { return i.end }

func at(hour, minute int) time.Time {
	return time.Date(2025, 6, 7, hour, minute, 0, 0, time.UTC)
}

func names(c Cluster[item]) []string {
	out := make([]string, len(c))
	for i, it := range c {
		out[i] = it.name
	}
	return out
}

func equalNames(got, want []string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"disjoint", Span{at(9, 0), at(10, 0)}, Span{at(11, 0), at(12, 0)}, false},
		{"partial", Span{at(10, 0), at(11, 0)}, Span{at(10, 30), at(11, 30)}, true},
		{"contained", Span{at(9, 0), at(12, 0)}, Span{at(10, 0), at(10, 15)}, true},
		{"touching", Span{at(10, 0), at(11, 0)}, Span{at(11, 0), at(12, 0)}, false},
		{"identical", Span{at(10, 0), at(11, 0)}, Span{at(10, 0), at(11, 0)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.b); got != tt.want {
				t.Errorf("Overlaps(a, b) = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.a); got != tt.want {
				t.Errorf("Overlaps(b, a) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGroup_Empty(t *testing.T) {
	if got := Group[item](nil); len(got) != 0 {
		t.Errorf("expected no clusters, got %d", len(got))
	}
	if got := Group([]item{}); len(got) != 0 {
		t.Errorf("expected no clusters, got %d", len(got))
	}
}

func TestGroup_OverlappingPairAndSingleton(t *testing.T) {
	items := []item{
		{"A", at(10, 0), at(11, 0)},
		{"B", at(10, 30), at(11, 30)},
		{"C", at(12, 0), at(13, 0)},
	}

	clusters := Group(items)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if len(clusters[0]) != 2 {
		t.Errorf("expected first cluster of 2, got %d", len(clusters[0]))
	}
	if len(clusters[1]) != 1 {
		t.Errorf("expected second cluster of 1, got %d", len(clusters[1]))
	}
	if clusters[0].Primary().name != "A" {
		t.Errorf("expected A as primary, got %s", clusters[0].Primary().name)
	}
	if got := clusters[0].Overlapped(); len(got) != 1 || got[0].name != "B" {
		t.Errorf("expected B overlapped, got %v", names(got))
	}
}

func TestGroup_TouchingNotGrouped(t *testing.T) {
	items := []item{
		{"A", at(10, 0), at(11, 0)},
		{"B", at(11, 0), at(12, 0)},
	}

	clusters := Group(items)
	if len(clusters) != 2 {
		t.Fatalf("expected touching intervals in separate clusters, got %d clusters", len(clusters))
	}
}

func TestGroup_SortsByStart(t *testing.T) {
	items := []item{
		{"late", at(15, 0), at(16, 0)},
		{"early", at(8, 0), at(9, 0)},
		{"mid", at(12, 0), at(13, 0)},
	}

	clusters := Group(items)
	want := []string{"early", "mid", "late"}
	if len(clusters) != len(want) {
		t.Fatalf("expected %d clusters, got %d", len(want), len(clusters))
	}
	for i, c := range clusters {
		if c.Primary().name != want[i] {
			t.Errorf("cluster %d: got %s, want %s", i, c.Primary().name, want[i])
		}
	}
}

func TestGroup_StableForEqualStarts(t *testing.T) {
	items := []item{
		{"first", at(9, 0), at(10, 0)},
		{"second", at(9, 0), at(9, 30)},
		{"third", at(9, 0), at(11, 0)},
	}

	clusters := Group(items)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if got, want := names(clusters[0]), []string{"first", "second", "third"}; !equalNames(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGroup_ChainedMembersShareCluster(t *testing.T) {
	// C never overlaps A but reaches it through B.
	items := []item{
		{"A", at(9, 0), at(10, 0)},
		{"B", at(9, 30), at(11, 0)},
		{"C", at(10, 30), at(11, 30)},
	}

	clusters := Group(items)
	if len(clusters) != 1 {
		t.Fatalf("expected 1 cluster, got %d", len(clusters))
	}
	if got, want := names(clusters[0]), []string{"A", "B", "C"}; !equalNames(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestGroup_FirstFitDoesNotMergeClusters(t *testing.T) {
	// B touches A so it opens its own cluster. C overlaps both A and B but
	// joins only the first cluster it matches; the clusters stay apart.
	items := []item{
		{"A", at(9, 0), at(10, 0)},
		{"B", at(10, 0), at(11, 0)},
		{"C", at(9, 30), at(10, 30)},
	}

	clusters := Group(items)
	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if got, want := names(clusters[0]), []string{"A", "C"}; !equalNames(got, want) {
		t.Errorf("cluster 0: got %v, want %v", got, want)
	}
	if got, want := names(clusters[1]), []string{"B"}; !equalNames(got, want) {
		t.Errorf("cluster 1: got %v, want %v", got, want)
	}
}

func TestGroup_EveryItemExactlyOnce(t *testing.T) {
	items := []item{
		{"a", at(8, 0), at(9, 0)},
		{"b", at(8, 30), at(10, 0)},
		{"c", at(9, 45), at(10, 15)},
		{"d", at(11, 0), at(11, 30)},
		{"e", at(11, 30), at(12, 0)},
		{"f", at(11, 15), at(11, 45)},
		{"g", at(20, 0), at(23, 0)},
	}

	clusters := Group(items)

	seen := make(map[string]int)
	for _, c := range clusters {
		if len(c) == 0 {
			t.Fatal("found empty cluster")
		}
		for _, it := range c {
			seen[it.name]++
		}
	}
	for _, it := range items {
		if seen[it.name] != 1 {
			t.Errorf("item %s appears %d times, want 1", it.name, seen[it.name])
		}
	}

	for i := 1; i < len(clusters); i++ {
		prev := clusters[i-1].Primary().start
		cur := clusters[i].Primary().start
		if cur.Before(prev) {
			t.Errorf("cluster %d starts at %v before cluster %d at %v", i, cur, i-1, prev)
		}
	}
}

func TestGroup_DoesNotMutateInput(t *testing.T) {
	items := []item{
		{"late", at(15, 0), at(16, 0)},
		{"early", at(8, 0), at(9, 0)},
	}

	_ = Group(items)

	if items[0].name != "late" || items[1].name != "early" {
		t.Errorf("input order changed: %s, %s", items[0].name, items[1].name)
	}
}
