package layout

import (
	"testing"
	"time"
)

func TestArrange(t *testing.T) {
	day := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	items := []item{
		{"C", at(12, 0), at(13, 0)},
		{"B", at(10, 30), at(11, 30)},
		{"A", at(10, 0), at(11, 0)},
	}

	blocks := Arrange(items, day, hourHeight)
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}

	first := blocks[0]
	if first.Primary.name != "A" {
		t.Errorf("expected A as first primary, got %s", first.Primary.name)
	}
	if first.OverlapCount() != 1 || first.Overlapped[0].name != "B" {
		t.Errorf("expected B as the only overlapped item, got %v", first.Overlapped)
	}
	if first.Top != 10*hourHeight || first.Height != hourHeight {
		t.Errorf("first block: got top=%v height=%v", first.Top, first.Height)
	}

	second := blocks[1]
	if second.Primary.name != "C" || second.OverlapCount() != 0 {
		t.Errorf("expected lone C block, got %s with %d overlapped", second.Primary.name, second.OverlapCount())
	}
	if second.Top != 12*hourHeight {
		t.Errorf("second block top: got %v, want %v", second.Top, 12*hourHeight)
	}
}

func TestArrange_Empty(t *testing.T) {
	blocks := Arrange[item](nil, at(0, 0), hourHeight)
	if blocks == nil {
		t.Fatal("expected non-nil empty slice")
	}
	if len(blocks) != 0 {
		t.Errorf("expected no blocks, got %d", len(blocks))
	}
}

func TestArrange_WithSpan(t *testing.T) {
	day := time.Date(2025, 6, 7, 0, 0, 0, 0, time.UTC)
	spans := []Span{{Start: at(6, 0), End: at(6, 30)}}

	blocks := Arrange(spans, day, 60)
	if len(blocks) != 1 {
		t.Fatalf("expected 1 block, got %d", len(blocks))
	}
	if blocks[0].Top != 360 || blocks[0].Height != 30 {
		t.Errorf("got top=%v height=%v, want top=360 height=30", blocks[0].Top, blocks[0].Height)
	}
}
