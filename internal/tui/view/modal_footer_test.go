package view

import (
	"strings"
	"testing"
)

func TestFootersListActions(t *testing.T) {
	styles := ModalStyles{}

	tests := []struct {
		name   string
		footer string
		want   []string
	}{
		{"form", FormFooter(styles), []string{"[Enter] Save", "[Esc] Cancel"}},
		{"detail", DetailFooter(styles), []string{"[e] Edit", "[d] Delete", "[y] Copy"}},
		{"confirm", ConfirmDeleteFooter(styles), []string{"[y/Enter] Delete", "[n/Esc] Cancel"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, want := range tt.want {
				if !strings.Contains(tt.footer, want) {
					t.Errorf("footer %q missing %q", tt.footer, want)
				}
			}
		})
	}
}
