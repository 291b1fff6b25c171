package style_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/hop/internal/ui/style"
)

func TestLineColor(t *testing.T) {
	tests := []struct {
		route string
		want  lipgloss.Color
	}{
		{route: "Red Line", want: style.RedLine},
		{route: "Mattapan Trolley", want: style.RedLine},
		{route: "Orange Line", want: style.OrangeLine},
		{route: "Blue Line", want: style.BlueLine},
		{route: "Green Line B", want: style.GreenLine},
		{route: "green line e", want: style.GreenLine},
		{route: "Silver Line SL1", want: style.SilverLine},
		{route: "Commuter Rail", want: style.Slate},
		{route: "", want: style.Slate},
	}

	for _, tt := range tests {
		t.Run(tt.route, func(t *testing.T) {
			assert.Equal(t, tt.want, style.LineColor(tt.route))
		})
	}
}
