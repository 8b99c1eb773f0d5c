package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetermineMode(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		want   LayoutMode
	}{
		{
			name:   "full mode - large terminal",
			width:  120,
			height: 44,
			want:   LayoutFull,
		},
		{
			name:   "standard mode - both at standard thresholds",
			width:  100,
			height: 32,
			want:   LayoutStandard,
		},
		{
			name:   "compact mode - classic 80x24",
			width:  80,
			height: 24,
			want:   LayoutCompact,
		},
		{
			name:   "minimal mode - below minimum width",
			width:  45,
			height: 30,
			want:   LayoutMinimal,
		},
		{
			name:   "minimal mode - below minimum height",
			width:  100,
			height: 12,
			want:   LayoutMinimal,
		},
		{
			name:   "exact minimum - should be compact",
			width:  50,
			height: 16,
			want:   LayoutCompact,
		},
		{
			name:   "wide but short",
			width:  200,
			height: 20,
			want:   LayoutCompact, // Uses most restrictive mode (height-based)
		},
		{
			name:   "tall but narrow",
			width:  60,
			height: 80,
			want:   LayoutCompact, // Uses most restrictive mode (width-based)
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DetermineMode(tt.width, tt.height)
			assert.Equal(t, tt.want, got, "DetermineMode(%d, %d)", tt.width, tt.height)
		})
	}
}

func TestLayoutModeString(t *testing.T) {
	assert.Equal(t, "full", LayoutFull.String())
	assert.Equal(t, "standard", LayoutStandard.String())
	assert.Equal(t, "compact", LayoutCompact.String())
	assert.Equal(t, "minimal", LayoutMinimal.String())
	assert.Equal(t, "unknown", LayoutMode(42).String())
}

func TestComputeConstraints(t *testing.T) {
	tests := []struct {
		name               string
		width              int
		height             int
		wantMode           LayoutMode
		wantSideBySide     bool
		wantShowMinWarning bool
		wantColumnWidth    int
	}{
		{
			name:            "full terminal",
			width:           160,
			height:          50,
			wantMode:        LayoutFull,
			wantSideBySide:  true,
			wantColumnWidth: CardMaxWidth,
		},
		{
			name:            "standard terminal",
			width:           100,
			height:          32,
			wantMode:        LayoutStandard,
			wantSideBySide:  true,
			wantColumnWidth: 49,
		},
		{
			name:            "classic terminal",
			width:           80,
			height:          24,
			wantMode:        LayoutCompact,
			wantSideBySide:  false,
			wantColumnWidth: CardMaxWidth,
		},
		{
			name:            "narrow terminal",
			width:           60,
			height:          40,
			wantMode:        LayoutCompact,
			wantSideBySide:  false,
			wantColumnWidth: 60,
		},
		{
			name:               "below minimum",
			width:              30,
			height:             10,
			wantMode:           LayoutMinimal,
			wantShowMinWarning: true,
			wantColumnWidth:    30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := ComputeConstraints(tt.width, tt.height)
			assert.Equal(t, tt.wantMode, c.Mode, "Mode")
			assert.Equal(t, tt.wantSideBySide, c.SideBySide, "SideBySide")
			assert.Equal(t, tt.wantShowMinWarning, c.ShowMinWarning, "ShowMinWarning")
			assert.Equal(t, tt.wantColumnWidth, c.ColumnWidth, "ColumnWidth")

			assert.Positive(t, c.ContentHeight, "ContentHeight")
			assert.Positive(t, c.SliderWidth, "SliderWidth")
			assert.Positive(t, c.MenuHeight, "MenuHeight")
			assert.GreaterOrEqual(t, c.ConeWidth, ConeMinWidth)
			assert.LessOrEqual(t, c.ConeWidth, ConeMaxWidth)
			assert.Equal(t, 1, c.ConeHeight%2, "cone height should be odd")

			if c.SideBySide {
				assert.LessOrEqual(t, 2*c.ColumnWidth+ColumnGap, tt.width, "columns should fit")
			} else {
				assert.LessOrEqual(t, c.ColumnWidth, tt.width, "column should fit")
			}
		})
	}
}

func TestComputeDegradation(t *testing.T) {
	tests := []struct {
		name               string
		width              int
		height             int
		wantHideGuide      bool
		wantHideCone       bool
		wantHideDimensions bool
		wantCompactSliders bool
	}{
		{
			name:   "large terminal - no degradation",
			width:  160,
			height: 50,
		},
		{
			name:          "side by side, medium height - hide nothing but guide",
			width:         120,
			height:        28,
			wantHideGuide: true,
		},
		{
			name:          "single column, tall enough for the cone",
			width:         80,
			height:        40,
			wantHideGuide: true,
		},
		{
			name:          "classic 80x24",
			width:         80,
			height:        24,
			wantHideGuide: true,
			wantHideCone:  true,
		},
		{
			name:               "narrow and short",
			width:              60,
			height:             18,
			wantHideGuide:      true,
			wantHideCone:       true,
			wantHideDimensions: true,
			wantCompactSliders: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := ComputeDegradation(ComputeConstraints(tt.width, tt.height))
			assert.Equal(t, tt.wantHideGuide, d.HideGuide, "HideGuide")
			assert.Equal(t, tt.wantHideCone, d.HideCone, "HideCone")
			assert.Equal(t, tt.wantHideDimensions, d.HideDimensions, "HideDimensions")
			assert.Equal(t, tt.wantCompactSliders, d.CompactSliders, "CompactSliders")
			assert.Equal(t, tt.wantHideGuide || tt.wantHideCone, d.IsCompactMode(), "IsCompactMode")
			assert.Equal(t, !tt.wantHideCone, d.ShouldShowCone())
			assert.Equal(t, !tt.wantHideGuide, d.ShouldShowGuide())
		})
	}
}

func TestDegradationProgression(t *testing.T) {
	// Shrinking the terminal should never bring a hidden card back.
	prev := ComputeDegradation(ComputeConstraints(80, 60))
	for h := 59; h >= MinHeight; h-- {
		d := ComputeDegradation(ComputeConstraints(80, h))
		if prev.HideGuide {
			assert.True(t, d.HideGuide, "guide reappeared at height %d", h)
		}
		if prev.HideCone {
			assert.True(t, d.HideCone, "cone reappeared at height %d", h)
		}
		prev = d
	}
}

func TestHeaderGap(t *testing.T) {
	assert.True(t, ComputeDegradation(ComputeConstraints(80, MinHeight)).HideHeaderGap)
	assert.True(t, ComputeDegradation(ComputeConstraints(120, MinHeight)).HideHeaderGap)
	assert.False(t, ComputeDegradation(ComputeConstraints(80, MinHeight+1)).HideHeaderGap)
}

func TestComputeOverlayWidth(t *testing.T) {
	assert.Equal(t, 50, ComputeOverlayWidth(120, 50))
	assert.Equal(t, OverlayMaxWidth, ComputeOverlayWidth(200, 100))
	assert.Equal(t, OverlayMinWidth, ComputeOverlayWidth(120, 10))
	assert.Equal(t, 26, ComputeOverlayWidth(30, 50))
}
