package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCaller_Allows(t *testing.T) {
	tests := []struct {
		name   string
		caller *Caller
		tool   string
		want   bool
	}{
		{name: "no caller", caller: nil, tool: "process_return", want: true},
		{name: "unscoped caller", caller: &Caller{Name: "agent"}, tool: "process_return", want: true},
		{name: "scoped allowed", caller: &Caller{Name: "bot", Tools: []string{"process_return"}}, tool: "process_return", want: true},
		{name: "scoped denied", caller: &Caller{Name: "bot", Tools: []string{"check_size_availability"}}, tool: "process_return", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.caller.Allows(tt.tool))
		})
	}
}

func TestCategory_Label(t *testing.T) {
	assert.Equal(t, "패션", CategoryFashion.Label())
	assert.Equal(t, "뷰티", CategoryBeauty.Label())
	assert.Equal(t, "unknown", Category("unknown").Label())
}

func TestVIPTier_HasPriority(t *testing.T) {
	assert.True(t, VIPTierGold.HasPriority())
	assert.True(t, VIPTierDiamond.HasPriority())
	assert.False(t, VIPTierSilver.HasPriority())
	assert.False(t, VIPTierNone.HasPriority())
}
