package fetcher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockRange_Halves(t *testing.T) {
	tests := []struct {
		name      string
		r         BlockRange
		wantLower BlockRange
		wantUpper BlockRange
		wantOK    bool
	}{
		{
			name:      "even length",
			r:         BlockRange{FromBlock: 100, ToBlock: 199},
			wantLower: BlockRange{FromBlock: 100, ToBlock: 149},
			wantUpper: BlockRange{FromBlock: 150, ToBlock: 199},
			wantOK:    true,
		},
		{
			name:      "two blocks",
			r:         BlockRange{FromBlock: 7, ToBlock: 8},
			wantLower: BlockRange{FromBlock: 7, ToBlock: 7},
			wantUpper: BlockRange{FromBlock: 8, ToBlock: 8},
			wantOK:    true,
		},
		{
			name:   "single block",
			r:      BlockRange{FromBlock: 5, ToBlock: 5},
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lower, upper, ok := tt.r.Halves()
			require.Equal(t, tt.wantOK, ok)
			if !ok {
				return
			}
			require.Equal(t, tt.wantLower, lower)
			require.Equal(t, tt.wantUpper, upper)
			require.Equal(t, tt.r.Len(), lower.Len()+upper.Len())
		})
	}
}

func TestBlockRange_Partition(t *testing.T) {
	r := BlockRange{FromBlock: 100, ToBlock: 200}

	tests := []struct {
		name   string
		sub    BlockRange
		want   []BlockRange
		wantOK bool
	}{
		{
			name:   "prefix",
			sub:    BlockRange{FromBlock: 100, ToBlock: 110},
			want:   []BlockRange{{FromBlock: 100, ToBlock: 110}, {FromBlock: 111, ToBlock: 200}},
			wantOK: true,
		},
		{
			name:   "suffix",
			sub:    BlockRange{FromBlock: 150, ToBlock: 200},
			want:   []BlockRange{{FromBlock: 100, ToBlock: 149}, {FromBlock: 150, ToBlock: 200}},
			wantOK: true,
		},
		{
			name: "middle",
			sub:  BlockRange{FromBlock: 120, ToBlock: 130},
			want: []BlockRange{
				{FromBlock: 100, ToBlock: 119},
				{FromBlock: 120, ToBlock: 130},
				{FromBlock: 131, ToBlock: 200},
			},
			wantOK: true,
		},
		{name: "whole range", sub: r, wantOK: false},
		{name: "outside", sub: BlockRange{FromBlock: 90, ToBlock: 110}, wantOK: false},
		{name: "reversed", sub: BlockRange{FromBlock: 130, ToBlock: 120}, wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, ok := r.Partition(tt.sub)
			require.Equal(t, tt.wantOK, ok)
			require.Equal(t, tt.want, parts)
		})
	}
}
