// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"reflect"
	"testing"

	"github.com/pdiddy/transition-engine/pkg/types"
)

func TestParseArticles(t *testing.T) {
	tests := []struct {
		name   string
		blocks [][]string
		want   []types.Article
	}{
		{
			name: "first block is always preamble",
			blocks: [][]string{
				{"Récit qui ressemble à un article.", "en effet", "par ailleurs"},
				{"Vrai récit.", "de plus"},
			},
			want: []types.Article{
				{Narrative: "Vrai récit.", Transitions: []string{"de plus"}},
			},
		},
		{
			name: "single-line block is skipped without error",
			blocks: [][]string{
				{"préambule"},
				{"orphelin"},
				{"Récit.", "cependant"},
			},
			want: []types.Article{
				{Narrative: "Récit.", Transitions: []string{"cependant"}},
			},
		},
		{
			name: "transitions empty after trim are dropped",
			blocks: [][]string{
				{"préambule"},
				{"Récit.", "en effet", "   ", "de plus"},
			},
			want: []types.Article{
				{Narrative: "Récit.", Transitions: []string{"en effet", "de plus"}},
			},
		},
		{
			name: "article order follows block order",
			blocks: [][]string{
				{"préambule"},
				{"A.", "t1"},
				{"B.", "t2", "t3"},
			},
			want: []types.Article{
				{Narrative: "A.", Transitions: []string{"t1"}},
				{Narrative: "B.", Transitions: []string{"t2", "t3"}},
			},
		},
		{
			name:   "fewer than two blocks yields no articles",
			blocks: [][]string{{"seul bloc", "avec deux lignes"}},
			want:   nil,
		},
		{
			name:   "no blocks",
			blocks: nil,
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseArticles(tt.blocks)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseArticles() = %v, want %v", got, tt.want)
			}
		})
	}
}
