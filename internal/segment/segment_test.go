// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package segment

import (
	"reflect"
	"testing"

	"github.com/pdiddy/transition-engine/pkg/types"
)

const marker = types.DefaultMarker

func TestBlocks(t *testing.T) {
	tests := []struct {
		name       string
		paragraphs []string
		want       [][]string
	}{
		{
			name: "two blocks around one marker",
			paragraphs: []string{
				"Titre du document",
				marker,
				"Premier récit.",
				"en effet",
			},
			want: [][]string{
				{"Titre du document"},
				{"Premier récit.", "en effet"},
			},
		},
		{
			name: "marker matched as substring of a longer line",
			paragraphs: []string{
				"Édition du 12 mars — " + marker + " (suite)",
				"Récit.",
				"par ailleurs",
			},
			want: [][]string{
				{"Récit.", "par ailleurs"},
			},
		},
		{
			name: "marker line itself joins no block",
			paragraphs: []string{
				"avant",
				marker,
				marker,
				"après",
			},
			want: [][]string{
				{"avant"},
				{"après"},
			},
		},
		{
			name:       "consecutive markers produce no empty blocks",
			paragraphs: []string{marker, marker, marker, "seul"},
			want:       [][]string{{"seul"}},
		},
		{
			name: "blank paragraphs are dropped",
			paragraphs: []string{
				"", "a", "", "", "b",
				marker,
				"", "c",
			},
			want: [][]string{
				{"a", "b"},
				{"c"},
			},
		},
		{
			name:       "no marker yields a single block",
			paragraphs: []string{"a", "b"},
			want:       [][]string{{"a", "b"}},
		},
		{
			name:       "empty stream",
			paragraphs: nil,
			want:       nil,
		},
		{
			name:       "trailing accumulator flushes at end of stream",
			paragraphs: []string{marker, "dernier"},
			want:       [][]string{{"dernier"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blocks(tt.paragraphs, marker)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Blocks() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlocksDefaultMarker(t *testing.T) {
	got := Blocks([]string{"avant", marker, "après"}, "")
	want := [][]string{{"avant"}, {"après"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Blocks() with empty marker = %v, want %v", got, want)
	}
}

func TestBlocksMarkerIsCaseSensitive(t *testing.T) {
	lower := "à savoir également dans votre département"
	got := Blocks([]string{"avant", lower, "après"}, marker)
	want := [][]string{{"avant", lower, "après"}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Blocks() = %v, want %v", got, want)
	}
}
