package tiktok

import (
	"math"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestNormalizeCounts(t *testing.T) {
	nan := math.NaN()
	inf := math.Inf(1)

	tests := []struct {
		name string
		raw  RawVideo
		want Video
	}{
		{
			name: "normal counts pass through",
			raw:  RawVideo{ID: "1", Title: "a", CreateTime: 100, ViewCount: f(10), LikeCount: f(3), CommentCount: f(2), ShareCount: f(1)},
			want: Video{ID: "1", Title: "a", CreateTime: 100, ViewCount: 10, LikeCount: 3, CommentCount: 2, ShareCount: 1},
		},
		{
			name: "missing counts become zero",
			raw:  RawVideo{ID: "2"},
			want: Video{ID: "2"},
		},
		{
			name: "negative count becomes zero",
			raw:  RawVideo{ID: "3", ViewCount: f(-5), LikeCount: f(7)},
			want: Video{ID: "3", ViewCount: 0, LikeCount: 7},
		},
		{
			name: "nan and inf become zero",
			raw:  RawVideo{ID: "4", ViewCount: &nan, LikeCount: &inf},
			want: Video{ID: "4"},
		},
		{
			name: "fractional count truncates",
			raw:  RawVideo{ID: "5", ViewCount: f(9.9)},
			want: Video{ID: "5", ViewCount: 9},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.raw.Normalize()
			if got != tt.want {
				t.Errorf("Normalize() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestNormalizeAllKeepsOrder(t *testing.T) {
	raws := []RawVideo{{ID: "a"}, {ID: "b"}, {ID: "c"}}
	videos := NormalizeAll(raws)
	if len(videos) != 3 {
		t.Fatalf("expected 3 videos, got %d", len(videos))
	}
	for i, id := range []string{"a", "b", "c"} {
		if videos[i].ID != id {
			t.Errorf("videos[%d].ID = %q, want %q", i, videos[i].ID, id)
		}
	}
}
