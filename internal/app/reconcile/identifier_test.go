package reconcile

import (
	"testing"
)

func TestCanonicalProblemID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "gfg url with numeric suffix",
			url:  "https://practice.geeksforgeeks.org/problems/two-sum-1587115620/1",
			want: "two-sum",
		},
		{
			name: "leetcode url without suffix",
			url:  "https://leetcode.com/problems/two-sum/",
			want: "two-sum",
		},
		{
			name: "no trailing slash",
			url:  "https://leetcode.com/problems/merge-intervals",
			want: "merge-intervals",
		},
		{
			name: "query string after slug",
			url:  "https://leetcode.com/problems/two-sum?tab=description",
			want: "two-sum",
		},
		{
			name: "uppercase is lowered",
			url:  "https://leetcode.com/problems/Two-Sum/",
			want: "two-sum",
		},
		{
			name: "no problems segment",
			url:  "https://leetcode.com/contest/weekly-400/",
			want: "",
		},
		{
			name: "empty url",
			url:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanonicalProblemID(tt.url); got != tt.want {
				t.Errorf("CanonicalProblemID(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

func TestCanonicalProblemIDIdempotent(t *testing.T) {
	// Re-canonicalizing a URL built from an already-canonical identifier must
	// yield the same identifier.
	urls := []string{
		"https://practice.geeksforgeeks.org/problems/two-sum-1587115620/1",
		"https://leetcode.com/problems/two-sum/",
		"https://leetcode.com/problems/merge-k-sorted-lists/",
	}
	for _, url := range urls {
		id := CanonicalProblemID(url)
		if id == "" {
			t.Fatalf("CanonicalProblemID(%q) returned empty", url)
		}
		again := CanonicalProblemID("https://example.com/problems/" + id + "/")
		if again != id {
			t.Errorf("canonicalization not idempotent: %q -> %q -> %q", url, id, again)
		}
	}
}

func TestExtractSlug(t *testing.T) {
	got := ExtractSlug("https://leetcode.com/problems/merge-intervals/description/")
	if got != "merge-intervals" {
		t.Errorf("ExtractSlug = %q, want %q", got, "merge-intervals")
	}
	if got := ExtractSlug("https://example.com/nothing-here"); got != "" {
		t.Errorf("ExtractSlug on url without marker = %q, want empty", got)
	}
}

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Merge Intervals", "merge-intervals"},
		{"Two Sum", "two-sum"},
		{"Pow(x, n)", "pow-x-n"},
		{"  Binary   Search  ", "binary-search"},
		{"3Sum", "3sum"},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.title); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
