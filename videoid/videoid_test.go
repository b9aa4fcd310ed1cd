package videoid

import (
	"testing"

	"github.com/ytbrief/ytbrief/errors"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		want    string
		wantErr bool
	}{
		{
			name: "standard watch URL",
			url:  "https://www.youtube.com/watch?v=_lzBTBn9kG0",
			want: "_lzBTBn9kG0",
		},
		{
			name: "watch URL with extra params",
			url:  "https://www.youtube.com/watch?t=42&v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "shortened share URL",
			url:  "https://youtu.be/_lzBTBn9kG0",
			want: "_lzBTBn9kG0",
		},
		{
			name: "shortened URL with query",
			url:  "https://youtu.be/dQw4w9WgXcQ?t=10",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "embed URL",
			url:  "https://www.youtube.com/embed/_lzBTBn9kG0",
			want: "_lzBTBn9kG0",
		},
		{
			name: "legacy v URL",
			url:  "https://www.youtube.com/v/dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "mobile watch URL",
			url:  "https://m.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name: "uppercase host",
			url:  "https://WWW.YOUTUBE.COM/watch?v=dQw4w9WgXcQ",
			want: "dQw4w9WgXcQ",
		},
		{
			name:    "not a url",
			url:     "not-a-url",
			wantErr: true,
		},
		{
			name:    "empty",
			url:     "",
			wantErr: true,
		},
		{
			name:    "unrelated site",
			url:     "https://example.com/watch?v=dQw4w9WgXcQ",
			wantErr: true,
		},
		{
			name:    "youtube page without video",
			url:     "https://www.youtube.com/feed/subscriptions",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.url)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Extract(%q) = %q, expected error", tt.url, got)
				}
				if !errors.IsKind(err, errors.KindInvalidURL) {
					t.Errorf("expected invalid URL kind, got %q", errors.KindOf(err))
				}
				return
			}
			if err != nil {
				t.Fatalf("Extract(%q) returned error: %v", tt.url, err)
			}
			if got != tt.want {
				t.Errorf("Extract(%q) = %q, want %q", tt.url, got, tt.want)
			}
		})
	}
}

// The same video referenced through different URL shapes must resolve
// to one canonical token.
func TestExtractCanonical(t *testing.T) {
	urls := []string{
		"https://www.youtube.com/watch?v=_lzBTBn9kG0",
		"https://youtu.be/_lzBTBn9kG0",
		"https://www.youtube.com/embed/_lzBTBn9kG0",
	}

	for _, u := range urls {
		id, err := Extract(u)
		if err != nil {
			t.Fatalf("Extract(%q) returned error: %v", u, err)
		}
		if id != "_lzBTBn9kG0" {
			t.Errorf("Extract(%q) = %q, want _lzBTBn9kG0", u, id)
		}
	}
}

func TestValidToken(t *testing.T) {
	tests := []struct {
		id   string
		want bool
	}{
		{"_lzBTBn9kG0", true},
		{"dQw4w9WgXcQ", true},
		{"short", false},
		{"_lzBTBn9kG0extra", false},
		{"has spaces!!", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := ValidToken(tt.id); got != tt.want {
			t.Errorf("ValidToken(%q) = %v, want %v", tt.id, got, tt.want)
		}
	}
}
