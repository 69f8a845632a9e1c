package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeVideoURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "short link",
			in:   "https://youtu.be/abc123",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "short link with query",
			in:   "https://youtu.be/abc123?t=42",
			want: "https://www.youtube.com/embed/abc123",
		},
		{
			name: "watch url",
			in:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "watch url with extra params",
			in:   "https://www.youtube.com/watch?v=dQw4w9WgXcQ&list=PL123&index=2",
			want: "https://www.youtube.com/embed/dQw4w9WgXcQ",
		},
		{
			name: "already embedded",
			in:   "https://www.youtube.com/embed/xyz789",
			want: "https://www.youtube.com/embed/xyz789",
		},
		{
			name: "embed with query",
			in:   "https://www.youtube.com/embed/xyz789?autoplay=1",
			want: "https://www.youtube.com/embed/xyz789",
		},
		{
			name: "unrecognized url keeps last segment",
			in:   "https://vimeo.com/12345678",
			want: "https://www.youtube.com/embed/12345678",
		},
		{
			name: "unrecognized url strips query",
			in:   "https://example.com/videos/clip?quality=hd",
			want: "https://www.youtube.com/embed/clip",
		},
		{
			name: "surrounding whitespace",
			in:   "  https://youtu.be/abc123  ",
			want: "https://www.youtube.com/embed/abc123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeVideoURL(tt.in)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}
}

func TestNormalizeVideoURL_Empty(t *testing.T) {
	assert.Nil(t, NormalizeVideoURL(""))
	assert.Nil(t, NormalizeVideoURL("   "))
}

// A second pass over an already normalized URL must not change it, so
// saving a lesson repeatedly is safe.
func TestNormalizeVideoURL_Idempotent(t *testing.T) {
	inputs := []string{
		"https://youtu.be/abc123",
		"https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"https://example.com/videos/clip?quality=hd",
	}
	for _, in := range inputs {
		first := NormalizeVideoURL(in)
		require.NotNil(t, first)
		second := NormalizeVideoURL(*first)
		require.NotNil(t, second)
		assert.Equal(t, *first, *second)
	}
}
