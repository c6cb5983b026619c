package infrastructure

import (
	"testing"

	"github.com/DRSN-tech/bakery-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageExtension(t *testing.T) {
	cases := map[string]string{
		"image/jpeg":        "jpg",
		"image/JPG":         "jpg",
		"image/png":         "png",
		"image/webp; q=0.9": "webp",
		"  image/gif ":      "gif",
	}
	for contentType, want := range cases {
		got, err := ImageExtension(contentType)
		require.NoError(t, err, contentType)
		assert.Equal(t, want, got, contentType)
	}
}

func TestImageExtension_Unsupported(t *testing.T) {
	for _, contentType := range []string{"", "text/plain", "image/svg+xml"} {
		_, err := ImageExtension(contentType)
		assert.ErrorIs(t, err, e.ErrUnsupportedMediaType, contentType)
	}
}
