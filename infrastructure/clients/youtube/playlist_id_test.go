package youtube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlaylistID(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "bare id", input: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf", want: "PLrAXtmErZgOeiKm4sgNOknGvNjby9efdf"},
		{name: "bare id with hyphen and underscore", input: "PL_a-b_C", want: "PL_a-b_C"},
		{name: "playlist url", input: "https://www.youtube.com/playlist?list=PLxyz123", want: "PLxyz123"},
		{name: "watch url with list after video", input: "https://www.youtube.com/watch?v=abc&list=PL-9_z&index=2", want: "PL-9_z"},
		{name: "url without list", input: "https://www.youtube.com/watch?v=abc", want: "https://www.youtube.com/watch?v=abc"},
		{name: "free text passes through", input: "my playlist", want: "my playlist"},
		{name: "empty passes through", input: "", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractPlaylistID(tt.input))
		})
	}
}
