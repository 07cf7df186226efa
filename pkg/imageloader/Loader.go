package imageloader

import (
	"fmt"

	"github.com/simplecontainer/apimethod/pkg/static"
)

type Props struct {
	Src     string
	Width   int
	Quality int
}

// Load returns the image URL sized to the requested width and quality. A zero
// quality uses the default of 75.
func Load(props Props) string {
	quality := props.Quality

	if quality == 0 {
		quality = static.DEFAULT_IMAGE_QUALITY
	}

	return fmt.Sprintf("%s?w=%d&q=%d", props.Src, props.Width, quality)
}
