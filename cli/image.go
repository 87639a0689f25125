package cli

import (
	"fmt"
	"io/ioutil"

	"pngstash.org/pngstash/png"
	"pngstash.org/pngstash/util/atomicfile"
)

// LoadImage reads and decodes a whole PNG file.
func LoadImage(path string) (*png.Image, error) {
	buf, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := png.Decode(buf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// SaveImage serializes the image and writes it to path atomically,
// so a failed write never destroys the input file.
func SaveImage(path string, img *png.Image) error {
	return atomicfile.WriteFile(path, img.AsBytes(), 0644)
}
