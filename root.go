// Package byteimg renders arbitrary binary data as images.
//
// A buffer is sized into a near-square canvas by layout.Resolution, filled
// by one of three layout strategies (linear, channel or single) and handed
// to the render package, which turns the grid into an image.Image and
// encodes it.
//
// The linear mode interleaves channels (RGBRGB...), the channel mode fills
// whole colour planes one after another, and the single mode draws every
// byte as its own grayscale pixel on a canvas enlarged by sqrt(channels).
package byteimg

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Stdin is the Source path that reads standard input.
const Stdin = "-"

// Source is a window onto a file. Limit 0 reads to the end of the file.
type Source struct {
	Path   string
	Offset int64
	Limit  int64
}

func NewSource(path string) Source {
	return Source{Path: path}
}

// Load reads the window into memory.
func (src Source) Load() ([]byte, error) {
	if src.Offset < 0 || src.Limit < 0 {
		return nil, fmt.Errorf("source %s: negative offset or limit", src.Path)
	}

	if src.Path == Stdin {
		return src.read(os.Stdin, false)
	}

	file, err := os.Open(src.Path)
	if err != nil {
		return nil, fmt.Errorf("can't open %s: %w", src.Path, err)
	}
	defer file.Close()

	return src.read(file, true)
}

func (src Source) read(r io.ReadSeeker, seekable bool) ([]byte, error) {
	if src.Offset > 0 {
		var err error
		if seekable {
			_, err = r.Seek(src.Offset, io.SeekStart)
		} else {
			_, err = io.CopyN(io.Discard, r, src.Offset)
		}
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("can't seek %s to %d: %w", src.Path, src.Offset, err)
		}
	}

	var in io.Reader = bufio.NewReader(r)
	if src.Limit > 0 {
		in = io.LimitReader(in, src.Limit)
	}

	buf, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf("can't read %s: %w", src.Path, err)
	}
	return buf, nil
}
