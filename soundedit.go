// SPDX-License-Identifier: EPL-2.0

package soundedit

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/formats/aiff"
	"github.com/ik5/soundedit/formats/flac"
	"github.com/ik5/soundedit/formats/mp3"
	"github.com/ik5/soundedit/formats/vorbis"
	"github.com/ik5/soundedit/formats/wav"
)

var defaultRegistry = DefaultRegistry()

// DefaultRegistry returns a registry with every decoder in formats/,
// keyed by the usual file extensions.
func DefaultRegistry() *audio.Registry {
	reg := audio.NewRegistry()

	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}

// NormalizeFormat lower-cases a format key and drops a leading dot, so file
// extensions can be passed as is.
func NormalizeFormat(format string) string {
	return strings.ToLower(strings.TrimPrefix(format, "."))
}

// FormatOf returns the format key for a file path.
func FormatOf(path string) string {
	return NormalizeFormat(filepath.Ext(path))
}

// Decode decodes data with the default registry into a mono buffer at the
// file's own sample rate.
func Decode(data []byte, format string) (audio.Buffer, error) {
	return DecodeWith(defaultRegistry, data, format)
}

// DecodeWith is Decode over a caller supplied registry.
func DecodeWith(reg *audio.Registry, data []byte, format string) (audio.Buffer, error) {
	format = NormalizeFormat(format)

	dec, ok := reg.Get(format)
	if !ok {
		return audio.Buffer{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("decoding %s: %w", format, err)
	}
	defer src.Close()

	buf, err := audio.ReadBuffer(src)
	if err != nil {
		return audio.Buffer{}, fmt.Errorf("reading %s samples: %w", format, err)
	}

	return buf, nil
}

// Encode serializes buf as "wav" or "mp3".
func Encode(buf audio.Buffer, format string) ([]byte, error) {
	switch format = NormalizeFormat(format); format {
	case "wav", "wave":
		return wav.Encode(buf)
	case "mp3":
		return mp3.Encode(buf)
	default:
		return nil, fmt.Errorf("%w: cannot encode %q", ErrUnknownFormat, format)
	}
}
