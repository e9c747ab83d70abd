// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"bytes"
	"fmt"

	"github.com/ik5/soundedit/audio"
	"github.com/ik5/soundedit/formats/wav"
)

// Example_roundTrip encodes a buffer and decodes it again.
func Example_roundTrip() {
	buf := audio.NewBuffer(make([]float32, 8000), 16000)

	data, err := wav.Encode(buf)
	if err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}
	fmt.Printf("Encoded %d bytes\n", len(data))

	src, err := wav.Decoder{}.Decode(bytes.NewReader(data))
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	decoded, err := audio.ReadBuffer(src)
	if err != nil {
		fmt.Printf("Read error: %v\n", err)
		return
	}

	fmt.Printf("Decoded %d samples at %d Hz\n", decoded.Len(), decoded.SampleRate)
	// Output:
	// Encoded 16044 bytes
	// Decoded 8000 samples at 16000 Hz
}
