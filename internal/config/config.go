// SPDX-License-Identifier: EPL-2.0

package config

// Size limits
const (
	// ByteLimit is the ceiling for a buffer encoded as 16-bit PCM.
	ByteLimit = 10 * 1000 * 1000

	// FallbackSampleRate is the only compression tier: oversized buffers are
	// resampled to it before an edit is refused.
	FallbackSampleRate = 22050

	// BytesPerSample of the 16-bit PCM encoding
	BytesPerSample = 2
)

// Offline rendering
const (
	MinContextSampleRate = 3000
	MaxContextSampleRate = 768000

	// MinEffectSamples is the shortest buffer an effect can render.
	MinEffectSamples = 2
)

// Waveform settings
const (
	ChunkSize  = 1024 // Samples per RMS level
	RMSScaling = 0.55
	PathWidth  = 600
	PathHeight = 160
)

// Encoder settings
const (
	MP3BlockSize = 1152
	MP3Bitrate   = 128 // kbps, constant bitrate
)

// Effect parameters
const (
	MuteRampSeconds   = 0.001
	VolumeRampSeconds = 0.01

	SofterVolume = 0.5
	LouderVolume = 1.25

	FasterRate = 1.25
	SlowerRate = 0.75

	EchoDelaySeconds = 0.25
	EchoFeedback     = 0.5
	EchoTailSeconds  = 0.75

	RobotFrequency = 50.0 // Hz, ring modulator carrier
)

// Playback
const (
	PlayheadFPS = 60
)
