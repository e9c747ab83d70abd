// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"testing"
)

func TestContextLimits_NewContext(t *testing.T) {
	t.Parallel()

	limits := DefaultContextLimits()

	tests := []struct {
		name    string
		length  int
		rate    int
		wantErr error
	}{
		{name: "cd quality", length: 44100, rate: 44100},
		{name: "lowest rate", length: 1, rate: 3000},
		{name: "below range", length: 100, rate: 2999, wantErr: ErrUnsupportedSampleRate},
		{name: "above range", length: 100, rate: 800000, wantErr: ErrUnsupportedSampleRate},
		{name: "empty", length: 0, rate: 44100, wantErr: ErrContextTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctx, err := limits.NewContext(tt.length, tt.rate)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewContext() error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && (ctx.Length != tt.length || ctx.SampleRate != tt.rate) {
				t.Errorf("NewContext() = %+v", ctx)
			}
		})
	}
}

func TestOfflineContext_Frame(t *testing.T) {
	t.Parallel()

	ctx := OfflineContext{Length: 44100, SampleRate: 44100}

	tests := []struct {
		t    float64
		want int
	}{
		{t: 0, want: 0},
		{t: 0.25, want: 11025},
		{t: 0.75, want: 33075},
		{t: 2, want: 44100},
		{t: -1, want: 0},
	}

	for _, tt := range tests {
		if got := ctx.Frame(tt.t); got != tt.want {
			t.Errorf("Frame(%v) = %d, want %d", tt.t, got, tt.want)
		}
	}

	if got := ctx.Duration(); got != 1 {
		t.Errorf("Duration() = %v, want 1", got)
	}
	if got := ctx.Time(22050); got != 0.5 {
		t.Errorf("Time(22050) = %v, want 0.5", got)
	}
}
