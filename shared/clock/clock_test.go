package clock_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"thorn/shared/clock"
)

func TestToMinutes(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    int
		wantErr bool
	}{
		{
			name:  "midnight",
			value: "00:00",
			want:  0,
		},
		{
			name:  "morning",
			value: "09:30",
			want:  570,
		},
		{
			name:  "end of day",
			value: "23:59",
			want:  1439,
		},
		{
			name:    "missing separator",
			value:   "0930",
			wantErr: true,
		},
		{
			name:    "not a number",
			value:   "ab:cd",
			wantErr: true,
		},
		{
			name:    "hours out of range",
			value:   "24:00",
			wantErr: true,
		},
		{
			name:    "minutes out of range",
			value:   "10:60",
			wantErr: true,
		},
		{
			name:    "empty",
			value:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := clock.ToMinutes(tt.value)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFromMinutes(t *testing.T) {
	tests := []struct {
		name    string
		minutes int
		want    string
	}{
		{
			name:    "midnight",
			minutes: 0,
			want:    "00:00",
		},
		{
			name:    "morning",
			minutes: 570,
			want:    "09:30",
		},
		{
			name:    "single digit padding",
			minutes: 65,
			want:    "01:05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clock.FromMinutes(tt.minutes))
		})
	}
}

func TestFromMinutesRoundTrip(t *testing.T) {
	for _, value := range []string{"00:00", "08:15", "12:00", "23:30"} {
		minutes, err := clock.ToMinutes(value)

		assert.NoError(t, err)
		assert.Equal(t, value, clock.FromMinutes(minutes))
	}
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{
			name:   "identical intervals",
			aStart: 60, aEnd: 120, bStart: 60, bEnd: 120,
			want: true,
		},
		{
			name:   "partial overlap",
			aStart: 60, aEnd: 120, bStart: 90, bEnd: 150,
			want: true,
		},
		{
			name:   "containment",
			aStart: 60, aEnd: 180, bStart: 90, bEnd: 120,
			want: true,
		},
		{
			name:   "adjacent intervals do not overlap",
			aStart: 60, aEnd: 120, bStart: 120, bEnd: 180,
			want: false,
		},
		{
			name:   "disjoint intervals",
			aStart: 60, aEnd: 120, bStart: 180, bEnd: 240,
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, clock.Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			assert.Equal(t, tt.want, clock.Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}
