package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveHours(t *testing.T) {
	tests := []struct {
		name         string
		timeIn       string
		timeOut      string
		breakMinutes int
		want         float64
		wantErr      bool
	}{
		{name: "plain day shift", timeIn: "09:00", timeOut: "17:00", breakMinutes: 60, want: 7.0},
		{name: "no break", timeIn: "08:00", timeOut: "12:00", breakMinutes: 0, want: 4.0},
		{name: "overnight shift", timeIn: "22:00", timeOut: "06:00", breakMinutes: 30, want: 7.5},
		{name: "rounds to nearest half hour", timeIn: "09:00", timeOut: "17:15", breakMinutes: 0, want: 8.5},
		{name: "rounds down", timeIn: "09:00", timeOut: "17:10", breakMinutes: 0, want: 8.0},
		{name: "break swallows shift", timeIn: "09:00", timeOut: "10:00", breakMinutes: 90, wantErr: true},
		{name: "zero-length shift", timeIn: "09:00", timeOut: "09:00", breakMinutes: 0, wantErr: true},
		{name: "rounds to zero", timeIn: "10:00", timeOut: "10:10", breakMinutes: 0, wantErr: true},
		{name: "negative break", timeIn: "09:00", timeOut: "17:00", breakMinutes: -10, wantErr: true},
		{name: "bad time format", timeIn: "9am", timeOut: "17:00", breakMinutes: 0, wantErr: true},
		{name: "out of range minute", timeIn: "09:75", timeOut: "17:00", breakMinutes: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DeriveHours(tt.timeIn, tt.timeOut, tt.breakMinutes)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProgressPercentage(t *testing.T) {
	tests := []struct {
		name      string
		completed float64
		required  float64
		want      int
	}{
		{name: "new student", completed: 0, required: 600, want: 0},
		{name: "halfway", completed: 300, required: 600, want: 50},
		{name: "exactly done", completed: 600, required: 600, want: 100},
		{name: "over target clamps", completed: 900, required: 600, want: 100},
		{name: "tiny progress rounds to zero", completed: 1, required: 600, want: 0},
		{name: "zero requirement falls back to default", completed: 300, required: 0, want: 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProgressPercentage(tt.completed, tt.required)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0)
			assert.LessOrEqual(t, got, 100)
		})
	}
}

func TestParseClockTime(t *testing.T) {
	got, err := ParseClockTime("13:45")
	assert.NoError(t, err)
	assert.Equal(t, 13*60+45, got)

	_, err = ParseClockTime("25:00")
	assert.Error(t, err)
	_, err = ParseClockTime("")
	assert.Error(t, err)
}
