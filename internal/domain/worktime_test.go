package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWorkTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    WorkTime
		wantErr bool
	}{
		{name: "24h morning", input: "08:00", want: WorkTime{Hour: 8, Minute: 0}},
		{name: "24h afternoon", input: "17:30", want: WorkTime{Hour: 17, Minute: 30}},
		{name: "single digit hour", input: "9:15", want: WorkTime{Hour: 9, Minute: 15}},
		{name: "am suffix", input: "8:00 am", want: WorkTime{Hour: 8, Minute: 0}},
		{name: "pm suffix adds 12", input: "4:30 pm", want: WorkTime{Hour: 16, Minute: 30}},
		{name: "12pm stays noon", input: "12:00 pm", want: WorkTime{Hour: 12, Minute: 0}},
		{name: "12am is midnight", input: "12:00 am", want: WorkTime{Hour: 0, Minute: 0}},
		{name: "uppercase suffix", input: "3:00 PM", want: WorkTime{Hour: 15, Minute: 0}},
		{name: "empty string", input: "", wantErr: true},
		{name: "missing minutes", input: "8", wantErr: true},
		{name: "bad suffix", input: "8:00 xx", wantErr: true},
		{name: "hour out of range", input: "25:00", wantErr: true},
		{name: "minute out of range", input: "10:75", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseWorkTime(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkTimeOn(t *testing.T) {
	date := time.Date(2025, 6, 2, 15, 42, 13, 0, time.UTC)

	got := WorkTime{Hour: 8, Minute: 30}.On(date)

	assert.Equal(t, time.Date(2025, 6, 2, 8, 30, 0, 0, SchedulingLocation), got)
}

func TestWorkTimeBefore(t *testing.T) {
	assert.True(t, WorkTime{Hour: 8}.Before(WorkTime{Hour: 9}))
	assert.True(t, WorkTime{Hour: 8, Minute: 15}.Before(WorkTime{Hour: 8, Minute: 30}))
	assert.False(t, WorkTime{Hour: 9}.Before(WorkTime{Hour: 9}))
	assert.False(t, WorkTime{Hour: 10}.Before(WorkTime{Hour: 9}))
}
