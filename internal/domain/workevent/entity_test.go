package workevent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2025, time.November, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlapsPeriod(t *testing.T) {
	start := day(1)
	end := day(30)
	octStart := time.Date(2025, time.October, 25, 0, 0, 0, 0, time.UTC)
	decEnd := time.Date(2025, time.December, 5, 0, 0, 0, 0, time.UTC)

	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name  string
		event WorkEvent
		want  bool
	}{
		{"single day inside", WorkEvent{StartDate: day(10)}, true},
		{"single day on start bound", WorkEvent{StartDate: day(1)}, true},
		{"single day on end bound", WorkEvent{StartDate: day(30)}, true},
		{"single day before", WorkEvent{StartDate: octStart}, false},
		{"single day after", WorkEvent{StartDate: decEnd}, false},
		{"range fully inside", WorkEvent{StartDate: day(5), EndDate: ptr(day(9))}, true},
		{"range straddles start", WorkEvent{StartDate: octStart, EndDate: ptr(day(2))}, true},
		{"range straddles end", WorkEvent{StartDate: day(28), EndDate: ptr(decEnd)}, true},
		{"range covers whole period", WorkEvent{StartDate: octStart, EndDate: ptr(decEnd)}, true},
		{"range entirely before", WorkEvent{StartDate: octStart, EndDate: ptr(time.Date(2025, time.October, 31, 0, 0, 0, 0, time.UTC))}, false},
		{"range entirely after", WorkEvent{StartDate: time.Date(2025, time.December, 1, 0, 0, 0, 0, time.UTC), EndDate: ptr(decEnd)}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.event.OverlapsPeriod(start, end))
		})
	}
}

func TestEventTypePayloadKind(t *testing.T) {
	assert.True(t, EventTypeHorasExtra.UsesHours())
	for _, et := range []EventType{EventTypeIncapacidad, EventTypePermiso, EventTypeLicencia, EventTypeVacaciones, EventTypeOtro} {
		assert.False(t, et.UsesHours(), "%s is measured in days", et)
	}
	assert.False(t, EventType("Festivo").Valid())
}
