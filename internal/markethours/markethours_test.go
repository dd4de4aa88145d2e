package markethours

import (
	"testing"
	"time"
)

func TestBusinessDaysBetween(t *testing.T) {
	// 2025-06-02 is a Monday.
	monday := time.Date(2025, 6, 2, 10, 0, 0, 0, IST)

	tests := []struct {
		name     string
		start    time.Time
		end      time.Time
		expected int
	}{
		{
			name:     "same weekday counts once",
			start:    monday,
			end:      monday,
			expected: 1,
		},
		{
			name:     "monday through friday",
			start:    monday,
			end:      monday.AddDate(0, 0, 4),
			expected: 5,
		},
		{
			name:     "weekend excluded",
			start:    monday,
			end:      monday.AddDate(0, 0, 7), // next Monday
			expected: 6,
		},
		{
			name:     "saturday to sunday",
			start:    monday.AddDate(0, 0, 5),
			end:      monday.AddDate(0, 0, 6),
			expected: 0,
		},
		{
			name:     "end before start",
			start:    monday,
			end:      monday.AddDate(0, 0, -1),
			expected: 0,
		},
		{
			name:     "two full weeks",
			start:    monday,
			end:      monday.AddDate(0, 0, 11), // Friday of the following week
			expected: 10,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BusinessDaysBetween(tt.start, tt.end, IST)
			if got != tt.expected {
				t.Errorf("expected %d business days, got %d", tt.expected, got)
			}
		})
	}
}

func TestBusinessDaysBetween_TimeOfDayIrrelevant(t *testing.T) {
	morning := time.Date(2025, 6, 2, 0, 1, 0, 0, IST)
	night := time.Date(2025, 6, 3, 23, 59, 0, 0, IST)
	if got := BusinessDaysBetween(morning, night, IST); got != 2 {
		t.Errorf("expected 2 business days across date boundaries, got %d", got)
	}
}

func TestNormalize(t *testing.T) {
	utcNoon := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)

	got := Normalize(utcNoon, IST)
	if !got.Equal(utcNoon) {
		t.Error("normalization must not move the instant in time")
	}
	if got.Hour() != 17 || got.Minute() != 30 {
		t.Errorf("expected 17:30 IST, got %02d:%02d", got.Hour(), got.Minute())
	}

	var zero time.Time
	if !Normalize(zero, IST).IsZero() {
		t.Error("zero time must pass through unchanged")
	}
	if !Normalize(utcNoon, nil).Equal(utcNoon) {
		t.Error("nil location must pass through unchanged")
	}
}

func TestDateOnly(t *testing.T) {
	// 23:30 UTC is already the next day in IST.
	lateUTC := time.Date(2025, 6, 2, 23, 30, 0, 0, time.UTC)
	got := DateOnly(lateUTC, IST)
	if got.Day() != 3 || got.Hour() != 0 || got.Minute() != 0 {
		t.Errorf("expected IST midnight of the 3rd, got %v", got)
	}
}

func TestIsWeekday(t *testing.T) {
	friday := time.Date(2025, 6, 6, 12, 0, 0, 0, IST)
	saturday := friday.AddDate(0, 0, 1)
	if !IsWeekday(friday) {
		t.Error("expected Friday to be a weekday")
	}
	if IsWeekday(saturday) {
		t.Error("expected Saturday to not be a weekday")
	}
}
