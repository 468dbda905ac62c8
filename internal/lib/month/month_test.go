package month

import (
	"testing"
	"time"
)

func TestBounds(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		wantFrom time.Time
		wantTo   time.Time
	}{
		{
			name:     "regular month",
			year:     2025,
			month:    time.March,
			wantFrom: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "december rolls into next year",
			year:     2024,
			month:    time.December,
			wantFrom: time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:     "february in a leap year",
			year:     2024,
			month:    time.February,
			wantFrom: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantTo:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			from, to := Bounds(tt.year, tt.month)

			if !from.Equal(tt.wantFrom) {
				t.Errorf("Bounds() from = %v, want %v", from, tt.wantFrom)
			}
			if !to.Equal(tt.wantTo) {
				t.Errorf("Bounds() to = %v, want %v", to, tt.wantTo)
			}
		})
	}
}

func TestBoundsAt(t *testing.T) {
	moment := time.Date(2025, 6, 17, 15, 30, 0, 0, time.UTC)

	from, to := BoundsAt(moment)

	wantFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	wantTo := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	if !from.Equal(wantFrom) {
		t.Errorf("BoundsAt() from = %v, want %v", from, wantFrom)
	}
	if !to.Equal(wantTo) {
		t.Errorf("BoundsAt() to = %v, want %v", to, wantTo)
	}
}

// Момент в другой зоне относится к месяцу по UTC.
func TestBoundsAt_NonUTCZone(t *testing.T) {
	zone := time.FixedZone("UTC+5", 5*60*60)
	// 1 июля 03:00 по UTC+5 это еще 30 июня по UTC.
	moment := time.Date(2025, 7, 1, 3, 0, 0, 0, zone)

	from, _ := BoundsAt(moment)

	wantFrom := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if !from.Equal(wantFrom) {
		t.Errorf("BoundsAt() from = %v, want %v", from, wantFrom)
	}
}
