package services

import (
	"testing"

	"github.com/Dosada05/sports-calendar/models"
)

func TestEventNumberFor(t *testing.T) {
	tests := []struct {
		name      string
		eventType models.EventType
		level     models.EventLevel
		date      string
		id        int
		want      string
		wantOK    bool
	}{
		{"local municipal", models.EventTypeLocal, models.LevelMunicipal, "2026-03-05", 7, "MO-2026-007", true},
		{"local intermunicipal", models.EventTypeLocal, models.LevelIntermunicipal, "2025-12-31", 42, "MO-2025-042", true},
		{"wide id", models.EventTypeLocal, models.LevelMunicipal, "2025-01-01", 1234, "MO-2025-1234", true},
		{"away municipal", models.EventTypeAway, models.LevelMunicipal, "2026-03-05", 7, "", false},
		{"local regional", models.EventTypeLocal, models.LevelRegional, "2026-03-05", 7, "", false},
		{"bad date", models.EventTypeLocal, models.LevelMunicipal, "05.03.2026", 7, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := EventNumberFor(tt.eventType, tt.level, tt.date, tt.id)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("EventNumberFor() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
