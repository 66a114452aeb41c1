package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Dosada05/sports-calendar/models"
)

const (
	ICSProductID = "-//Sports Calendar//Municipal Events//RU"
	ICSTimezone  = "Europe/Moscow"
)

// WriteICS writes events as an iCalendar feed. Events with an unparsable
// date or time are skipped.
func WriteICS(w io.Writer, name string, events []models.Event, now time.Time) error {
	var b strings.Builder

	b.WriteString("BEGIN:VCALENDAR\r\n")
	b.WriteString("VERSION:2.0\r\n")
	fmt.Fprintf(&b, "PRODID:%s\r\n", ICSProductID)
	fmt.Fprintf(&b, "X-WR-CALNAME:%s\r\n", escapeICS(name))
	fmt.Fprintf(&b, "X-WR-TIMEZONE:%s\r\n", ICSTimezone)
	b.WriteString("CALSCALE:GREGORIAN\r\n")

	stamp := now.UTC().Format("20060102T150405Z")
	for _, e := range events {
		start, err := time.Parse(models.DateLayout+" "+models.TimeLayout, e.Date+" "+e.Time)
		if err != nil {
			continue
		}

		b.WriteString("BEGIN:VEVENT\r\n")
		fmt.Fprintf(&b, "UID:event-%d@sports-calendar\r\n", e.ID)
		fmt.Fprintf(&b, "DTSTAMP:%s\r\n", stamp)
		fmt.Fprintf(&b, "DTSTART;TZID=%s:%s\r\n", ICSTimezone, start.Format("20060102T150405"))
		fmt.Fprintf(&b, "SUMMARY:%s\r\n", escapeICS(e.Title))
		fmt.Fprintf(&b, "LOCATION:%s\r\n", escapeICS(e.Location))
		desc := e.Description
		if e.Organizer != "" {
			desc = strings.TrimSpace(desc + "\nОрганизатор: " + e.Organizer)
		}
		fmt.Fprintf(&b, "DESCRIPTION:%s\r\n", escapeICS(desc))
		fmt.Fprintf(&b, "CATEGORIES:%s\r\n", escapeICS(e.Sport.DisplayName()))
		b.WriteString("END:VEVENT\r\n")
	}

	b.WriteString("END:VCALENDAR\r\n")

	_, err := io.WriteString(w, b.String())
	return err
}

var icsEscaper = strings.NewReplacer(
	`\`, `\\`,
	";", `\;`,
	",", `\,`,
	"\r\n", `\n`,
	"\n", `\n`,
)

func escapeICS(s string) string {
	return icsEscaper.Replace(s)
}
