package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TeeTime is one scraped availability sighting.
type TeeTime struct {
	Date    string  `json:"Date"`
	Time    string  `json:"Time"`
	Players FlexInt `json:"Players"`
	Holes   FlexInt `json:"Holes"`
}

// FlexInt accepts a JSON number or a numeric string.
type FlexInt int

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q: %w", s, err)
		}
		*f = FlexInt(n)
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexInt(n)
	return nil
}

var teeDateLayouts = []string{
	"2006-01-02",
	"01/02/2006",
	"1/2/2006",
	"Mon Jan 2 2006",
	"Monday, January 2, 2006",
	time.RFC3339,
}

// ParsedDate tries the date layouts the scraper is known to emit.
func (t TeeTime) ParsedDate() (time.Time, bool) {
	s := strings.TrimSpace(t.Date)
	for _, layout := range teeDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// DayOfWeek returns the weekday name, or "" when Date is not recognized.
func (t TeeTime) DayOfWeek() string {
	d, ok := t.ParsedDate()
	if !ok {
		return ""
	}
	return d.Weekday().String()
}

// ShortDate returns M/D, or the raw Date when it is not recognized.
func (t TeeTime) ShortDate() string {
	d, ok := t.ParsedDate()
	if !ok {
		return t.Date
	}
	return fmt.Sprintf("%d/%d", int(d.Month()), d.Day())
}
