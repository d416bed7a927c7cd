package main

import "testing"

func TestParseDate(t *testing.T) {
	d, err := parseDate(" 2024-03-05 ")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	if d.Year != 2024 || d.Month != 2 || d.Day != 5 {
		t.Fatalf("unexpected date %+v", d)
	}

	for _, raw := range []string{"2024-03", "2024-x-01", "2024-0-10", ""} {
		if _, err := parseDate(raw); err == nil {
			t.Fatalf("expected %q to fail", raw)
		}
	}
}

func TestForecastDays(t *testing.T) {
	cases := []struct {
		name                       string
		days                       int
		explicit, hasDate, hasSeed bool
		want                       int
		wantErr                    bool
	}{
		{name: "no flags falls back to one day", days: 7, want: 0},
		{name: "explicit days need a date", days: 3, explicit: true, wantErr: true},
		{name: "explicit single day without date", days: 0, explicit: true, want: 0},
		{name: "date uses configured days", days: 7, hasDate: true, want: 7},
		{name: "seed with forecast is rejected", days: 7, hasDate: true, hasSeed: true, wantErr: true},
		{name: "seed with single day", days: 0, hasDate: true, hasSeed: true, want: 0},
		{name: "seed without date", days: 7, hasSeed: true, want: 0},
	}
	for _, tc := range cases {
		got, err := forecastDays(tc.days, tc.explicit, tc.hasDate, tc.hasSeed)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("%s: expected error, got %d", tc.name, got)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("%s: expected %d, got %d (%v)", tc.name, tc.want, got, err)
		}
	}
}
