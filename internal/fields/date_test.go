package fields

import (
	"testing"

	"github.com/voucherdesk/voucherdesk/constants"
)

func TestDate(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "hyphenated anchor",
			text: "VR No. 0058 Date:- 05-12-2025",
			want: "05-12-2025",
		},
		{
			name: "plain anchor",
			text: "Date: 28-02-2024",
			want: "28-02-2024",
		},
		{
			name: "shape accepted without calendar validation",
			text: "Date: 99-99-9999",
			want: "99-99-9999",
		},
		{
			name: "no anchor",
			text: "05-12-2025 appears without its label",
			want: constants.Unknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Date(tt.text); got != tt.want {
				t.Errorf("Date() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMonthPeriod(t *testing.T) {
	tests := []struct {
		name string
		date string
		want string
	}{
		{name: "valid date", date: "05-12-2025", want: "December 2025"},
		{name: "impossible calendar date", date: "31-02-2025", want: constants.Unknown},
		{name: "garbage shape", date: "99-99-9999", want: constants.Unknown},
		{name: "unknown passthrough", date: constants.Unknown, want: constants.Unknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MonthPeriod(tt.date); got != tt.want {
				t.Errorf("MonthPeriod(%q) = %q, want %q", tt.date, got, tt.want)
			}
		})
	}
}
