package listing

import (
	"testing"
	"time"

	"esportconnect/internal/domain"
)

func TestFormatSalary(t *testing.T) {
	tests := []struct {
		name   string
		salary domain.Salary
		want   string
	}{
		{
			name:   "thousands are abbreviated",
			salary: domain.Salary{Min: 80000, Max: 150000, Currency: "USD"},
			want:   "$80k - $150k USD",
		},
		{
			name:   "abbreviation truncates, not rounds",
			salary: domain.Salary{Min: 1999, Max: 2999, Currency: "USD"},
			want:   "$1k - $2k USD",
		},
		{
			name:   "small amounts stay verbatim",
			salary: domain.Salary{Min: 500, Max: 999, Currency: "EUR"},
			want:   "$500 - $999 EUR",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatSalary(tt.salary); got != tt.want {
				t.Errorf("FormatSalary() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDaysUntilDeadline(t *testing.T) {
	deadline := time.Date(2024, time.February, 15, 0, 0, 0, 0, time.UTC)
	job := domain.JobPosting{Deadline: deadline}
	tests := []struct {
		name string
		now  time.Time
		want int
	}{
		{
			name: "whole days left",
			now:  time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC),
			want: 5,
		},
		{
			name: "partial day rounds up",
			now:  time.Date(2024, time.February, 9, 12, 0, 0, 0, time.UTC),
			want: 6,
		},
		{
			name: "deadline passed",
			now:  time.Date(2024, time.February, 17, 0, 0, 0, 0, time.UTC),
			want: -2,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := DaysUntilDeadline(job, tt.now); got != tt.want {
				t.Errorf("DaysUntilDeadline() = %d, want %d", got, tt.want)
			}
		})
	}
}
