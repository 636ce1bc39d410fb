package service

import (
	"errors"
	"testing"
	"time"
)

func TestDraftValidate(t *testing.T) {
	deadline := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		draft    Draft
		wantErrs []error
	}{
		{
			name: "complete draft",
			draft: Draft{
				Title:     "Coach",
				Company:   "Cloud9",
				SalaryMin: 1000,
				SalaryMax: 2000,
				Deadline:  deadline,
			},
		},
		{
			name:     "empty draft reports every problem",
			draft:    Draft{},
			wantErrs: []error{ErrMissingTitle, ErrMissingCompany, ErrMissingDeadline},
		},
		{
			name: "inverted salary",
			draft: Draft{
				Title:     "Coach",
				Company:   "Cloud9",
				SalaryMin: 2000,
				SalaryMax: 1000,
				Deadline:  deadline,
			},
			wantErrs: []error{ErrSalaryInverted},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.draft.Validate()
			if len(tt.wantErrs) == 0 {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			for _, want := range tt.wantErrs {
				if !errors.Is(err, want) {
					t.Errorf("Validate() = %v, missing %v", err, want)
				}
			}
		})
	}
}

func TestDraftListFields(t *testing.T) {
	t.Parallel()
	var d Draft
	if err := d.AddItem(FieldGames, "Valorant"); err != nil {
		t.Fatal(err)
	}
	if err := d.AddItem(FieldGames, ""); err != nil {
		t.Fatal(err)
	}
	if err := d.SetItem(FieldGames, 1, "Counter-Strike 2"); err != nil {
		t.Fatal(err)
	}
	if err := d.RemoveItem(FieldGames, 0); err != nil {
		t.Fatal(err)
	}
	if len(d.Games) != 1 || d.Games[0] != "Counter-Strike 2" {
		t.Fatalf("unexpected games list: %v", d.Games)
	}
	if err := d.RemoveItem(FieldGames, 0); !errors.Is(err, ErrLastItem) {
		t.Errorf("removing the last item: err = %v, want %v", err, ErrLastItem)
	}
	if err := d.SetItem(FieldGames, 5, "x"); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("out of range set: err = %v, want %v", err, ErrIndexOutOfRange)
	}
	if err := d.AddItem(ListField(42), "x"); !errors.Is(err, ErrUnknownField) {
		t.Errorf("unknown field: err = %v, want %v", err, ErrUnknownField)
	}
}
