package service

import (
	"errors"
	"strings"
	"time"

	"esportconnect/internal/domain"
)

// Draft is a posting being composed in the create-job form. Its list
// fields (requirements, games, positions) are edited item by item.
type Draft struct {
	Title        string
	Description  string
	Requirements []string
	Company      string
	Location     string
	Kind         domain.JobKind
	SalaryMin    int
	SalaryMax    int
	Currency     string
	Games        []string
	Positions    []string
	Experience   domain.Experience
	Deadline     time.Time
}

// ListField names one of the draft's editable list fields.
type ListField int

const (
	FieldRequirements ListField = iota
	FieldGames
	FieldPositions
)

var (
	ErrUnknownField    = errors.New("unknown list field")
	ErrIndexOutOfRange = errors.New("list index out of range")
	ErrLastItem        = errors.New("cannot remove the last item")

	ErrMissingTitle    = errors.New("title is required")
	ErrMissingCompany  = errors.New("company is required")
	ErrMissingDeadline = errors.New("deadline is required")
	ErrSalaryInverted  = errors.New("minimum salary exceeds maximum")
)

func (d *Draft) items(f ListField) (*[]string, error) {
	switch f {
	case FieldRequirements:
		return &d.Requirements, nil
	case FieldGames:
		return &d.Games, nil
	case FieldPositions:
		return &d.Positions, nil
	}
	return nil, ErrUnknownField
}

// AddItem appends an empty slot or a value to the named list field.
func (d *Draft) AddItem(f ListField, value string) error {
	items, err := d.items(f)
	if err != nil {
		return err
	}
	*items = append(*items, value)
	return nil
}

// SetItem replaces the i-th entry of the named list field.
func (d *Draft) SetItem(f ListField, i int, value string) error {
	items, err := d.items(f)
	if err != nil {
		return err
	}
	if i < 0 || i >= len(*items) {
		return ErrIndexOutOfRange
	}
	(*items)[i] = value
	return nil
}

// RemoveItem drops the i-th entry. The last remaining entry stays put, the
// form always shows at least one input per list field.
func (d *Draft) RemoveItem(f ListField, i int) error {
	items, err := d.items(f)
	if err != nil {
		return err
	}
	if len(*items) <= 1 {
		return ErrLastItem
	}
	if i < 0 || i >= len(*items) {
		return ErrIndexOutOfRange
	}
	*items = append((*items)[:i], (*items)[i+1:]...)
	return nil
}

// Validate collects every problem with the draft at once.
func (d Draft) Validate() error {
	var err error
	if d.Title == "" {
		err = errors.Join(err, ErrMissingTitle)
	}
	if d.Company == "" {
		err = errors.Join(err, ErrMissingCompany)
	}
	if d.Deadline.IsZero() {
		err = errors.Join(err, ErrMissingDeadline)
	}
	if d.SalaryMin > d.SalaryMax {
		err = errors.Join(err, ErrSalaryInverted)
	}
	return err
}

// dropEmpty removes blank entries left over from unused form slots.
func dropEmpty(items []string) []string {
	cleaned := make([]string, 0, len(items))
	for _, item := range items {
		if strings.TrimSpace(item) != "" {
			cleaned = append(cleaned, item)
		}
	}
	return cleaned
}
