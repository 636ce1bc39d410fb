package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type JobKind string

const (
	KindFullTime   JobKind = "full-time"
	KindPartTime   JobKind = "part-time"
	KindContract   JobKind = "contract"
	KindTournament JobKind = "tournament"
)

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
	ExperienceProfessional Experience = "professional"
)

type JobStatus string

const (
	StatusOpen   JobStatus = "open"
	StatusClosed JobStatus = "closed"
	StatusFilled JobStatus = "filled"
)

var (
	ErrUnknownJobKind    = errors.New("unknown job kind")
	ErrUnknownExperience = errors.New("unknown experience level")
	ErrUnknownJobStatus  = errors.New("unknown job status")
)

func ParseJobKind(s string) (JobKind, error) {
	k := JobKind(s)
	switch k {
	case KindFullTime, KindPartTime, KindContract, KindTournament:
		return k, nil
	}
	return "", ErrUnknownJobKind
}

func ParseExperience(s string) (Experience, error) {
	e := Experience(s)
	switch e {
	case ExperienceBeginner, ExperienceIntermediate, ExperienceAdvanced, ExperienceProfessional:
		return e, nil
	}
	return "", ErrUnknownExperience
}

func ParseJobStatus(s string) (JobStatus, error) {
	st := JobStatus(s)
	switch st {
	case StatusOpen, StatusClosed, StatusFilled:
		return st, nil
	}
	return "", ErrUnknownJobStatus
}

// Salary is a posting's pay range. Min and Max are whole units of Currency,
// Min <= Max.
type Salary struct {
	Min      int
	Max      int
	Currency string
}

// JobPosting is a single listing in the portal. Postings are immutable once
// created.
type JobPosting struct {
	ID           uuid.UUID
	Title        string
	Description  string
	Requirements []string
	Company      string
	Location     string
	Kind         JobKind
	Salary       Salary
	Games        []string
	Positions    []string
	Experience   Experience
	CreatedAt    time.Time
	Deadline     time.Time
	RecruiterID  uuid.UUID
	Status       JobStatus
}
