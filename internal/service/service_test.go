package service

import (
	"errors"
	"io"
	"testing"
	"time"

	"esportconnect/auth/users"
	"esportconnect/internal/domain"
	"esportconnect/internal/listing"
	"esportconnect/internal/seed"
	"esportconnect/internal/storage/mem"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

func testService() *JobService {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return New(mem.New(seed.Jobs()), log.WithField("module", "jobs"))
}

type notifierSpy struct {
	jobs []domain.JobPosting
}

func (n *notifierSpy) NotifyNewJob(job domain.JobPosting) {
	n.jobs = append(n.jobs, job)
}

func recruiter() users.User {
	return users.User{
		ID:       uuid.New(),
		Username: "ESportsRecruiter",
		Email:    "recruiter@esports.com",
		Role:     users.RoleRecruiter,
	}
}

func validDraft() Draft {
	return Draft{
		Title:        "Dota 2 Mid Laner",
		Description:  "Immediate start.",
		Requirements: []string{"Immortal rank", "", "  "},
		Company:      "OG",
		Location:     "Remote",
		Kind:         domain.KindFullTime,
		SalaryMin:    50000,
		SalaryMax:    90000,
		Currency:     "USD",
		Games:        []string{"Dota 2"},
		Positions:    []string{"Mid"},
		Experience:   domain.ExperienceProfessional,
		Deadline:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreate(t *testing.T) {
	t.Parallel()
	svc := testService()
	spy := &notifierSpy{}
	svc.SetNotifier(spy)

	rec := recruiter()
	job, err := svc.Create(validDraft(), rec)
	if err != nil {
		t.Fatal(err)
	}
	if job.ID == uuid.Nil {
		t.Error("created job must get an id")
	}
	if job.Status != domain.StatusOpen {
		t.Errorf("status = %v, want %v", job.Status, domain.StatusOpen)
	}
	if job.RecruiterID != rec.ID {
		t.Errorf("recruiter id = %v, want %v", job.RecruiterID, rec.ID)
	}
	if len(job.Requirements) != 1 {
		t.Errorf("blank requirement slots must be dropped, got %v", job.Requirements)
	}
	if len(spy.jobs) != 1 || spy.jobs[0].ID != job.ID {
		t.Errorf("notifier must be told once about the new job, got %v", spy.jobs)
	}

	all := svc.List(listing.Query{Filter: listing.NewFilter()})
	if len(all) != 7 {
		t.Fatalf("corpus size = %d, want 7", len(all))
	}
	if all[6].ID != job.ID {
		t.Error("new job must be appended after the seeded corpus")
	}
}

func TestCreateRejectsPlayers(t *testing.T) {
	t.Parallel()
	svc := testService()
	player := users.User{ID: uuid.New(), Role: users.RolePlayer}
	_, err := svc.Create(validDraft(), player)
	if !errors.Is(err, ErrNotRecruiter) {
		t.Errorf("err = %v, want %v", err, ErrNotRecruiter)
	}
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	t.Parallel()
	svc := testService()
	d := validDraft()
	d.Title = ""
	_, err := svc.Create(d, recruiter())
	if !errors.Is(err, ErrMissingTitle) {
		t.Errorf("err = %v, want %v", err, ErrMissingTitle)
	}
	if got := svc.List(listing.Query{Filter: listing.NewFilter()}); len(got) != 6 {
		t.Errorf("rejected draft must not touch the corpus, size = %d", len(got))
	}
}

func TestGetByRecruiter(t *testing.T) {
	t.Parallel()
	svc := testService()
	owned := svc.GetByRecruiter(seed.RecruiterID)
	if len(owned) != 6 {
		t.Fatalf("seeded recruiter owns %d postings, want 6", len(owned))
	}
	if got := svc.GetByRecruiter(uuid.New()); got != nil {
		t.Errorf("unknown recruiter owns %v, want none", got)
	}
}
