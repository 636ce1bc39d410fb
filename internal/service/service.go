package service

import (
	"errors"
	"time"

	"esportconnect/auth/users"
	"esportconnect/internal/domain"
	"esportconnect/internal/listing"
	"esportconnect/internal/storage"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrNotRecruiter = errors.New("only recruiters can post jobs")

// Notifier is told about postings created at runtime.
type Notifier interface {
	NotifyNewJob(job domain.JobPosting)
}

type JobService struct {
	jobs     storage.JobStorage
	log      *logrus.Entry
	notifier Notifier
}

func New(jobs storage.JobStorage, log *logrus.Entry) *JobService {
	return &JobService{
		jobs: jobs,
		log:  log,
	}
}

// SetNotifier wires an optional notifier, e.g. the telegram bot.
func (s *JobService) SetNotifier(n Notifier) {
	s.notifier = n
}

// List runs the query engine over the corpus.
func (s *JobService) List(q listing.Query) []domain.JobPosting {
	return listing.Apply(s.jobs.List(), q)
}

func (s *JobService) Get(id uuid.UUID) (domain.JobPosting, error) {
	return s.jobs.Get(id)
}

// GetByRecruiter returns the postings owned by the given recruiter, in
// corpus order.
func (s *JobService) GetByRecruiter(recruiterID uuid.UUID) []domain.JobPosting {
	var owned []domain.JobPosting
	for _, job := range s.jobs.List() {
		if job.RecruiterID == recruiterID {
			owned = append(owned, job)
		}
	}
	return owned
}

// Create validates the draft and appends a new open posting to the corpus.
// The posting is not persisted anywhere, it lives as long as the process.
func (s *JobService) Create(d Draft, recruiter users.User) (domain.JobPosting, error) {
	if recruiter.Role != users.RoleRecruiter {
		return domain.JobPosting{}, ErrNotRecruiter
	}
	if err := d.Validate(); err != nil {
		return domain.JobPosting{}, err
	}
	job := domain.JobPosting{
		ID:           uuid.New(),
		Title:        d.Title,
		Description:  d.Description,
		Requirements: dropEmpty(d.Requirements),
		Company:      d.Company,
		Location:     d.Location,
		Kind:         d.Kind,
		Salary: domain.Salary{
			Min:      d.SalaryMin,
			Max:      d.SalaryMax,
			Currency: d.Currency,
		},
		Games:       dropEmpty(d.Games),
		Positions:   dropEmpty(d.Positions),
		Experience:  d.Experience,
		CreatedAt:   time.Now().UTC(),
		Deadline:    d.Deadline,
		RecruiterID: recruiter.ID,
		Status:      domain.StatusOpen,
	}
	job = s.jobs.Add(job)
	s.log.WithField("job", job.ID).WithField("company", job.Company).Info("job posted")
	if s.notifier != nil {
		s.notifier.NotifyNewJob(job)
	}
	return job, nil
}
