package storage

import (
	"errors"

	"esportconnect/internal/domain"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a posting does not exist.
var ErrNotFound = errors.New("not found")

// JobStorage holds the job corpus. List must return postings in stable
// corpus order so that sorting ties keep their relative position.
type JobStorage interface {
	List() []domain.JobPosting
	Get(id uuid.UUID) (domain.JobPosting, error)
	Add(job domain.JobPosting) domain.JobPosting
}
