// Package mem keeps the job corpus in memory. The demo dataset is fixed,
// runtime-created postings are appended and live until the process exits.
package mem

import (
	"sync"

	"esportconnect/internal/domain"
	"esportconnect/internal/storage"

	"github.com/google/uuid"
)

type Corpus struct {
	mu    sync.RWMutex
	jobs  []domain.JobPosting
	index map[uuid.UUID]int
}

var _ storage.JobStorage = (*Corpus)(nil)

// New builds a corpus pre-filled with the given postings, keeping order.
func New(jobs []domain.JobPosting) *Corpus {
	c := Corpus{
		jobs:  make([]domain.JobPosting, 0, len(jobs)),
		index: make(map[uuid.UUID]int, len(jobs)),
	}
	for _, job := range jobs {
		c.index[job.ID] = len(c.jobs)
		c.jobs = append(c.jobs, job)
	}
	return &c
}

func (c *Corpus) List() []domain.JobPosting {
	c.mu.RLock()
	defer c.mu.RUnlock()

	jobs := make([]domain.JobPosting, len(c.jobs))
	copy(jobs, c.jobs)
	return jobs
}

func (c *Corpus) Get(id uuid.UUID) (domain.JobPosting, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	i, ok := c.index[id]
	if !ok {
		return domain.JobPosting{}, storage.ErrNotFound
	}
	return c.jobs[i], nil
}

func (c *Corpus) Add(job domain.JobPosting) domain.JobPosting {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.index[job.ID] = len(c.jobs)
	c.jobs = append(c.jobs, job)
	return job
}
