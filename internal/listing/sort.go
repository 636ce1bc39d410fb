package listing

import (
	"sort"

	"esportconnect/internal/domain"
)

type SortKey string

const (
	SortNewest     SortKey = "newest"
	SortOldest     SortKey = "oldest"
	SortSalaryHigh SortKey = "salary-high"
	SortSalaryLow  SortKey = "salary-low"
	SortDeadline   SortKey = "deadline"
)

// sortJobs orders jobs in place by key. Ties keep their relative order.
// An unrecognized key leaves the slice as is.
func sortJobs(jobs []domain.JobPosting, key SortKey) {
	var less func(a, b domain.JobPosting) bool
	switch key {
	case SortNewest:
		less = func(a, b domain.JobPosting) bool { return a.CreatedAt.After(b.CreatedAt) }
	case SortOldest:
		less = func(a, b domain.JobPosting) bool { return a.CreatedAt.Before(b.CreatedAt) }
	case SortSalaryHigh:
		less = func(a, b domain.JobPosting) bool { return a.Salary.Max > b.Salary.Max }
	case SortSalaryLow:
		less = func(a, b domain.JobPosting) bool { return a.Salary.Max < b.Salary.Max }
	case SortDeadline:
		less = func(a, b domain.JobPosting) bool { return a.Deadline.Before(b.Deadline) }
	default:
		return
	}
	sort.SliceStable(jobs, func(i, j int) bool {
		return less(jobs[i], jobs[j])
	})
}
