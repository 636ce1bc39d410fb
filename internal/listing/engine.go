// Package listing turns the job corpus plus the visitor's search term,
// filters and sort choice into an ordered result list. It never mutates
// the corpus and has no failure paths: empty input gives an empty result.
package listing

import "esportconnect/internal/domain"

// Query bundles everything the visitor chose on the jobs page.
type Query struct {
	Search string
	Filter Filter
	Sort   SortKey
}

// Apply filters jobs by q and returns a new, ordered slice.
func Apply(jobs []domain.JobPosting, q Query) []domain.JobPosting {
	result := make([]domain.JobPosting, 0, len(jobs))
	for _, job := range jobs {
		if !matchSearch(job, q.Search) {
			continue
		}
		if !q.Filter.Match(job) {
			continue
		}
		result = append(result, job)
	}
	sortJobs(result, q.Sort)
	return result
}
