package listing

import (
	"esportconnect/internal/domain"
	"esportconnect/internal/normalize"

	mapset "github.com/deckarep/golang-set/v2"
)

// Filter is the set of constraints a visitor picked in the filter panel.
// Every field is optional: an empty set, empty string or zero bound means
// "no constraint" for that clause.
type Filter struct {
	Games      mapset.Set[string]
	Positions  mapset.Set[string]
	Experience domain.Experience
	Kind       domain.JobKind
	// Salary window. A posting passes only when its whole range fits
	// inside [SalaryMin, SalaryMax]. SalaryMax == 0 means unbounded.
	SalaryMin int
	SalaryMax int
	Location  string
}

// NewFilter returns a Filter with no constraints set.
func NewFilter() Filter {
	return Filter{
		Games:     mapset.NewSet[string](),
		Positions: mapset.NewSet[string](),
	}
}

// Match reports whether job passes every clause of the filter.
func (f Filter) Match(job domain.JobPosting) bool {
	return f.matchGames(job) &&
		f.matchPositions(job) &&
		f.matchExperience(job) &&
		f.matchKind(job) &&
		f.matchSalary(job) &&
		f.matchLocation(job)
}

func (f Filter) matchGames(job domain.JobPosting) bool {
	if f.Games == nil || f.Games.Cardinality() == 0 {
		return true
	}
	return f.Games.Intersect(mapset.NewSet(job.Games...)).Cardinality() > 0
}

func (f Filter) matchPositions(job domain.JobPosting) bool {
	if f.Positions == nil || f.Positions.Cardinality() == 0 {
		return true
	}
	return f.Positions.Intersect(mapset.NewSet(job.Positions...)).Cardinality() > 0
}

func (f Filter) matchExperience(job domain.JobPosting) bool {
	return f.Experience == "" || job.Experience == f.Experience
}

func (f Filter) matchKind(job domain.JobPosting) bool {
	return f.Kind == "" || job.Kind == f.Kind
}

// matchSalary requires both posting bounds to fit inside the window.
// A posting partially outside the window is excluded entirely.
func (f Filter) matchSalary(job domain.JobPosting) bool {
	if f.SalaryMax == 0 {
		return true
	}
	return job.Salary.Min >= f.SalaryMin && job.Salary.Max <= f.SalaryMax
}

func (f Filter) matchLocation(job domain.JobPosting) bool {
	if f.Location == "" {
		return true
	}
	return normalize.Contains(job.Location, f.Location)
}

// matchSearch is the free-text clause: the term must occur in the title,
// the company name or one of the game names.
func matchSearch(job domain.JobPosting, term string) bool {
	if term == "" {
		return true
	}
	if normalize.Contains(job.Title, term) || normalize.Contains(job.Company, term) {
		return true
	}
	for _, game := range job.Games {
		if normalize.Contains(game, term) {
			return true
		}
	}
	return false
}
