package listing

import (
	"testing"

	"esportconnect/internal/domain"
	"esportconnect/internal/seed"

	mapset "github.com/deckarep/golang-set/v2"
)

func titles(jobs []domain.JobPosting) []string {
	out := make([]string, 0, len(jobs))
	for _, job := range jobs {
		out = append(out, job.Company)
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestApply(t *testing.T) {
	corpus := seed.Jobs()
	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{
			name:  "no constraints keep corpus order",
			query: Query{Filter: NewFilter()},
			want:  []string{"Team Liquid", "Cloud9", "FaZe Clan", "100 Thieves", "NRG Esports", "TSM"},
		},
		{
			name:  "search by game name",
			query: Query{Search: "valorant", Filter: NewFilter()},
			want:  []string{"Cloud9"},
		},
		{
			name:  "search by company",
			query: Query{Search: "faze", Filter: NewFilter()},
			want:  []string{"FaZe Clan"},
		},
		{
			name:  "search without hits",
			query: Query{Search: "starcraft", Filter: NewFilter()},
			want:  []string{},
		},
		{
			name: "games filter",
			query: Query{Filter: Filter{
				Games: mapset.NewSet("Valorant"),
			}},
			want: []string{"Cloud9"},
		},
		{
			name: "positions filter intersects",
			query: Query{Filter: Filter{
				Positions: mapset.NewSet("Coach", "AWPer"),
			}},
			want: []string{"Cloud9", "FaZe Clan"},
		},
		{
			name: "experience filter",
			query: Query{Filter: Filter{
				Experience: domain.ExperienceProfessional,
			}},
			want: []string{"Team Liquid", "FaZe Clan"},
		},
		{
			name: "kind filter",
			query: Query{Filter: Filter{
				Kind: domain.KindTournament,
			}},
			want: []string{"NRG Esports"},
		},
		{
			name: "salary window keeps fully contained ranges only",
			query: Query{Filter: Filter{
				SalaryMin: 0,
				SalaryMax: 60000,
			}},
			want: []string{"NRG Esports"},
		},
		{
			name: "zero salary max means unbounded",
			query: Query{Filter: Filter{
				SalaryMin: 90000,
				SalaryMax: 0,
			}},
			want: []string{"Team Liquid", "Cloud9", "FaZe Clan", "100 Thieves", "NRG Esports", "TSM"},
		},
		{
			name: "location is a caseless substring",
			query: Query{Filter: Filter{
				Location: "remote",
			}},
			want: []string{"Cloud9", "TSM"},
		},
		{
			name:  "sort newest",
			query: Query{Filter: NewFilter(), Sort: SortNewest},
			want:  []string{"Team Liquid", "Cloud9", "FaZe Clan", "100 Thieves", "NRG Esports", "TSM"},
		},
		{
			name:  "sort oldest",
			query: Query{Filter: NewFilter(), Sort: SortOldest},
			want:  []string{"TSM", "NRG Esports", "100 Thieves", "FaZe Clan", "Cloud9", "Team Liquid"},
		},
		{
			name:  "sort by highest salary",
			query: Query{Filter: NewFilter(), Sort: SortSalaryHigh},
			want:  []string{"FaZe Clan", "Team Liquid", "Cloud9", "100 Thieves", "TSM", "NRG Esports"},
		},
		{
			name:  "sort by lowest salary",
			query: Query{Filter: NewFilter(), Sort: SortSalaryLow},
			want:  []string{"NRG Esports", "TSM", "100 Thieves", "Cloud9", "Team Liquid", "FaZe Clan"},
		},
		{
			name:  "sort by deadline",
			query: Query{Filter: NewFilter(), Sort: SortDeadline},
			want:  []string{"NRG Esports", "TSM", "100 Thieves", "FaZe Clan", "Cloud9", "Team Liquid"},
		},
		{
			name:  "unknown sort key keeps corpus order",
			query: Query{Filter: NewFilter(), Sort: SortKey("bogus")},
			want:  []string{"Team Liquid", "Cloud9", "FaZe Clan", "100 Thieves", "NRG Esports", "TSM"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := titles(Apply(corpus, tt.query))
			if !equalStrings(got, tt.want) {
				t.Errorf("Apply() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	corpus := seed.Jobs()
	_ = Apply(corpus, Query{Filter: NewFilter(), Sort: SortOldest})
	want := seed.Jobs()
	for i := range corpus {
		if corpus[i].ID != want[i].ID {
			t.Fatalf("corpus reordered at %d: got %s want %s", i, corpus[i].Title, want[i].Title)
		}
	}
}

func TestSortJobsIsStable(t *testing.T) {
	day := seed.Jobs()[0].CreatedAt
	jobs := []domain.JobPosting{
		{Title: "first", CreatedAt: day},
		{Title: "second", CreatedAt: day},
		{Title: "third", CreatedAt: day},
	}
	sortJobs(jobs, SortNewest)
	if jobs[0].Title != "first" || jobs[1].Title != "second" || jobs[2].Title != "third" {
		t.Errorf("equal keys must keep their relative order, got %v %v %v", jobs[0].Title, jobs[1].Title, jobs[2].Title)
	}
}
