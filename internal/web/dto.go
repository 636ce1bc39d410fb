package web

import (
	"strconv"
	"strings"

	"esportconnect/internal/domain"
	"esportconnect/internal/listing"

	"github.com/gofiber/fiber/v2"
)

// jobsQuery carries the raw query-string values of the jobs page.
type jobsQuery struct {
	Search     string
	Games      string
	Positions  string
	Experience string
	Kind       string
	SalaryMin  string
	SalaryMax  string
	Location   string
	Sort       string
}

func parseJobsQuery(ctx *fiber.Ctx) jobsQuery {
	return jobsQuery{
		Search:     ctx.Query("q"),
		Games:      ctx.Query("games"),
		Positions:  ctx.Query("positions"),
		Experience: ctx.Query("experience"),
		Kind:       ctx.Query("kind"),
		SalaryMin:  ctx.Query("salary-min"),
		SalaryMax:  ctx.Query("salary-max"),
		Location:   ctx.Query("location"),
		Sort:       ctx.Query("sort", string(listing.SortNewest)),
	}
}

// ToListingQuery converts the raw values into an engine query. Values
// that do not parse are treated as "no constraint", never as an error.
func (q jobsQuery) ToListingQuery() listing.Query {
	filter := listing.NewFilter()
	for _, game := range splitList(q.Games) {
		filter.Games.Add(game)
	}
	for _, position := range splitList(q.Positions) {
		filter.Positions.Add(position)
	}
	if experience, err := domain.ParseExperience(q.Experience); err == nil {
		filter.Experience = experience
	}
	if kind, err := domain.ParseJobKind(q.Kind); err == nil {
		filter.Kind = kind
	}
	filter.SalaryMin = parseAmount(q.SalaryMin)
	filter.SalaryMax = parseAmount(q.SalaryMax)
	filter.Location = q.Location
	return listing.Query{
		Search: q.Search,
		Filter: filter,
		Sort:   listing.SortKey(q.Sort),
	}
}

func splitList(raw string) []string {
	if raw == "" {
		return nil
	}
	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

func parseAmount(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
