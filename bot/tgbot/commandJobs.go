package tgbot

import (
	"strconv"
	"strings"

	"esportconnect/bot/model"
	"esportconnect/internal/domain"
	"esportconnect/internal/listing"
	"esportconnect/internal/service"

	mapset "github.com/deckarep/golang-set/v2"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const maxJobsPerMessage = 5

type JobsCommand struct {
	jobService *service.JobService
}

func (c *JobsCommand) Run(_ model.User, args string, resp *tgbotapi.MessageConfig) error {
	jobs := c.jobService.List(listing.Query{
		Search: strings.TrimSpace(args),
		Filter: listing.NewFilter(),
		Sort:   listing.SortNewest,
	})
	if len(jobs) == 0 {
		resp.Text = "No jobs found"
		return nil
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(jobs)))
	b.WriteString(" jobs found\n\n")
	for i := range jobs {
		if i >= maxJobsPerMessage {
			b.WriteString("...and ")
			b.WriteString(strconv.Itoa(len(jobs) - maxJobsPerMessage))
			b.WriteString(" more on the site")
			break
		}
		b.WriteString(formatJob(jobs[i]))
		b.WriteString("\n")
	}
	resp.Text = b.String()
	return nil
}

func formatJob(job domain.JobPosting) string {
	var b strings.Builder
	b.WriteString(job.Title)
	b.WriteString("\n")
	b.WriteString(job.Company)
	b.WriteString(", ")
	b.WriteString(job.Location)
	b.WriteString("\n")
	b.WriteString(listing.FormatSalary(job.Salary))
	b.WriteString("\n")
	b.WriteString("Apply by ")
	b.WriteString(job.Deadline.Format("Jan 2, 2006"))
	b.WriteString("\n")
	return b.String()
}

func (c *JobsCommand) Help() string {
	return "Shows open jobs, /jobs with a term searches titles, teams and games"
}

func (c *JobsCommand) Permission() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleUser)
}

func (c *JobsCommand) Visibility() mapset.Set[model.UserRole] {
	return mapset.NewSet[model.UserRole](model.RoleAdmin, model.RoleUser)
}
