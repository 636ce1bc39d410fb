package listing

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"esportconnect/internal/domain"
)

// DaysUntilDeadline returns the whole days left until the posting's
// deadline, rounded up. Zero or negative means the deadline has passed.
func DaysUntilDeadline(job domain.JobPosting, now time.Time) int {
	return int(math.Ceil(job.Deadline.Sub(now).Hours() / 24))
}

// FormatSalary renders a pay range as "$80k - $150k USD". Amounts from
// 1000 up are abbreviated to whole thousands, smaller ones are verbatim.
func FormatSalary(s domain.Salary) string {
	return fmt.Sprintf("$%s - $%s %s", formatAmount(s.Min), formatAmount(s.Max), s.Currency)
}

func formatAmount(n int) string {
	if n >= 1000 {
		return strconv.Itoa(n/1000) + "k"
	}
	return strconv.Itoa(n)
}
