package sel

const (
	Logo = ".brand-logo"

	SearchField = "#search-field"

	JobListRow      = "#job-list-row"
	JobListRowTitle = "#job-list-row-title"
	JobListRowLink  = JobListRow + " a"

	SignInFormEmail  = "#email-field"
	SignInFormPass   = "#password-field"
	SignInFormRole   = "#role-field"
	SignInFormSubmit = "#signin-form-submit"

	NewJobFormTitle    = "#new-job-form-title"
	NewJobFormCompany  = "#new-job-form-company"
	NewJobFormDeadline = "#new-job-form-deadline"
	NewJobFormSubmit   = "#new-job-form-submit"
)
