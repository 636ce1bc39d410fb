package webpath

const (
	Signin  = "/signin"
	Signup  = "/signup"
	Signout = "/signout"
	Home    = "/"

	Jobs   = "/jobs"
	NewJob = Jobs + "/new"
	Job    = Jobs + "/:id"
)

func Path() map[string]string {
	return map[string]string{
		"SignUp":  Signup,
		"SignIn":  Signin,
		"SignOut": Signout,
		"Home":    Home,
		"Jobs":    Jobs,
		"NewJob":  NewJob,
	}
}
