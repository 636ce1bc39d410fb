package web

import (
	"errors"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	embedded "esportconnect"
	authservice "esportconnect/auth/service"
	"esportconnect/auth/users"
	"esportconnect/internal/config"
	"esportconnect/internal/domain"
	"esportconnect/internal/listing"
	"esportconnect/internal/service"
	"esportconnect/internal/web/webpath"

	"github.com/google/uuid"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html"
)

type Server struct {
	auth       *authservice.Service
	jobService *service.JobService
	app        *fiber.App
	cfg        config.Server
}

func New(js *service.JobService, cfg config.Server, authService *authservice.Service) (*Server, error) {
	server := Server{
		jobService: js,
		auth:       authService,
		cfg:        cfg,
	}

	fsFS, err := fs.Sub(embedded.Views, "views")
	if err != nil {
		return nil, err
	}
	engine := html.NewFileSystem(http.FS(fsFS), ".html")
	engine.Reload(cfg.Debug)
	engine.Debug(cfg.Debug)
	engine.AddFunc("FormatDate", formatDate)

	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(webpath.NewJob, func(c *fiber.Ctx) error {
		tokenCookie := c.Cookies("token")
		user, err := authService.Auth(c.Context(), tokenCookie, c.Method(), c.OriginalURL())
		if err != nil {
			switch {
			case errors.Is(err, authservice.ErrForbidden):
				c.Status(fiber.StatusForbidden)
			case errors.Is(err, authservice.ErrNotAuthorized):
				c.Status(fiber.StatusUnauthorized)
			default:
				c.Status(fiber.StatusInternalServerError)
			}
			return nil
		}
		c.Context().SetUserValue(userKey, user)
		return c.Next()
	})
	app.Get(webpath.Signin, server.HandleGetSignIn)
	app.Post(webpath.Signin, server.HandlePostSignIn)
	app.Get(webpath.Signup, server.HandleGetSignup)
	app.Post(webpath.Signup, server.HandlePostSignup)
	app.Get(webpath.Signout, server.HandleSignOut)
	app.Get(webpath.Home, func(ctx *fiber.Ctx) error {
		return ctx.Redirect(webpath.Jobs)
	})

	app.Get(webpath.Jobs, server.handleJobs)
	// registered before the :id route so "new" is not taken for an id
	app.Get(webpath.NewJob, server.handleCreateJobGet)
	app.Post(webpath.NewJob, server.handleCreateJobPost)
	app.Get(webpath.Job, server.handleJob)
	server.app = app
	return &server, nil
}

func (s *Server) Serve() error {
	return s.app.Listen(s.cfg.Host + ":" + strconv.Itoa(s.cfg.Port))
}

const userKey = "user"

// jobCard is a posting prepared for rendering.
type jobCard struct {
	domain.JobPosting
	SalaryRange string
	DaysLeft    int
}

func newJobCard(job domain.JobPosting, now time.Time) jobCard {
	return jobCard{
		JobPosting:  job,
		SalaryRange: listing.FormatSalary(job.Salary),
		DaysLeft:    listing.DaysUntilDeadline(job, now),
	}
}

func (s *Server) handleJobs(ctx *fiber.Ctx) error {
	user, _ := s.auth.CurrentUser()
	query := parseJobsQuery(ctx)
	jobs := s.jobService.List(query.ToListingQuery())
	now := time.Now()
	cards := make([]jobCard, 0, len(jobs))
	for _, job := range jobs {
		cards = append(cards, newJobCard(job, now))
	}
	return ctx.Render("jobs", newData("Jobs").
		WithUser(user).
		With("Jobs", cards).
		With("Query", query).
		With("Total", len(cards)),
		"layouts/main")
}

func (s *Server) handleJob(ctx *fiber.Ctx) error {
	user, _ := s.auth.CurrentUser()
	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return err
	}
	job, err := s.jobService.Get(id)
	if err != nil {
		return err
	}
	return ctx.Render("job", newData(job.Title).
		WithUser(user).
		With("Job", newJobCard(job, time.Now())),
		"layouts/main")
}

func (s *Server) handleCreateJobGet(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	return ctx.Render("newJob", newData("Post a Job").
		WithUser(user),
		"layouts/main")
}

func (s *Server) handleCreateJobPost(ctx *fiber.Ctx) error {
	user, _ := ctx.Context().UserValue(userKey).(users.User)
	draft, err := parseCreateJobRequest(ctx)
	if err != nil {
		return ctx.Render("newJob", newData("Post a Job").
			WithUser(user).
			WithErrors(err),
			"layouts/main")
	}
	job, err := s.jobService.Create(draft, user)
	if err != nil {
		return ctx.Render("newJob", newData("Post a Job").
			WithUser(user).
			WithErrors(err),
			"layouts/main")
	}
	return ctx.Redirect(webpath.Jobs + "/" + job.ID.String())
}

func (s *Server) HandleGetSignIn(ctx *fiber.Ctx) error {
	return ctx.Render("signin", newData("Sign In"), "layouts/main")
}

func (s *Server) HandlePostSignIn(ctx *fiber.Ctx) error {
	req, err := parseSignInRequest(ctx)
	if err != nil {
		return ctx.Render("signin", newData("Sign In").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Login(ctx.Context(), req.email, req.password, req.role)
	if err != nil {
		return err
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.Jobs)
}

func (s *Server) HandleGetSignup(ctx *fiber.Ctx) error {
	return ctx.Render("signup", newData("Sign Up"), "layouts/main")
}

func (s *Server) HandlePostSignup(ctx *fiber.Ctx) error {
	form, err := parseSignUpRequest(ctx)
	if err != nil {
		return ctx.Render("signup", newData("Sign Up").WithErrors(err), "layouts/main")
	}
	user, err := s.auth.Register(ctx.Context(), form)
	if err != nil {
		return ctx.Render("signup", newData("Sign Up").WithErrors(err), "layouts/main")
	}
	cookie, err := s.auth.GenerateJWTCookie(user.ID, s.cfg.Host)
	if err != nil {
		return err
	}
	ctx.Cookie(cookie)
	return ctx.Redirect(webpath.Jobs)
}

func (s *Server) HandleSignOut(ctx *fiber.Ctx) error {
	if err := s.auth.Logout(ctx.Context()); err != nil {
		return err
	}
	ctx.ClearCookie("token")
	return ctx.Redirect(webpath.Jobs)
}

func formatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}
