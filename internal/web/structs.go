package web

import (
	"errors"
	"time"

	"esportconnect/auth/service"
	"esportconnect/auth/users"
	"esportconnect/internal/domain"
	jobservice "esportconnect/internal/service"

	"github.com/gofiber/fiber/v2"
)

type signInRequest struct {
	email    string
	password string
	role     users.Role
}

func parseSignInRequest(ctx *fiber.Ctx) (signInRequest, error) {
	var err error
	email := ctx.FormValue("email", "")
	if email == "" {
		err = errors.Join(err, service.ErrMissingEmail)
	}
	password := ctx.FormValue("password", "")
	if password == "" {
		err = errors.Join(err, service.ErrMissingPassword)
	}
	role, rerr := users.ParseRole(ctx.FormValue("role", string(users.RolePlayer)))
	err = errors.Join(err, rerr)
	if err != nil {
		return signInRequest{}, err
	}
	return signInRequest{
		email:    email,
		password: password,
		role:     role,
	}, nil
}

func parseSignUpRequest(ctx *fiber.Ctx) (service.RegisterForm, error) {
	role, err := users.ParseRole(ctx.FormValue("role", string(users.RolePlayer)))
	if err != nil {
		return service.RegisterForm{}, err
	}
	form := service.RegisterForm{
		Username: ctx.FormValue("username", ""),
		Email:    ctx.FormValue("email", ""),
		Password: ctx.FormValue("password", ""),
		Role:     role,
		Company:  ctx.FormValue("company", ""),
		Position: ctx.FormValue("position", ""),
	}
	if err := form.Validate(); err != nil {
		return service.RegisterForm{}, err
	}
	return form, nil
}

var errBadDeadline = errors.New("deadline must be a date in YYYY-MM-DD form")

func parseCreateJobRequest(ctx *fiber.Ctx) (jobservice.Draft, error) {
	var err error
	draft := jobservice.Draft{
		Title:        ctx.FormValue("title", ""),
		Description:  ctx.FormValue("description", ""),
		Requirements: splitList(ctx.FormValue("requirements", "")),
		Company:      ctx.FormValue("company", ""),
		Location:     ctx.FormValue("location", ""),
		Currency:     ctx.FormValue("currency", "USD"),
		Games:        splitList(ctx.FormValue("games", "")),
		Positions:    splitList(ctx.FormValue("positions", "")),
	}
	kind, kerr := domain.ParseJobKind(ctx.FormValue("kind", string(domain.KindFullTime)))
	err = errors.Join(err, kerr)
	draft.Kind = kind
	experience, eerr := domain.ParseExperience(ctx.FormValue("experience", string(domain.ExperienceBeginner)))
	err = errors.Join(err, eerr)
	draft.Experience = experience
	draft.SalaryMin = parseAmount(ctx.FormValue("salary-min", "0"))
	draft.SalaryMax = parseAmount(ctx.FormValue("salary-max", "0"))
	if raw := ctx.FormValue("deadline", ""); raw != "" {
		deadline, derr := time.Parse("2006-01-02", raw)
		if derr != nil {
			err = errors.Join(err, errBadDeadline)
		}
		draft.Deadline = deadline
	}
	if err != nil {
		return jobservice.Draft{}, err
	}
	return draft, nil
}
