package controllers

import (
	"net/http"

	"github.com/autoshift-labs/autoshift-backend/api/responses"
	"github.com/autoshift-labs/autoshift-backend/api/validators"
	"github.com/autoshift-labs/autoshift-backend/internal/auth"
	"github.com/autoshift-labs/autoshift-backend/pkg/enums"
	"github.com/autoshift-labs/autoshift-backend/pkg/logger"
)

type signUpRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=12"`
	FirstName   string  `json:"first_name" validate:"required"`
	LastName    string  `json:"last_name" validate:"required"`
	PhoneNumber *string `json:"phone_number,omitempty"`
	Role        string  `json:"role,omitempty" validate:"omitempty,oneof=worker admin"`
}

type signInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func SignUp(svc auth.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signUpRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		session, err := svc.SignUp(r.Context(), auth.SignUpInput{
			Email:       req.Email,
			Password:    req.Password,
			FirstName:   req.FirstName,
			LastName:    req.LastName,
			PhoneNumber: req.PhoneNumber,
			Role:        enums.UserRole(req.Role),
		})
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		responses.JSON(w, http.StatusCreated, sessionView(session))
	}
}

func SignIn(svc auth.Service, log *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req signInRequest
		if err := validators.DecodeJSONBody(r, &req); err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		session, err := svc.SignIn(r.Context(), auth.SignInInput{
			Email:    req.Email,
			Password: req.Password,
		})
		if err != nil {
			responses.Error(r.Context(), w, log, err)
			return
		}

		responses.JSON(w, http.StatusOK, sessionView(session))
	}
}
