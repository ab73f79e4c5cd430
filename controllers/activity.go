package controllers

import (
	"errors"
	"net/http"

	"mergington-activities/models"
	"mergington-activities/services"
	"mergington-activities/store"
	"mergington-activities/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type ActivityController struct{}

func (ac ActivityController) GetActivities(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, s.ListActivities())
	}
}

func (ac ActivityController) SignupForActivity(svc *services.SignupService, log logrus.FieldLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		activityName := mux.Vars(r)["activityName"]

		query := r.URL.Query()
		if !query.Has("email") {
			utils.RespondWithError(w, http.StatusUnprocessableEntity, models.Error{Detail: "email is required"})
			return
		}

		result, err := svc.Signup(activityName, query.Get("email"))
		if err != nil {
			status, detail := signupErrorStatus(err)
			if status == http.StatusInternalServerError {
				log.WithField("request_id", utils.RequestIDFromContext(r.Context())).
					WithError(err).Error("signup failed")
			}
			utils.RespondWithError(w, status, models.Error{Detail: detail})
			return
		}

		utils.ResponseJSON(w, result)
	}
}

func signupErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrActivityNotFound):
		return http.StatusNotFound, "Activity not found"
	case errors.Is(err, services.ErrAlreadySignedUp):
		return http.StatusBadRequest, "Already signed up for this activity"
	case errors.Is(err, services.ErrActivityFull):
		return http.StatusBadRequest, "Activity is full"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
