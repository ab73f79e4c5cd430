package controllers

import (
	"net/http"

	"mergington-activities/models"
	"mergington-activities/utils"
)

type Controller struct{}

func (c Controller) Root() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, models.Welcome{
			Message: "Welcome to Mergington High School Activities API",
			Docs:    "/docs",
			Redoc:   "/redoc",
		})
	}
}
