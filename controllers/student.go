package controllers

import (
	"net/http"

	"mergington-activities/store"
	"mergington-activities/utils"
)

type StudentController struct{}

func (sc StudentController) GetStudents(s *store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, s.ListStudents())
	}
}
