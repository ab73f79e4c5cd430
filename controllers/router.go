package controllers

import (
	"net/http"

	"mergington-activities/models"
	"mergington-activities/services"
	"mergington-activities/store"
	"mergington-activities/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// NewRouter registers every endpoint of the API.
func NewRouter(s *store.Store, svc *services.SignupService, log logrus.FieldLogger) *mux.Router {
	controller := Controller{}
	activityController := ActivityController{}
	studentController := StudentController{}
	docsController := DocsController{}

	middleware := []mux.MiddlewareFunc{utils.RequestID, utils.AccessLog(log), utils.Recover(log)}

	router := mux.NewRouter()
	router.Use(middleware...)
	// mux skips Use middleware when no route matches
	router.NotFoundHandler = chain(errorHandler(http.StatusNotFound, "Not Found"), middleware)
	router.MethodNotAllowedHandler = chain(errorHandler(http.StatusMethodNotAllowed, "Method Not Allowed"), middleware)

	router.HandleFunc("/", controller.Root()).Methods("GET")

	router.HandleFunc("/activities", activityController.GetActivities(s)).Methods("GET")
	router.HandleFunc("/activities/{activityName}/signup", activityController.SignupForActivity(svc, log)).Methods("POST")

	router.HandleFunc("/students", studentController.GetStudents(s)).Methods("GET")

	router.HandleFunc("/openapi.json", docsController.OpenAPI()).Methods("GET")
	router.HandleFunc("/docs", docsController.SwaggerUI()).Methods("GET")
	router.HandleFunc("/redoc", docsController.Redoc()).Methods("GET")

	return router
}

func chain(h http.Handler, middleware []mux.MiddlewareFunc) http.Handler {
	for i := len(middleware) - 1; i >= 0; i-- {
		h = middleware[i](h)
	}
	return h
}

func errorHandler(status int, detail string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		utils.RespondWithError(w, status, models.Error{Detail: detail})
	})
}
