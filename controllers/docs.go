package controllers

import (
	"fmt"
	"net/http"

	"mergington-activities/utils"
)

const (
	apiTitle       = "Mergington High School Activities API"
	apiDescription = "API for viewing and signing up for extracurricular activities"
	apiVersion     = "0.1.0"
	openAPIPath    = "/openapi.json"
)

type DocsController struct{}

func (dc DocsController) OpenAPI() http.HandlerFunc {
	doc := openAPIDocument()
	return func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseJSON(w, doc)
	}
}

func (dc DocsController) SwaggerUI() http.HandlerFunc {
	page := fmt.Sprintf(swaggerUIPage, apiTitle, openAPIPath)
	return htmlPage(page)
}

func (dc DocsController) Redoc() http.HandlerFunc {
	page := fmt.Sprintf(redocPage, apiTitle, openAPIPath)
	return htmlPage(page)
}

func htmlPage(page string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(page))
	}
}

type object = map[string]any

func jsonContent(schema object) object {
	return object{"application/json": object{"schema": schema}}
}

func errorResponse(description string) object {
	return object{
		"description": description,
		"content":     jsonContent(object{"$ref": "#/components/schemas/Error"}),
	}
}

func openAPIDocument() object {
	return object{
		"openapi": "3.1.0",
		"info": object{
			"title":       apiTitle,
			"description": apiDescription,
			"version":     apiVersion,
		},
		"paths": object{
			"/": object{"get": object{
				"summary":   "Welcome message with API information",
				"responses": object{"200": object{"description": "Successful Response", "content": jsonContent(object{"$ref": "#/components/schemas/Welcome"})}},
			}},
			"/activities": object{"get": object{
				"summary": "Get all activities with their details and current participant count",
				"responses": object{"200": object{
					"description": "Successful Response",
					"content": jsonContent(object{
						"type":                 "object",
						"additionalProperties": object{"$ref": "#/components/schemas/Activity"},
					}),
				}},
			}},
			"/students": object{"get": object{
				"summary": "Get all registered students",
				"responses": object{"200": object{
					"description": "Successful Response",
					"content": jsonContent(object{
						"type":                 "object",
						"additionalProperties": object{"$ref": "#/components/schemas/Student"},
					}),
				}},
			}},
			"/activities/{activity_name}/signup": object{"post": object{
				"summary": "Sign up a student for an activity",
				"parameters": []object{
					{"name": "activity_name", "in": "path", "required": true, "schema": object{"type": "string"}},
					{"name": "email", "in": "query", "required": true, "schema": object{"type": "string"}},
				},
				"responses": object{
					"200": object{"description": "Successful Response", "content": jsonContent(object{"$ref": "#/components/schemas/SignupResult"})},
					"400": errorResponse("Already signed up, or the activity is full"),
					"404": errorResponse("Activity not found"),
					"422": errorResponse("Missing email parameter"),
				},
			}},
		},
		"components": object{"schemas": object{
			"Welcome": object{"type": "object", "properties": object{
				"message": object{"type": "string"},
				"docs":    object{"type": "string"},
				"redoc":   object{"type": "string"},
			}},
			"Activity": object{"type": "object", "properties": object{
				"description":               object{"type": "string"},
				"schedule":                  object{"type": "string"},
				"max_participants":          object{"type": "integer"},
				"participants":              object{"type": "array", "items": object{"type": "string"}},
				"current_participant_count": object{"type": "integer"},
			}},
			"Student": object{"type": "object", "properties": object{
				"name":  object{"type": "string"},
				"grade": object{"type": "integer"},
			}},
			"SignupResult": object{"type": "object", "properties": object{
				"message":              object{"type": "string"},
				"activity":             object{"type": "string"},
				"student_email":        object{"type": "string"},
				"current_participants": object{"type": "integer"},
			}},
			"Error": object{"type": "object", "properties": object{
				"detail": object{"type": "string"},
			}},
		}},
	}
}

const swaggerUIPage = `<!DOCTYPE html>
<html>
<head>
<title>%s - Swagger UI</title>
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>SwaggerUIBundle({url: "%s", dom_id: "#swagger-ui"})</script>
</body>
</html>
`

const redocPage = `<!DOCTYPE html>
<html>
<head>
<title>%s - ReDoc</title>
</head>
<body>
<redoc spec-url="%s"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>
`
