package main

import (
	"net/http"
)

// statusHandler answers the bare liveness check on "/"
func (app *application) statusHandler(w http.ResponseWriter, r *http.Request) {
	err := app.writeJSON(w, http.StatusOK, envelope{"app status": "healthy"}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.env,
			"version":     version,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}
