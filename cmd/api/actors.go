package main

import (
	"fmt"
	"net/http"

	"castingagency/internal/data"
	"castingagency/internal/validator"
)

func (app *application) listActorsHandler(w http.ResponseWriter, r *http.Request) {
	actors, err := app.models.Actors.GetAll(r.Context())
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	// an empty collection is reported as not found
	if len(actors) == 0 {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "actors": formatAll(actors)}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) showActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	actor, err := app.models.Actors.Get(r.Context(), id)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "actor": actor.Format()}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) createActorHandler(w http.ResponseWriter, r *http.Request) {
	var input data.ActorInput

	if !app.readInput(w, r, &input, func(v *validator.Validator) { data.ValidateActor(v, input) }) {
		return
	}

	actor := &data.Actor{}

	err := input.Apply(actor)
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	err = app.models.Actors.Insert(r.Context(), actor)
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/actors/%d", actor.ID))

	err = app.writeJSON(w, http.StatusCreated, envelope{"success": true, "actor": actor.Format()}, headers)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

// updateActorHandler replaces every field; partial bodies are rejected.
// The actor must exist before the body is even looked at.
func (app *application) updateActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	actor, err := app.models.Actors.Get(r.Context(), id)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	var input data.ActorInput

	if !app.readInput(w, r, &input, func(v *validator.Validator) { data.ValidateActor(v, input) }) {
		return
	}

	err = input.Apply(actor)
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	err = app.models.Actors.Update(r.Context(), actor)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "actor": actor.Format()}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) deleteActorHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Actors.Delete(r.Context(), id)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "delete": id}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}
