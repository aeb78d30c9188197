package main

import (
	"fmt"
	"net/http"

	"castingagency/internal/data"
	"castingagency/internal/validator"
)

func (app *application) listMoviesHandler(w http.ResponseWriter, r *http.Request) {
	movies, err := app.models.Movies.GetAll(r.Context())
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	if len(movies) == 0 {
		app.notFoundResponse(w, r)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "movies": formatAll(movies)}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) showMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.models.Movies.Get(r.Context(), id)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "movie": movie.Format()}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) createMovieHandler(w http.ResponseWriter, r *http.Request) {
	var input data.MovieInput

	if !app.readInput(w, r, &input, func(v *validator.Validator) { data.ValidateMovie(v, input) }) {
		return
	}

	movie := &data.Movie{}

	err := input.Apply(movie)
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	err = app.models.Movies.Insert(r.Context(), movie)
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	headers := make(http.Header)
	headers.Set("Location", fmt.Sprintf("/movies/%d", movie.ID))

	err = app.writeJSON(w, http.StatusCreated, envelope{"success": true, "movie": movie.Format()}, headers)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) updateMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	movie, err := app.models.Movies.Get(r.Context(), id)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	var input data.MovieInput

	if !app.readInput(w, r, &input, func(v *validator.Validator) { data.ValidateMovie(v, input) }) {
		return
	}

	err = input.Apply(movie)
	if err != nil {
		app.unprocessableResponse(w, r, err)
		return
	}

	err = app.models.Movies.Update(r.Context(), movie)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "movie": movie.Format()}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}

func (app *application) deleteMovieHandler(w http.ResponseWriter, r *http.Request) {
	id, err := app.readIdParam(r)
	if err != nil {
		app.notFoundResponse(w, r)
		return
	}

	err = app.models.Movies.Delete(r.Context(), id)
	if err != nil {
		app.storeFailureResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, envelope{"success": true, "delete": id}, nil)
	if err != nil {
		app.internalServerErrorResponse(w, r, err)
	}
}
