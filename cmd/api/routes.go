package main

import (
	"net/http"

	"castingagency/internal/data"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (app *application) routes() http.Handler {
	router := httprouter.New()

	// without these the router would answer with plain text bodies
	router.NotFound = http.HandlerFunc(app.notFoundResponse)
	router.MethodNotAllowed = http.HandlerFunc(app.methodNotAllowedResponse)

	router.HandlerFunc(http.MethodGet, "/", app.statusHandler)
	router.HandlerFunc(http.MethodGet, "/healthcheck", app.healthCheckHandler)
	router.Handler(http.MethodGet, "/metrics", promhttp.Handler())

	router.HandlerFunc(http.MethodGet, "/actors", app.requirePermission(data.PermissionActorsRead, app.listActorsHandler))
	router.HandlerFunc(http.MethodPost, "/actors", app.requirePermission(data.PermissionActorsCreate, app.createActorHandler))
	router.HandlerFunc(http.MethodGet, "/actors/:id", app.requirePermission(data.PermissionActorsRead, app.showActorHandler))
	router.HandlerFunc(http.MethodPatch, "/actors/:id", app.requirePermission(data.PermissionActorsUpdate, app.updateActorHandler))
	router.HandlerFunc(http.MethodDelete, "/actors/:id", app.requirePermission(data.PermissionActorsDelete, app.deleteActorHandler))

	router.HandlerFunc(http.MethodGet, "/movies", app.requirePermission(data.PermissionMoviesRead, app.listMoviesHandler))
	router.HandlerFunc(http.MethodPost, "/movies", app.requirePermission(data.PermissionMoviesCreate, app.createMovieHandler))
	router.HandlerFunc(http.MethodGet, "/movies/:id", app.requirePermission(data.PermissionMoviesRead, app.showMovieHandler))
	router.HandlerFunc(http.MethodPatch, "/movies/:id", app.requirePermission(data.PermissionMoviesUpdate, app.updateMovieHandler))
	router.HandlerFunc(http.MethodDelete, "/movies/:id", app.requirePermission(data.PermissionMoviesDelete, app.deleteMovieHandler))

	// flow:- metrics -> requestID -> recoverPanic -> enableCORS -> rateLimit -> authenticate
	return app.metrics(app.requestID(app.recoverPanic(app.enableCORS(app.rateLimit(app.authenticate(router))))))
}
