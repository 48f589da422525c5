package handler

import (
	"net/http"
)

// APIBasePath is where the resource routes are mounted.
const APIBasePath = "/api"

// Welcome greets clients on the root route.
func Welcome(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusOK, "Welcome to the REST API project!")
}

// RouteNotFound answers any request no other route matched.
func RouteNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, http.StatusNotFound, "Route Not Found")
}
