package main

import (
	"net/http"
	"runtime/debug"
	"time"
)

// accessTokenTTL bounds how long a refreshed access token stays valid.
const accessTokenTTL = 15 * time.Minute

func (app *application) serverError(w http.ResponseWriter, err error) {
	app.errorLog.Printf("%s\n%s", err.Error(), debug.Stack())
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
