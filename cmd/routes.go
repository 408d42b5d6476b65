package main

import (
	"net/http"

	"github.com/bmizerany/pat"
	"github.com/justinas/alice"
)

func (app *application) JWTMiddlewareWithRole(requiredRole string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return app.JWTMiddleware(next, requiredRole)
	}
}

func (app *application) routes() http.Handler {
	standardMiddleware := alice.New(app.recoverPanic, app.logRequest, secureHeaders, makeResponseJSON)
	authMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("user"))
	proAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("pro"))
	clientAuthMiddleware := standardMiddleware.Append(app.JWTMiddlewareWithRole("client"))
	clientWriteMiddleware := clientAuthMiddleware.Append(app.rateLimit)
	proWriteMiddleware := proAuthMiddleware.Append(app.rateLimit)

	mux := pat.New()

	// Matches / explore
	mux.Get("/api/pro/matches", proAuthMiddleware.ThenFunc(app.matchHandler.GetProMatches))
	mux.Get("/api/requests/explore", proAuthMiddleware.ThenFunc(app.matchHandler.ExploreRequests))

	// Requests
	mux.Post("/api/requests", clientWriteMiddleware.ThenFunc(app.requestHandler.CreateRequest))
	mux.Get("/api/requests/:id", authMiddleware.ThenFunc(app.requestHandler.GetRequestByID))
	mux.Post("/api/requests/:id/status", clientAuthMiddleware.ThenFunc(app.requestHandler.ChangeStatus))

	// Favorites
	mux.Post("/api/favorites", proAuthMiddleware.ThenFunc(app.favoriteHandler.AddToFavorites))
	mux.Del("/api/favorites/request/:request_id", proAuthMiddleware.ThenFunc(app.favoriteHandler.RemoveFromFavorites))
	mux.Get("/api/favorites/check/:request_id", proAuthMiddleware.ThenFunc(app.favoriteHandler.IsFavorite))
	mux.Get("/api/favorites", proAuthMiddleware.ThenFunc(app.favoriteHandler.GetFavoritesByUser))

	// Applications
	mux.Post("/api/applications", proWriteMiddleware.ThenFunc(app.applicationHandler.CreateApplication))
	mux.Get("/api/requests/:request_id/applications", clientAuthMiddleware.ThenFunc(app.applicationHandler.GetApplicationsByRequest))

	// Agreements
	mux.Post("/api/agreements", clientAuthMiddleware.ThenFunc(app.agreementHandler.CreateAgreement))
	mux.Get("/api/agreements/:id", authMiddleware.ThenFunc(app.agreementHandler.GetAgreementByID))
	mux.Post("/api/agreements/:id/confirm", authMiddleware.ThenFunc(app.agreementHandler.Confirm))

	return mux
}
