package main

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"chambaBack/internal/models"
)

func secureHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-XSS-Protection", "1; mode=block")
		w.Header().Set("X-Frame-Options", "deny")
		next.ServeHTTP(w, r)
	})
}

func makeResponseJSON(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

func (app *application) logRequest(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.infoLog.Printf("%s - %s %s %s", r.RemoteAddr, r.Proto, r.Method, r.URL.RequestURI())
		next.ServeHTTP(w, r)
	})
}

func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				w.Header().Set("Connection", "close")
				app.serverError(w, fmt.Errorf("%s", err))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (app *application) JWTMiddleware(next http.Handler, requiredRole string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// 1) Получаем access token
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			http.Error(w, "Authorization header missing or invalid", http.StatusUnauthorized)
			return
		}
		accessToken := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := app.tokens.Parse(accessToken)
		if err != nil {
			// 2) Access невалиден — проверяем Refresh-Token
			refreshToken := r.Header.Get("Refresh-Token")
			if refreshToken == "" {
				http.Error(w, "Refresh token missing", http.StatusUnauthorized)
				return
			}

			// 3) Ищем сессию по refresh токену
			session, err := app.userRepo.GetSessionByToken(r.Context(), refreshToken)
			if err != nil || session == (models.Session{}) {
				http.Error(w, "Invalid refresh token", http.StatusUnauthorized)
				return
			}
			if session.ExpiresAt.Before(time.Now()) {
				http.Error(w, "Expired refresh token", http.StatusUnauthorized)
				return
			}

			// 4) Генерируем новый access token
			newAccessToken, err := app.tokens.NewJWT(session.UserID, session.Role, accessTokenTTL)
			if err != nil {
				http.Error(w, "Error generating new access token", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Authorization", "Bearer "+newAccessToken)

			// 5) Ротация refresh токена. При сбое старый токен
			// продолжает работать.
			if newRefresh, err := app.tokens.NewRefreshToken(); err == nil {
				if err := app.userRepo.RotateSessionToken(r.Context(), refreshToken, newRefresh); err != nil {
					app.errorLog.Printf("refresh token rotation failed for user %d: %v", session.UserID, err)
				} else {
					w.Header().Set("Refresh-Token", newRefresh)
				}
			}

			claims = &models.Claims{UserID: uint(session.UserID), Role: session.Role}
		}

		// 6) Проверка ролей
		switch requiredRole {
		case "admin":
			if claims.Role != "admin" {
				http.Error(w, "Forbidden: only admins allowed", http.StatusForbidden)
				return
			}
		case "client":
			if claims.Role != "client" && claims.Role != "admin" {
				http.Error(w, "Forbidden: only clients or admins allowed", http.StatusForbidden)
				return
			}
		case "pro":
			if claims.Role != "pro" && claims.Role != "admin" {
				http.Error(w, "Forbidden: only professionals or admins allowed", http.StatusForbidden)
				return
			}
		}

		// 7) Прокидываем user_id и role в контекст
		ctx := context.WithValue(r.Context(), "user_id", int(claims.UserID))
		ctx = context.WithValue(ctx, "role", claims.Role)

		// 8) Отмечаем активность, ошибки не блокируют запрос
		if err := app.userRepo.TouchLastActive(ctx, int(claims.UserID)); err != nil {
			app.errorLog.Printf("touch last_active for user %d: %v", claims.UserID, err)
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// rateLimit throttles write endpoints per user. Fails open when the
// counter backend is unavailable.
func (app *application) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key := r.RemoteAddr
		if userID, ok := r.Context().Value("user_id").(int); ok {
			key = "user:" + strconv.Itoa(userID)
		}
		if !app.limiter.Allow(r.Context(), key) {
			http.Error(w, "Too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
