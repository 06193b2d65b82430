package mwauth

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"hotelBooker/internal/lib/api/response"
	"hotelBooker/internal/lib/logger/sl"

	"github.com/go-chi/render"
	"github.com/golang-jwt/jwt/v4"
)

type contextKey string

const userIDKey contextKey = "userID"

// New returns a middleware that resolves the caller's identity from a
// bearer token. The user_id claim ends up in the request context; every
// handler behind this middleware can rely on it being present.
func New(log *slog.Logger, secret string) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		log = log.With(
			slog.String("component", "middleware/auth"),
		)

		fn := func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				log.Info("missing authorization token")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing authorization token"))
				return
			}

			tokenStr := strings.TrimPrefix(header, "Bearer ")

			token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
				}
				return []byte(secret), nil
			})
			if err != nil || !token.Valid {
				if err != nil {
					log.Info("failed to parse token", sl.Err(err))
				}
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token claims"))
				return
			}

			userID, ok := claims["user_id"].(float64)
			if !ok {
				log.Info("token has no user_id claim")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid token claims"))
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, int(userID))

			next.ServeHTTP(w, r.WithContext(ctx))
		}

		return http.HandlerFunc(fn)
	}
}

// UserID extracts the authenticated user id placed by New.
func UserID(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}

// ContextWithUserID injects a user id directly, bypassing token
// verification. Intended for handler tests.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}
