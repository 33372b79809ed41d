package mockserver

import (
	"crypto/subtle"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// BasicAuth пропускает запросы, в которых секрет API передан именем пользователя Basic-авторизации с пустым паролем.
func BasicAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, pass, ok := r.BasicAuth()
			if !ok || pass != "" || subtle.ConstantTimeCompare([]byte(user), []byte(secret)) != 1 {
				w.Header().Set("WWW-Authenticate", `Basic realm="Rewardful API"`)
				writeError(w, http.StatusUnauthorized, "Invalid API Secret.")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// Logger пишет в лог метод, путь, статус и длительность каждого запроса.
func Logger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
