package middleware

import (
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"
)

func LogRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !log.IsLevelEnabled(log.TraceLevel) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			log.Tracef(" ====> request [%s] path: [%s] [origin: %s]", r.Method, r.URL.Path, r.Header.Get("Origin"))
			next.ServeHTTP(w, r)
			log.Tracef(" <==== request [%s] path: [%s] took %s", r.Method, r.URL.Path, time.Since(start))
		})
	}
}
