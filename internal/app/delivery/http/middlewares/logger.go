package middlewares

import (
	"net/http"
	"time"
)

func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		duration := time.Since(start)

		m.RequestLog.Printf(`{%s} | {%s} | {%s} ==> {%s} | {%s}`, time.Now().Format(time.RFC850), r.RemoteAddr, r.Method, r.RequestURI, duration)
	})
}
