package main

import (
	"fmt"
	"net/http"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"

	"castingagency/internal/data"
	"castingagency/internal/metrics"

	"github.com/google/uuid"
	"github.com/tomasen/realip"
	"golang.org/x/time/rate"
)

// will only recover panics that happen in the same goroutine that executed the recoverPanic middleware
func (app *application) recoverPanic(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			pv := recover()
			if pv != nil {
				// makes Go's HTTP server close the connection after the response has been sent
				w.Header().Set("Connection", "close")
				app.internalServerErrorResponse(w, r, fmt.Errorf("%v", pv))
			}
		}()

		next.ServeHTTP(w, r)
	})
}

func (app *application) rateLimit(next http.Handler) http.Handler {
	if !app.config.limiter.enabled {
		return next
	}

	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client) // key = client ip
	)

	// remove clients that have not been seen within the last three minutes, once every minute
	go func() {
		for {
			time.Sleep(time.Minute)

			mu.Lock()
			for ip, client := range clients {
				if time.Since(client.lastSeen) > 3*time.Minute {
					delete(clients, ip)
				}
			}
			mu.Unlock()
		}
	}()

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := realip.FromRequest(r)

		mu.Lock()
		if _, found := clients[ip]; !found {
			clients[ip] = &client{
				limiter: rate.NewLimiter(rate.Limit(app.config.limiter.rps), app.config.limiter.burst),
			}
		}

		clients[ip].lastSeen = time.Now()

		if !clients[ip].limiter.Allow() {
			mu.Unlock()
			app.rateLimitExceededResponse(w, r)
			return
		}

		// don't defer the unlock, downstream handlers would hold the mutex
		mu.Unlock()

		next.ServeHTTP(w, r)
	})
}

// enableCORS allows any origin unless trusted origins are configured,
// in which case only a matching Origin is echoed back.
func (app *application) enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Origin")
		w.Header().Add("Vary", "Access-Control-Request-Method")

		origin := r.Header.Get("Origin")
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		allowed := "*"
		if len(app.config.cors.trustedOrigins) > 0 {
			if !slices.Contains(app.config.cors.trustedOrigins, origin) {
				next.ServeHTTP(w, r)
				return
			}
			allowed = origin
		}

		w.Header().Set("Access-Control-Allow-Origin", allowed)

		// preflight request
		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			w.Header().Set("Access-Control-Allow-Methods", "OPTIONS, GET, POST, PATCH, DELETE")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type")
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// requestID reuses a client supplied X-Request-ID or generates one
func (app *application) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, app.contextSetRequestID(r, id))
	})
}

// authenticate attaches the permissions of a valid bearer token to the request.
// Requests without an Authorization header continue as anonymous.
func (app *application) authenticate(next http.Handler) http.Handler {
	if app.config.jwt.secret == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Add("Vary", "Authorization")

		authorizationHeader := r.Header.Get("Authorization")
		if authorizationHeader == "" {
			next.ServeHTTP(w, r)
			return
		}

		headerParts := strings.Split(authorizationHeader, " ")
		if len(headerParts) != 2 || !strings.EqualFold(headerParts[0], "Bearer") {
			app.invalidAuthenticationTokenResponse(w, r)
			return
		}

		permissions, err := app.permissionsFromToken(headerParts[1])
		if err != nil {
			app.logger.Debug("rejected bearer token", "error", err.Error())
			app.invalidAuthenticationTokenResponse(w, r)
			return
		}

		next.ServeHTTP(w, app.contextSetPermissions(r, permissions))
	})
}

// requirePermission is a no-op when no jwt secret is configured
func (app *application) requirePermission(code data.Permission, next http.HandlerFunc) http.HandlerFunc {
	if app.config.jwt.secret == "" {
		return next
	}

	return func(w http.ResponseWriter, r *http.Request) {
		permissions, ok := app.contextGetPermissions(r)
		if !ok {
			app.authenticationRequiredResponse(w, r)
			return
		}

		if !permissions.Includes(code) {
			app.notPermittedResponse(w, r)
			return
		}

		next.ServeHTTP(w, r)
	}
}

// metricsResponseWriter records the status code written by downstream handlers
type metricsResponseWriter struct {
	wrapped       http.ResponseWriter
	statusCode    int
	headerWritten bool
}

func newMetricsResponseWriter(w http.ResponseWriter) *metricsResponseWriter {
	return &metricsResponseWriter{
		wrapped:    w,
		statusCode: http.StatusOK,
	}
}

func (mw *metricsResponseWriter) Header() http.Header {
	return mw.wrapped.Header()
}

func (mw *metricsResponseWriter) WriteHeader(statusCode int) {
	mw.wrapped.WriteHeader(statusCode)

	if !mw.headerWritten {
		mw.statusCode = statusCode
		mw.headerWritten = true
	}
}

func (mw *metricsResponseWriter) Write(b []byte) (int, error) {
	mw.headerWritten = true
	return mw.wrapped.Write(b)
}

func (mw *metricsResponseWriter) Unwrap() http.ResponseWriter {
	return mw.wrapped
}

func (app *application) metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		metrics.RequestsInFlight.Inc()
		defer metrics.RequestsInFlight.Dec()

		mw := newMetricsResponseWriter(w)
		next.ServeHTTP(mw, r)

		metrics.RequestsTotal.WithLabelValues(r.Method, strconv.Itoa(mw.statusCode)).Inc()
		metrics.RequestDuration.WithLabelValues(r.Method).Observe(time.Since(start).Seconds())
	})
}
