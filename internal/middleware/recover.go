package middleware

import (
	"fmt"
	"net/http"
)

// RecoverMiddleware turns a panicking handler into a 500 response.
func RecoverMiddleware(errs *ErrorWriter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				err, ok := rec.(error)
				if !ok {
					err = fmt.Errorf("%v", rec)
				}
				errs.InternalError(w, r, err)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
