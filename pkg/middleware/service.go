package middleware

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/voltkart/pkg/crypt"
	"github.com/shashiranjanraj/voltkart/pkg/response"
)

// ServiceHeader carries the storefront service token.
const ServiceHeader = "X-Service-Token"

// ServiceClaims is the sealed payload inside a service token.
type ServiceClaims struct {
	Scope     string `json:"scope"`
	ExpiresAt int64  `json:"exp"`
}

// ServiceTokenTTL is how long an issued storefront token stays valid.
const ServiceTokenTTL = 12 * time.Hour

// IssueServiceToken seals a scoped credential for a storefront front-end.
func IssueServiceToken(scope string) (string, error) {
	return crypt.EncryptJSON(ServiceClaims{
		Scope:     scope,
		ExpiresAt: time.Now().Add(ServiceTokenTTL).Unix(),
	})
}

// ServiceToken gates client read endpoints behind a sealed, scoped token.
// The token is opaque to the front-end; it only proves the request came
// through an approved storefront deployment, not who the user is.
func ServiceToken(scope string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(ServiceHeader)
			if token == "" {
				response.Unauthorized(w)
				return
			}

			var claims ServiceClaims
			if err := crypt.DecryptJSON(token, &claims); err != nil {
				response.Error(w, http.StatusUnauthorized, "Invalid service token")
				return
			}
			if claims.Scope != scope || time.Now().Unix() > claims.ExpiresAt {
				response.Error(w, http.StatusUnauthorized, "Service token expired")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
