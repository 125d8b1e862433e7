package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func okHandler(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func TestNestedGroupsComposePrefixAndMiddleware(t *testing.T) {
	r := New()

	var order []string
	tag := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, req)
			})
		}
	}

	api := r.Group("/api", tag("outer"))
	admin := api.Group("/admin", tag("inner"))
	admin.Get("/orders", "admin.orders", okHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"outer", "inner"}, order)
}

func TestURLSubstitutesParams(t *testing.T) {
	r := New()
	r.Get("/api/admin/orders/{orderId}", "admin.orders.show", okHandler)

	url, err := r.URL("admin.orders.show", map[string]string{"orderId": "ORD000000123"})
	require.NoError(t, err)
	assert.Equal(t, "/api/admin/orders/ORD000000123", url)

	_, err = r.URL("admin.orders.show", nil)
	assert.Error(t, err, "missing params must not build a half-filled URL")

	_, err = r.URL("no.such.route", nil)
	assert.Error(t, err)
}

func TestRoutesListsNamedRoutesOnly(t *testing.T) {
	r := New()
	r.Get("/metrics", "metrics", okHandler)
	r.Get("/storage/*", "", okHandler)
	r.Post("/api/login", "auth.login", okHandler)

	routes := r.Routes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/api/login", routes[0].Path)
	assert.Equal(t, "/metrics", routes[1].Path)
}
