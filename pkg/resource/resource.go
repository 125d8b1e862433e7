// Package resource provides API resource transformers, mirroring Laravel's
// JsonResource. A Transformer converts a model into the map shape the API
// exposes, so internal columns never leak into responses.
//
//	type ProductResource struct{ Product models.Product }
//
//	func (r ProductResource) ToArray(_ interface{}) resource.Map {
//	    return resource.Map{
//	        "id":    r.Product.ID,
//	        "name":  r.Product.Name,
//	        "price": r.Product.Price,
//	    }
//	}
package resource

import (
	"encoding/json"
	"net/http"

	"github.com/shashiranjanraj/voltkart/pkg/orm"
)

// Map is the output shape of a transformer.
type Map map[string]interface{}

// Transformer converts a model value into its API representation.
type Transformer interface {
	ToArray(v interface{}) Map
}

// ------------------- Single resource -------------------

// Resource wraps one model with its transformer.
type Resource struct {
	transformer Transformer
	meta        Map
}

// New wraps a transformer into a Resource.
func New(t Transformer) *Resource {
	return &Resource{transformer: t}
}

// WithMeta attaches extra top-level metadata to the response.
func (r *Resource) WithMeta(meta Map) *Resource {
	r.meta = meta
	return r
}

// MarshalJSON renders {"data": {...}, "meta": {...}}.
func (r *Resource) MarshalJSON() ([]byte, error) {
	body := Map{"data": r.transformer.ToArray(nil)}
	if r.meta != nil {
		body["meta"] = r.meta
	}
	return json.Marshal(body)
}

// Respond writes the resource as JSON with the given status code.
func (r *Resource) Respond(w http.ResponseWriter, status int) {
	writeJSON(w, status, r)
}

// ------------------- Collection of resources -------------------

// Collection wraps many transformers, optionally with pagination.
type Collection struct {
	transformers []Transformer
	pagination   *orm.Pagination
	meta         Map
}

// CollectionOf builds a Collection from a slice of models and a factory that
// produces a Transformer per element.
//
//	resource.CollectionOf(products, func(p models.Product) resource.Transformer {
//	    return ProductResource{Product: p}
//	})
func CollectionOf[T any](items []T, factory func(T) Transformer) *Collection {
	c := &Collection{transformers: make([]Transformer, len(items))}
	for i, item := range items {
		c.transformers[i] = factory(item)
	}
	return c
}

// WithPagination attaches page metadata produced by orm.Paginate.
func (c *Collection) WithPagination(p orm.Pagination) *Collection {
	c.pagination = &p
	return c
}

// WithMeta attaches extra top-level metadata.
func (c *Collection) WithMeta(meta Map) *Collection {
	c.meta = meta
	return c
}

// MarshalJSON renders {"data": [...], "pagination": {...}, "meta": {...}}.
func (c *Collection) MarshalJSON() ([]byte, error) {
	data := make([]Map, len(c.transformers))
	for i, t := range c.transformers {
		data[i] = t.ToArray(nil)
	}
	body := Map{"data": data}
	if c.pagination != nil {
		body["pagination"] = c.pagination
	}
	if c.meta != nil {
		body["meta"] = c.meta
	}
	return json.Marshal(body)
}

// Respond writes the collection as JSON with the given status code.
func (c *Collection) Respond(w http.ResponseWriter, status int) {
	writeJSON(w, status, c)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
