// Package orm is a thin fluent wrapper over GORM with Redis read-through
// caching, pagination, and query timing metrics. Repositories chain off
// orm.DB() (or orm.Use(tx) inside a transaction):
//
//	var products []models.Product
//	err := orm.DB().Model(&models.Product{}).
//	    Where("is_active = ?", true).
//	    Order("name asc").
//	    Get(&products)
package orm

import (
	"time"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/voltkart/pkg/cache"
	"github.com/shashiranjanraj/voltkart/pkg/database"
	"github.com/shashiranjanraj/voltkart/pkg/metrics"
)

type Query struct {
	db *gorm.DB
}

// DB starts a query chain on the global connection.
func DB() *Query {
	return &Query{db: database.DB}
}

// Use starts a query chain on an explicit *gorm.DB, typically a transaction
// handle inside database.DB.Transaction(...).
func Use(db *gorm.DB) *Query {
	return &Query{db: db}
}

// Gorm exposes the underlying handle for the rare query the wrapper cannot
// express (raw SQL aggregates in reporting).
func (q *Query) Gorm() *gorm.DB { return q.db }

// ─── Chainable builders ──────────────────────────────────────────────────────

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(order string) *Query {
	return &Query{db: q.db.Order(order)}
}

func (q *Query) Limit(n int) *Query {
	return &Query{db: q.db.Limit(n)}
}

func (q *Query) Offset(n int) *Query {
	return &Query{db: q.db.Offset(n)}
}

func (q *Query) Preload(assoc string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(assoc, args...)}
}

// ─── Finishers ───────────────────────────────────────────────────────────────

// Get loads all matching rows into dest.
func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

// First loads the first matching row, gorm.ErrRecordNotFound when none.
func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Count returns the number of matching rows.
func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var n int64
	err := q.db.Count(&n).Error
	return n, err
}

// Create inserts v.
func (q *Query) Create(v interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(v).Error
}

// Save upserts v by primary key.
func (q *Query) Save(v interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(v).Error
}

// Updates applies a partial update to the current Model/Where chain and
// reports how many rows changed. Callers that need all-or-nothing semantics
// check the count (zero rows on a guarded update means the guard failed).
func (q *Query) Updates(values interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())
	res := q.db.Updates(values)
	return res.RowsAffected, res.Error
}

// Delete removes matching rows and reports how many went.
func (q *Query) Delete(v interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("delete", time.Now())
	res := q.db.Delete(v)
	return res.RowsAffected, res.Error
}

// Exec runs a raw statement (DDL, conditional updates with expressions).
func (q *Query) Exec(sql string, args ...interface{}) (int64, error) {
	defer metrics.ObserveDBQuery("update", time.Now())
	res := q.db.Exec(sql, args...)
	return res.RowsAffected, res.Error
}

// ─── Caching ─────────────────────────────────────────────────────────────────

// Cache is a read-through helper: returns the cached value under key when
// present, otherwise runs the query and stores the result for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	if err := q.Get(dest); err != nil {
		return err
	}

	cache.Set(key, dest, ttl) //nolint:errcheck
	return nil
}

// ─── Pagination ──────────────────────────────────────────────────────────────

// Pagination describes one page of a listing.
type Pagination struct {
	Page     int   `json:"page"`
	PerPage  int   `json:"per_page"`
	Total    int64 `json:"total"`
	LastPage int   `json:"last_page"`
}

// Paginate loads page (1-based) of perPage rows into dest and returns the
// page metadata. perPage is clamped to [1,100].
func (q *Query) Paginate(page, perPage int, dest interface{}) (Pagination, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 15
	}
	if perPage > 100 {
		perPage = 100
	}

	total, err := q.Count()
	if err != nil {
		return Pagination{}, err
	}

	if err := q.Limit(perPage).Offset((page - 1) * perPage).Get(dest); err != nil {
		return Pagination{}, err
	}

	last := int((total + int64(perPage) - 1) / int64(perPage))
	if last < 1 {
		last = 1
	}

	return Pagination{Page: page, PerPage: perPage, Total: total, LastPage: last}, nil
}
