// Package orm wraps GORM behind a small chainable query builder.
//
// Repositories compose conditions fluently and never touch *gorm.DB
// directly, which keeps the driver surface in one place:
//
//	var customers []models.Customer
//	err := orm.DB().Model(&models.Customer{}).
//		Where("lower(email) LIKE ?", "%painted%").
//		Order("id").
//		Get(&customers)
package orm

import (
	"errors"
	"time"

	"github.com/shashiranjanraj/vanik/pkg/cache"
	"github.com/shashiranjanraj/vanik/pkg/database"
	"github.com/shashiranjanraj/vanik/pkg/metrics"
	"gorm.io/gorm"
)

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

// Gorm exposes the underlying handle for the rare call the wrapper does
// not cover (migrations, schema introspection).
func (q *Query) Gorm() *gorm.DB {
	return q.db
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Select(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Select(query, args...)}
}

func (q *Query) Joins(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Joins(query, args...)}
}

func (q *Query) Group(name string) *Query {
	return &Query{db: q.db.Group(name)}
}

func (q *Query) Order(value interface{}) *Query {
	return &Query{db: q.db.Order(value)}
}

func (q *Query) Limit(limit int) *Query {
	return &Query{db: q.db.Limit(limit)}
}

func (q *Query) Offset(offset int) *Query {
	return &Query{db: q.db.Offset(offset)}
}

func (q *Query) Preload(name string, args ...interface{}) *Query {
	return &Query{db: q.db.Preload(name, args...)}
}

func (q *Query) Get(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.First(dest).Error
}

// Scan runs the built query and maps the result columns onto dest. Used
// for aggregate selects that do not land on a model type.
func (q *Query) Scan(dest interface{}) error {
	defer metrics.ObserveDBQuery("select", time.Now())
	return q.db.Scan(dest).Error
}

// Count counts matching rows on an independent fork of the chain, so the
// same chain can still be executed afterwards.
func (q *Query) Count() (int64, error) {
	defer metrics.ObserveDBQuery("select", time.Now())
	var total int64
	err := q.session().Count(&total).Error
	return total, err
}

func (q *Query) Create(value interface{}) error {
	defer metrics.ObserveDBQuery("insert", time.Now())
	return q.db.Create(value).Error
}

func (q *Query) Save(value interface{}) error {
	defer metrics.ObserveDBQuery("update", time.Now())
	return q.db.Save(value).Error
}

func (q *Query) Delete(value interface{}) error {
	defer metrics.ObserveDBQuery("delete", time.Now())
	return q.db.Delete(value).Error
}

// Transaction runs fn inside a database transaction. Any error rolls the
// whole transaction back.
func Transaction(fn func(tx *Query) error) error {
	return database.DB.Transaction(func(tx *gorm.DB) error {
		return fn(&Query{db: tx})
	})
}

// ErrNotFound means no matching row. Repositories return it from lookups
// that cannot rely on the driver to raise it (Find-based paths).
var ErrNotFound = gorm.ErrRecordNotFound

// IsNotFound reports whether err means no matching row.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// Cache runs the query through the cache layer: on a hit dest is filled
// from the cached JSON, otherwise the query executes and the result is
// stored for ttl.
func (q *Query) Cache(key string, ttl time.Duration, dest interface{}) error {
	if cache.Get(key, dest) {
		return nil
	}

	err := q.db.Find(dest).Error
	if err != nil {
		return err
	}

	_ = cache.Set(key, dest, ttl)
	return nil
}

// session forks the chain with its own statement, so branches (count vs
// fetch) cannot pollute each other.
func (q *Query) session() *gorm.DB {
	return q.db.Session(&gorm.Session{})
}
