package migration

import (
	"sync"

	"github.com/SW1MD/dnd-proj-sub001/pkg/errorx"
	"gorm.io/gorm"
)

// storeLocks holds one mutex per connection pool, so runners sharing a
// store in this process take turns for a whole run.
var storeLocks sync.Map

// withLock runs fn while this process owns the store's migration lock.
// Postgres advisory locks belong to a session, so fn receives the pinned
// connection and must not use any other. A sqlite store is opened by one
// process at a time and relies on the in-process lock alone.
func withLock(db *gorm.DB, key int64, fn func(db *gorm.DB) error) error {
	pool, err := db.DB()
	if err != nil {
		return errorx.Wrap(errorx.LockFailed, err, "Cannot resolve the connection pool")
	}

	v, _ := storeLocks.LoadOrStore(pool, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	defer mu.Unlock()

	if db.Dialector.Name() != "postgres" {
		return fn(db)
	}

	return db.Connection(func(conn *gorm.DB) error {
		if err := conn.Exec("SELECT pg_advisory_lock(?)", key).Error; err != nil {
			return errorx.Wrap(errorx.LockFailed, err, "Cannot acquire migration lock %d", key)
		}
		defer conn.Exec("SELECT pg_advisory_unlock(?)", key)

		return fn(conn)
	})
}
