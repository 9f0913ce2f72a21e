// Package session keeps anonymous visitor sessions in the application DB.
package session

import (
	"context"
	"net/http"
	"time"

	"github.com/alexedwards/scs/mysqlstore"
	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

const visitorIDKey = "visitor_id"

// NewSessionManager creates an SCS session manager backed by the application DB.
// The driver parameter selects the appropriate store: "mysql", "postgres", or
// "sqlite3" (default).
func NewSessionManager(db *sqlx.DB, driver string, lifetime time.Duration, secure bool) *scs.SessionManager {
	sm := scs.New()
	switch driver {
	case "mysql":
		sm.Store = mysqlstore.New(db.DB)
	case "postgres":
		sm.Store = postgresstore.New(db.DB)
	default: // sqlite3
		sm.Store = sqlite3store.New(db.DB)
	}
	sm.Lifetime = lifetime
	sm.Cookie.Name = "cryptolab_session"
	sm.Cookie.HttpOnly = true
	sm.Cookie.SameSite = http.SameSiteLaxMode
	sm.Cookie.Secure = secure
	return sm
}

// VisitorID returns the visitor's ID from the session loaded into ctx,
// creating and storing a new one on first use. ctx must come from a request
// that passed through sm.LoadAndSave.
func VisitorID(ctx context.Context, sm *scs.SessionManager) string {
	if id := sm.GetString(ctx, visitorIDKey); id != "" {
		return id
	}
	id := uuid.NewString()
	sm.Put(ctx, visitorIDKey, id)
	return id
}
