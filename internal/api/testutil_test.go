package api_test

import (
	"bytes"
	"encoding/json"
	"math/rand/v2"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/joestump/cryptolab/internal/api"
	"github.com/joestump/cryptolab/internal/catalog"
	"github.com/joestump/cryptolab/internal/cipher"
	"github.com/joestump/cryptolab/internal/history"
	"github.com/joestump/cryptolab/internal/session"
	"github.com/joestump/cryptolab/internal/store"
	"github.com/joestump/cryptolab/internal/testutil"
)

// testEnv wires the API router to an in-memory database with a synchronous
// history recorder so operations are visible as soon as a request returns.
type testEnv struct {
	Router     http.Handler
	Operations *store.OperationStore
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewTestDB(t)

	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	sm := session.NewSessionManager(db, "sqlite3", time.Hour, false)
	ops := store.NewOperationStore(db)

	router := api.NewAPIRouter(api.Deps{
		Log:        zap.NewNop(),
		Catalog:    cat,
		Sessions:   sm,
		Operations: ops,
		Recorder:   history.NewSyncRecorder(ops, zap.NewNop()),
		Rand:       cipher.NewRand(rand.NewPCG(7, 11)),
	})
	return &testEnv{Router: sm.LoadAndSave(router), Operations: ops}
}

// visitor is a browser with its own session cookie.
type visitor struct {
	env    *testEnv
	cookie *http.Cookie
}

func (e *testEnv) visitor() *visitor { return &visitor{env: e} }

func (v *visitor) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if v.cookie != nil {
		req.AddCookie(v.cookie)
	}
	rec := httptest.NewRecorder()
	v.env.Router.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		if c.Name == "cryptolab_session" {
			v.cookie = c
		}
	}
	return rec
}

// decode unmarshals the recorder body, failing the test on bad JSON.
func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(rec.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return v
}
