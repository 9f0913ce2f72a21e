package api_test

import (
	"net/http"
	"testing"

	"github.com/joestump/cryptolab/internal/api"
	"github.com/joestump/cryptolab/internal/catalog"
	"github.com/joestump/cryptolab/internal/store"
)

func TestHistory_RecordsAndPaginates(t *testing.T) {
	env := newTestEnv(t)
	v := env.visitor()

	v.do(t, http.MethodPost, "/ciphers/vigenere/encrypt", api.CipherRequest{Text: "hello", Key: "key"})
	v.do(t, http.MethodPost, "/ciphers/aes/encrypt", api.CipherRequest{Text: "hello", Key: "bad"})
	v.do(t, http.MethodPost, "/rsa/keys", nil)

	page1 := decode[api.HistoryResponse](t, v.do(t, http.MethodGet, "/history?limit=2", nil))
	if len(page1.Operations) != 2 {
		t.Fatalf("page1 has %d operations, want 2", len(page1.Operations))
	}
	if page1.NextCursor == nil {
		t.Fatal("page1 next_cursor is null, want a cursor")
	}
	if got := page1.Operations[0]; got.Algorithm != "rsa" || got.Action != "keygen" {
		t.Errorf("newest = %s/%s, want rsa/keygen", got.Algorithm, got.Action)
	}
	failed := page1.Operations[1]
	if failed.Algorithm != "aes" || failed.Status != store.StatusError || failed.Error == "" {
		t.Errorf("second = %+v, want failed aes operation with an error", failed)
	}

	page2 := decode[api.HistoryResponse](t, v.do(t, http.MethodGet, "/history?limit=2&cursor="+*page1.NextCursor, nil))
	if len(page2.Operations) != 1 {
		t.Fatalf("page2 has %d operations, want 1", len(page2.Operations))
	}
	if got := page2.Operations[0]; got.Algorithm != "vigenere" || got.InputLen != 5 || got.OutputLen != 5 {
		t.Errorf("oldest = %+v, want vigenere with 5/5 lengths", got)
	}
	if page2.NextCursor != nil {
		t.Errorf("page2 next_cursor = %q, want null", *page2.NextCursor)
	}

	if rec := v.do(t, http.MethodGet, "/history?cursor=not-a-cursor", nil); rec.Code != http.StatusBadRequest {
		t.Errorf("bad cursor status = %d, want 400", rec.Code)
	}
}

func TestHistory_IsPerVisitor(t *testing.T) {
	env := newTestEnv(t)
	alice := env.visitor()
	bob := env.visitor()

	alice.do(t, http.MethodPost, "/ciphers/railfence/encrypt", api.CipherRequest{Text: "hello", Key: "2"})
	bob.do(t, http.MethodGet, "/dh/defaults", nil)

	own := decode[api.HistoryResponse](t, alice.do(t, http.MethodGet, "/history", nil))
	if len(own.Operations) != 1 {
		t.Fatalf("alice sees %d operations, want 1", len(own.Operations))
	}
	id := own.Operations[0].ID

	if rec := alice.do(t, http.MethodGet, "/history/"+id, nil); rec.Code != http.StatusOK {
		t.Errorf("alice GET own operation = %d, want 200", rec.Code)
	}
	if rec := bob.do(t, http.MethodGet, "/history/"+id, nil); rec.Code != http.StatusNotFound {
		t.Errorf("bob GET alice's operation = %d, want 404", rec.Code)
	}
	if rec := alice.do(t, http.MethodGet, "/history/01HZZZZZZZZZZZZZZZZZZZZZZZ", nil); rec.Code != http.StatusNotFound {
		t.Errorf("GET unknown operation = %d, want 404", rec.Code)
	}

	other := decode[api.HistoryResponse](t, bob.do(t, http.MethodGet, "/history", nil))
	if len(other.Operations) != 0 {
		t.Errorf("bob sees %d operations, want 0", len(other.Operations))
	}
}

func TestHistory_Summary(t *testing.T) {
	env := newTestEnv(t)
	v := env.visitor()

	empty := decode[api.HistorySummaryResponse](t, v.do(t, http.MethodGet, "/history/summary", nil))
	if empty.Algorithms == nil || len(empty.Algorithms) != 0 {
		t.Errorf("empty summary = %+v, want empty list", empty.Algorithms)
	}

	for i := 0; i < 2; i++ {
		v.do(t, http.MethodPost, "/rsa/keys", nil)
	}
	v.do(t, http.MethodPost, "/ecc/keys", nil)

	sum := decode[api.HistorySummaryResponse](t, v.do(t, http.MethodGet, "/history/summary", nil))
	want := []store.AlgorithmCount{{Algorithm: "ecdh", Count: 1}, {Algorithm: "rsa", Count: 2}}
	if len(sum.Algorithms) != len(want) {
		t.Fatalf("summary = %+v, want %+v", sum.Algorithms, want)
	}
	for i := range want {
		if sum.Algorithms[i] != want[i] {
			t.Errorf("summary[%d] = %+v, want %+v", i, sum.Algorithms[i], want[i])
		}
	}
}

func TestAlgorithms(t *testing.T) {
	env := newTestEnv(t)
	v := env.visitor()

	list := decode[api.AlgorithmListResponse](t, v.do(t, http.MethodGet, "/algorithms", nil))
	if len(list.Algorithms) != 9 {
		t.Errorf("len(algorithms) = %d, want 9", len(list.Algorithms))
	}

	a := decode[catalog.Algorithm](t, v.do(t, http.MethodGet, "/algorithms/playfair", nil))
	if a.Family != catalog.FamilySymmetric {
		t.Errorf("playfair family = %q, want symmetric", a.Family)
	}

	if rec := v.do(t, http.MethodGet, "/algorithms/enigma", nil); rec.Code != http.StatusNotFound {
		t.Errorf("unknown algorithm status = %d, want 404", rec.Code)
	}
}
