package db

import (
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	conn, err := New("sqlite3", "file:TestNew?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("New(sqlite3): %v", err)
	}
	defer conn.Close()
	if got := conn.DriverName(); got != "sqlite" {
		t.Errorf("DriverName = %q, want sqlite", got)
	}
	if err := Migrate(conn, "sqlite3"); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	var n int
	if err := conn.Get(&n, "SELECT COUNT(*) FROM operations"); err != nil {
		t.Fatalf("count operations: %v", err)
	}
	if n != 0 {
		t.Errorf("operations = %d, want 0", n)
	}
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New("oracle", "x")
	if err == nil || !strings.Contains(err.Error(), "oracle") {
		t.Errorf("err = %v, want unsupported driver naming oracle", err)
	}
}
