package db

import (
	"strings"
	"testing"
)

func TestInitDB_SQLiteMemoryCreatesTables(t *testing.T) {
	db, err := InitDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer db.Close()

	for _, table := range []string{"users", "feedback", "sessions"} {
		var name string
		err := db.Get(&name, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err != nil {
			t.Fatalf("table %q missing: %v", table, err)
		}
	}

	var fk int
	if err := db.Get(&fk, `PRAGMA foreign_keys`); err != nil {
		t.Fatalf("read foreign_keys pragma: %v", err)
	}
	if fk != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fk)
	}
}

func TestInitDB_SchemaIsIdempotent(t *testing.T) {
	db, err := InitDB("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	defer db.Close()

	if err := ensureSchema(db, sqliteSchema); err != nil {
		t.Fatalf("second ensureSchema: %v", err)
	}
}

func TestInitDB_UnknownDriver(t *testing.T) {
	_, err := InitDB("mysql", "whatever")
	if err == nil || !strings.Contains(err.Error(), "unsupported db driver") {
		t.Fatalf("expected unsupported driver error, got %v", err)
	}
}
