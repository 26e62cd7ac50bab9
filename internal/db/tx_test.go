package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	// A single connection keeps the in-memory database alive across calls.
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE people (id INTEGER PRIMARY KEY, name TEXT NOT NULL, photo TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func countPeople(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM people`).Scan(&n); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return n
}

func TestWithTx(t *testing.T) {
	errAbort := errors.New("abort")

	tests := []struct {
		name      string
		names     []string
		fail      error
		wantCount int
	}{
		{"commit single", []string{"Ann"}, nil, 1},
		{"commit several", []string{"Ann", "Bo", "Cy"}, nil, 3},
		{"rollback after writes", []string{"Ann", "Bo"}, errAbort, 0},
		{"rollback without writes", nil, errAbort, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)

			err := WithTx(db, func(tx *sql.Tx) error {
				for _, name := range tt.names {
					if _, err := tx.Exec(`INSERT INTO people (name) VALUES (?)`, name); err != nil {
						return err
					}
				}
				return tt.fail
			})

			if !errors.Is(err, tt.fail) {
				t.Fatalf("WithTx error = %v, want %v", err, tt.fail)
			}
			if got := countPeople(t, db); got != tt.wantCount {
				t.Errorf("count = %d, want %d", got, tt.wantCount)
			}
		})
	}
}

func TestWithTx_StatementErrorRollsBack(t *testing.T) {
	db := setupTestDB(t)

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO people (name) VALUES (?)`, "Ann"); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO people (name) VALUES (NULL)`)
		return err
	})

	if err == nil {
		t.Fatal("expected NOT NULL violation")
	}
	if got := countPeople(t, db); got != 0 {
		t.Errorf("count = %d, want 0", got)
	}
}

func TestNullStringRoundTrip(t *testing.T) {
	db := setupTestDB(t)

	for _, photo := range []string{"", "https://img.example.com/a.png"} {
		if _, err := db.Exec(`INSERT INTO people (name, photo) VALUES (?, ?)`, "x", NullString(photo)); err != nil {
			t.Fatal(err)
		}
	}

	rows, err := db.Query(`SELECT photo FROM people ORDER BY id`)
	if err != nil {
		t.Fatal(err)
	}
	defer rows.Close()

	var got []sql.NullString
	for rows.Next() {
		var n sql.NullString
		if err := rows.Scan(&n); err != nil {
			t.Fatal(err)
		}
		got = append(got, n)
	}
	if len(got) != 2 {
		t.Fatalf("got %d rows, want 2", len(got))
	}
	if got[0].Valid {
		t.Errorf("empty photo should be stored as NULL, got %q", got[0].String)
	}
	if NullStringValue(got[0]) != "" {
		t.Errorf("NullStringValue(NULL) = %q", NullStringValue(got[0]))
	}
	if NullStringValue(got[1]) != "https://img.example.com/a.png" {
		t.Errorf("NullStringValue = %q", NullStringValue(got[1]))
	}
}

func TestNullStringValue_ValidEmpty(t *testing.T) {
	if got := NullStringValue(sql.NullString{String: "", Valid: true}); got != "" {
		t.Errorf("got %q, want empty string", got)
	}
	if got := NullStringValue(sql.NullString{String: "stale", Valid: false}); got != "" {
		t.Errorf("got %q, want empty string for NULL", got)
	}
}
