package sqlite

import (
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"

	"RecyclePress/pkg/bcrypt"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	t.Setenv("DB_PATH", filepath.Join(t.TempDir(), "test.db"))

	db, err := New()
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestNewCreatesSchema(t *testing.T) {
	db := openTestDB(t)

	for _, table := range []string{"categories", "articles", "media", "users", "comments"} {
		var name string
		err := db.Get(&name,
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err != nil {
			t.Errorf("table %s missing: %v", table, err)
		}
	}
}

func TestNewSeedsAdminUser(t *testing.T) {
	db := openTestDB(t)

	var row struct {
		ID       string `db:"id"`
		Username string `db:"username"`
		Email    string `db:"email"`
		Password string `db:"password"`
		Role     string `db:"role"`
	}
	err := db.Get(&row,
		`SELECT id, username, email, password, role FROM users WHERE role = 'admin'`)
	if err != nil {
		t.Fatalf("admin user not seeded: %v", err)
	}

	if row.ID != "1" {
		t.Errorf("admin id = %q, want %q", row.ID, "1")
	}
	if row.Username != "admin" {
		t.Errorf("admin username = %q", row.Username)
	}
	if row.Email != "admin@auto-recycling.com" {
		t.Errorf("admin email = %q", row.Email)
	}
	if row.Password == "admin123" {
		t.Error("admin password stored in plaintext")
	}
	if err := bcrypt.New().ComparePassword(row.Password, "admin123"); err != nil {
		t.Errorf("seeded admin password hash does not verify: %v", err)
	}
}

func TestNewSeedsSampleContent(t *testing.T) {
	db := openTestDB(t)

	var categoryCount, articleCount int
	if err := db.Get(&categoryCount, `SELECT COUNT(*) FROM categories`); err != nil {
		t.Fatal(err)
	}
	if err := db.Get(&articleCount, `SELECT COUNT(*) FROM articles`); err != nil {
		t.Fatal(err)
	}

	if categoryCount != 5 {
		t.Errorf("seeded categories = %d, want 5", categoryCount)
	}
	if articleCount != 6 {
		t.Errorf("seeded articles = %d, want 6", articleCount)
	}
}

func TestSeedIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")
	t.Setenv("DB_PATH", path)

	db, err := New()
	if err != nil {
		t.Fatalf("first New() error = %v", err)
	}
	db.Close()

	db, err = New()
	if err != nil {
		t.Fatalf("second New() error = %v", err)
	}
	defer db.Close()

	var userCount, categoryCount int
	if err := db.Get(&userCount, `SELECT COUNT(*) FROM users`); err != nil {
		t.Fatal(err)
	}
	if err := db.Get(&categoryCount, `SELECT COUNT(*) FROM categories`); err != nil {
		t.Fatal(err)
	}

	if userCount != 1 {
		t.Errorf("users after reopen = %d, want 1", userCount)
	}
	if categoryCount != 5 {
		t.Errorf("categories after reopen = %d, want 5", categoryCount)
	}
}

func TestCommentsCascadeOnArticleDelete(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(
		`INSERT INTO comments (id, article_id, username, content) VALUES (?, ?, ?, ?)`,
		"c1", "1", "visitor", "great read")
	if err != nil {
		t.Fatalf("failed to insert comment: %v", err)
	}

	if _, err := db.Exec(`DELETE FROM articles WHERE id = ?`, "1"); err != nil {
		t.Fatalf("failed to delete article: %v", err)
	}

	var count int
	if err := db.Get(&count, `SELECT COUNT(*) FROM comments WHERE article_id = ?`, "1"); err != nil {
		t.Fatal(err)
	}
	if count != 0 {
		t.Errorf("comments survived article delete, count = %d", count)
	}
}

func TestIsUniqueViolation(t *testing.T) {
	db := openTestDB(t)

	_, err := db.Exec(
		`INSERT INTO users (id, username, email, password) VALUES (?, ?, ?, ?)`,
		"dup", "admin", "other@example.com", "x")
	if err == nil {
		t.Fatal("expected unique violation on duplicate username")
	}
	if !IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = false, want true", err)
	}

	_, err = db.Exec(`INSERT INTO bogus_table VALUES (1)`)
	if err == nil {
		t.Fatal("expected error on missing table")
	}
	if IsUniqueViolation(err) {
		t.Errorf("IsUniqueViolation(%v) = true for unrelated error", err)
	}
}
