package sqlite_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/msomdec/account-service/internal/domain"
	"github.com/msomdec/account-service/internal/repository/sqlite"
)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func createUser(t *testing.T, repo *sqlite.UserRepository, email string, active bool) *domain.User {
	t.Helper()
	user := &domain.User{
		Name:         "User " + email,
		Email:        email,
		PasswordHash: "hash",
		IsActive:     active,
	}
	if err := repo.Create(context.Background(), user); err != nil {
		t.Fatalf("Create %s: %v", email, err)
	}
	return user
}

func TestUserRepository_Create(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	user := createUser(t, repo, "test@example.com", true)

	if user.ID == "" {
		t.Fatal("expected user ID to be set after create")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be set")
	}
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	createUser(t, repo, "dup@example.com", true)

	err := repo.Create(context.Background(), &domain.User{
		Name:         "User 2",
		Email:        "dup@example.com",
		PasswordHash: "hash2",
	})
	if !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestUserRepository_GetByID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	user := createUser(t, repo, "byid@example.com", true)

	found, err := repo.GetByID(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Email != user.Email || found.Name != user.Name {
		t.Fatalf("unexpected user: %+v", found)
	}
	if !found.IsActive {
		t.Fatal("expected user to be active")
	}
}

func TestUserRepository_GetByID_NotFound(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	_, err := repo.GetByID(context.Background(), "no-such-id")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_GetActiveByID(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	active := createUser(t, repo, "active@example.com", true)
	inactive := createUser(t, repo, "inactive@example.com", false)

	if _, err := repo.GetActiveByID(ctx, active.ID); err != nil {
		t.Fatalf("GetActiveByID(active): %v", err)
	}
	if _, err := repo.GetActiveByID(ctx, inactive.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for inactive user, got %v", err)
	}
}

func TestUserRepository_GetByEmail(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	user := createUser(t, repo, "byemail@example.com", true)

	found, err := repo.GetByEmail(context.Background(), "byemail@example.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected id %s, got %s", user.ID, found.ID)
	}

	if _, err := repo.GetByEmail(context.Background(), "nonexistent@example.com"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_List(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)

	users, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List empty: %v", err)
	}
	if users == nil || len(users) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", users)
	}

	createUser(t, repo, "a@example.com", true)
	createUser(t, repo, "b@example.com", false)

	users, err = repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 users, got %d", len(users))
	}
}

func TestUserRepository_Update(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "old@example.com", true)
	other := createUser(t, repo, "taken@example.com", true)

	user.Name = "Renamed"
	user.Email = "new@example.com"
	user.IsActive = false
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("Update: %v", err)
	}

	found, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if found.Name != "Renamed" || found.Email != "new@example.com" || found.IsActive {
		t.Fatalf("update not persisted: %+v", found)
	}

	user.Email = other.Email
	if err := repo.Update(ctx, user); !errors.Is(err, domain.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}

	missing := &domain.User{ID: "no-such-id", Name: "x", Email: "x@example.com"}
	if err := repo.Update(ctx, missing); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := sqlite.NewUserRepository(db)
	ctx := context.Background()

	user := createUser(t, repo, "gone@example.com", true)

	if err := repo.Delete(ctx, user.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := repo.GetByID(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := repo.Delete(ctx, user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
