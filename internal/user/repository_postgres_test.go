package user

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func userRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"userId", "fullName", "email", "password", "role", "address", "createdAt"})
}

func TestPostgresGetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").WithArgs(1).
		WillReturnRows(userRows().AddRow(1, "Ann", "ann@x.com", "hash", "user", "Springfield", "2024-01-01T00:00:00Z"))

	u, err := repo.GetByID(1)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if u.ID != 1 || u.FullName != "Ann" || u.Address != "Springfield" {
		t.Fatalf("unexpected user %+v", u)
	}

	// missing row maps to ErrNotFound
	mock.ExpectQuery("FROM users").WithArgs(42).WillReturnRows(userRows())
	if _, err := repo.GetByID(42); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresGetByIDNullColumns(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("FROM users").WithArgs(2).
		WillReturnRows(userRows().AddRow(2, "Bob", "bob@x.com", "hash", "user", nil, nil))

	u, err := repo.GetByID(2)
	if err != nil {
		t.Fatalf("expected nil err, got %v", err)
	}
	if u.Address != "" || u.CreatedAt != "" {
		t.Fatalf("NULL columns must scan to empty strings, got %+v", u)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs("Ann", "ann@x.com", "hash", "user", "Springfield", "2024-01-01T00:00:00Z").
		WillReturnRows(sqlmock.NewRows([]string{"userId"}).AddRow(7))

	created, err := repo.Create(User{
		FullName:  "Ann",
		Email:     "ann@x.com",
		Password:  "hash",
		Role:      "user",
		Address:   "Springfield",
		CreatedAt: "2024-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID != 7 {
		t.Fatalf("expected assigned id 7, got %d", created.ID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresUpdateMissingUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("UPDATE users").
		WithArgs("Ann", "ann@x.com", "hash", "user", "Springfield", 42).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if _, err := repo.Update(42, User{
		FullName: "Ann",
		Email:    "ann@x.com",
		Password: "hash",
		Role:     "user",
		Address:  "Springfield",
	}); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestPostgresDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()
	repo := NewPostgresRepository(db)

	mock.ExpectExec("DELETE FROM users").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 1))
	if err := repo.Delete(1); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	mock.ExpectExec("DELETE FROM users").WithArgs(1).WillReturnResult(sqlmock.NewResult(0, 0))
	if err := repo.Delete(1); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}
