package accessrequest

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"
	"time"

	_ "modernc.org/sqlite"

	"zuzz/internal/adapters/storage"
	domain "zuzz/internal/domain/accessrequest"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	if err := storage.InitDB(db); err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	return NewSQLiteStore(db)
}

func sampleRequest(id string) domain.AccessRequest {
	return domain.AccessRequest{
		ID:            id,
		FirstName:     "Jane",
		LastName:      "Smith",
		Email:         "jane@x.com",
		Phone:         "+1 555 000 0000",
		Company:       domain.NotApplicable,
		JobTitle:      domain.NotApplicable,
		Industry:      "retail",
		CompanySize:   domain.NotApplicable,
		CurrentSystem: domain.NotApplicable,
		Budget:        domain.NotApplicable,
		Timeline:      domain.NotApplicable,
		Specialties:   []string{"retail", "saas"},
		Message:       domain.NotApplicable,
		Status:        domain.StatusPending,
		CreatedAt:     time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

// TestCreateAndGetByID verifies a full round trip, including the
// JSON-encoded specialties column.
func TestCreateAndGetByID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	want := sampleRequest("ar-1")
	created, err := store.Create(ctx, want)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID != want.ID {
		t.Fatalf("created.ID=%q", created.ID)
	}

	got, err := store.GetByID(ctx, "ar-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !got.CreatedAt.Equal(want.CreatedAt) {
		t.Errorf("createdAt=%v, want %v", got.CreatedAt, want.CreatedAt)
	}
	got.CreatedAt = want.CreatedAt
	if !reflect.DeepEqual(got, want) {
		t.Errorf("got=%+v\nwant=%+v", got, want)
	}
}

// TestCreate_DuplicateID surfaces a PersistenceError with a vendor code.
// PRE: a record with the same primary key already exists
// POST: error is a *domain.PersistenceError carrying the SQLite code
func TestCreate_DuplicateID(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Create(ctx, sampleRequest("dup")); err != nil {
		t.Fatalf("first Create: %v", err)
	}
	_, err := store.Create(ctx, sampleRequest("dup"))
	if err == nil {
		t.Fatal("expected constraint error")
	}
	var perr *domain.PersistenceError
	if !errors.As(err, &perr) {
		t.Fatalf("error type %T, want *PersistenceError", err)
	}
	if perr.Code == "" {
		t.Error("expected a vendor code on a constraint violation")
	}
}

// TestList_FilterAndOrder verifies status filtering and newest-first order.
func TestList_FilterAndOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	a := sampleRequest("a")
	a.CreatedAt = time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	b := sampleRequest("b")
	b.CreatedAt = time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC)
	c := sampleRequest("c")
	c.Status = domain.StatusContacted
	c.CreatedAt = time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)

	for _, r := range []domain.AccessRequest{a, b, c} {
		if _, err := store.Create(ctx, r); err != nil {
			t.Fatalf("Create %s: %v", r.ID, err)
		}
	}

	pending, err := store.List(ctx, ListFilter{Status: domain.StatusPending})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(pending) != 2 || pending[0].ID != "b" || pending[1].ID != "a" {
		t.Fatalf("pending=%v", ids(pending))
	}

	limited, err := store.List(ctx, ListFilter{Limit: 1})
	if err != nil {
		t.Fatalf("List limit: %v", err)
	}
	if len(limited) != 1 || limited[0].ID != "c" {
		t.Fatalf("limited=%v", ids(limited))
	}
}

// TestCount tallies all rows regardless of status.
func TestCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if n, err := store.Count(ctx); err != nil || n != 0 {
		t.Fatalf("Count empty = %d, %v", n, err)
	}
	store.Create(ctx, sampleRequest("1"))
	store.Create(ctx, sampleRequest("2"))
	if n, err := store.Count(ctx); err != nil || n != 2 {
		t.Fatalf("Count = %d, %v", n, err)
	}
}

// TestGetByID_NotFound returns sql.ErrNoRows for unknown IDs.
func TestGetByID_NotFound(t *testing.T) {
	store := newTestStore(t)
	if _, err := store.GetByID(context.Background(), "missing"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("err=%v, want sql.ErrNoRows", err)
	}
}

func ids(rs []domain.AccessRequest) []string {
	var out []string
	for _, r := range rs {
		out = append(out, r.ID)
	}
	return out
}
