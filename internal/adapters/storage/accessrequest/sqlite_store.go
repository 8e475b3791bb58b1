package accessrequest

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	sqlite "modernc.org/sqlite"

	"zuzz/internal/adapters/storage"
	domain "zuzz/internal/domain/accessrequest"
)

const timeLayout = "2006-01-02T15:04:05Z07:00"

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

const accessRequestColumns = `id, first_name, last_name, email, phone, company, job_title,
		industry, company_size, current_system, budget, timeline, specialties, message,
		status, created_at`

// Create inserts a new access request.
// PRE: r has a non-empty ID and CreatedAt
// POST: Record is persisted exactly as given, or a *domain.PersistenceError
// is returned and nothing is written
func (s *SQLiteStore) Create(ctx context.Context, r domain.AccessRequest) (domain.AccessRequest, error) {
	specialties, err := json.Marshal(r.Specialties)
	if err != nil {
		return domain.AccessRequest{}, &domain.PersistenceError{Err: err}
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO access_request (id, first_name, last_name, email, phone, company, job_title,
		   industry, company_size, current_system, budget, timeline, specialties, message,
		   status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.FirstName, r.LastName, r.Email, r.Phone, r.Company, r.JobTitle,
		r.Industry, r.CompanySize, r.CurrentSystem, r.Budget, r.Timeline,
		string(specialties), r.Message, r.Status, r.CreatedAt.Format(timeLayout))
	if err != nil {
		return domain.AccessRequest{}, &domain.PersistenceError{
			Code: vendorCode(err),
			Err:  err,
		}
	}
	return r, nil
}

// vendorCode extracts the SQLite result code from a driver error, empty
// when the failure is not driver-originated.
func vendorCode(err error) string {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) {
		return strconv.Itoa(sqliteErr.Code())
	}
	return ""
}

// GetByID retrieves an access request by ID.
// PRE: id is non-empty
// POST: Returns the entity or an error if not found
func (s *SQLiteStore) GetByID(ctx context.Context, id string) (domain.AccessRequest, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+accessRequestColumns+` FROM access_request WHERE id = ?`, id)
	return scanAccessRequest(row)
}

// List returns access requests matching the filter, newest first.
// PRE: filter has valid parameters
// POST: Returns matching records ordered by created_at DESC
func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]domain.AccessRequest, error) {
	query := `SELECT ` + accessRequestColumns + ` FROM access_request WHERE 1=1`
	args := []any{}

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at DESC`
	if filter.Limit > 0 {
		query += ` LIMIT ?`
		args = append(args, filter.Limit)
	} else if filter.Offset > 0 {
		// SQLite requires a LIMIT clause before OFFSET
		query += ` LIMIT -1`
	}
	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.AccessRequest
	for rows.Next() {
		r, err := scanAccessRequestRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// Count returns the total number of access requests.
func (s *SQLiteStore) Count(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM access_request`).Scan(&n)
	return n, err
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccessRequest(row *sql.Row) (domain.AccessRequest, error) {
	return scanFrom(row)
}

func scanAccessRequestRows(rows *sql.Rows) (domain.AccessRequest, error) {
	return scanFrom(rows)
}

func scanFrom(sc rowScanner) (domain.AccessRequest, error) {
	var r domain.AccessRequest
	var specialties, createdAt string
	err := sc.Scan(&r.ID, &r.FirstName, &r.LastName, &r.Email, &r.Phone, &r.Company,
		&r.JobTitle, &r.Industry, &r.CompanySize, &r.CurrentSystem, &r.Budget,
		&r.Timeline, &specialties, &r.Message, &r.Status, &createdAt)
	if err != nil {
		return domain.AccessRequest{}, err
	}
	if err := json.Unmarshal([]byte(specialties), &r.Specialties); err != nil {
		return domain.AccessRequest{}, err
	}
	if r.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return domain.AccessRequest{}, err
	}
	return r, nil
}
