package market

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver, WAL-friendly

	"tradedeck/internal/domain"
	appErrors "tradedeck/internal/errors"
)

// SQLiteStore reads leads directly from the snapshot database in read-only
// WAL mode so the marketplace sync job can keep writing underneath it.
// The single mutating operation opens a short-lived read-write connection.
type SQLiteStore struct {
	dbPath    string
	readDSN   string
	writeDSN  string
	builderID string
}

// SQLiteOption configures a SQLiteStore.
type SQLiteOption func(*SQLiteStore)

// WithBuilderID scopes Leads and Lead to a single builder profile.
func WithBuilderID(id string) SQLiteOption {
	return func(s *SQLiteStore) {
		s.builderID = strings.TrimSpace(id)
	}
}

// NewSQLiteStore constructs a store over the snapshot at dbPath.
func NewSQLiteStore(dbPath string, opts ...SQLiteOption) (*SQLiteStore, error) {
	trimmed := strings.TrimSpace(dbPath)
	if trimmed == "" {
		return nil, appErrors.New(appErrors.CodeStoreOpenFailed, "market snapshot path is empty", nil)
	}
	s := &SQLiteStore{
		dbPath:   trimmed,
		readDSN:  buildSnapshotDSN(trimmed, false),
		writeDSN: buildSnapshotDSN(trimmed, true),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Path returns the snapshot file path, used for mod-time refresh checks.
func (s *SQLiteStore) Path() string {
	return s.dbPath
}

// buildSnapshotDSN creates a WAL DSN for the given path, read-only unless
// writable is set.
func buildSnapshotDSN(dbPath string, writable bool) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(dbPath),
	}
	q := url.Values{}
	if writable {
		q.Set("mode", "rw")
	} else {
		q.Set("mode", "ro")
	}
	q.Set("_journal_mode", "WAL")
	q.Set("_busy_timeout", "3000")
	q.Set("_foreign_keys", "on")
	q.Set("cache", "shared")
	u.RawQuery = q.Encode()
	return u.String()
}

func (s *SQLiteStore) openDB(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreOpenFailed, "open market snapshot", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, appErrors.New(appErrors.CodeStoreOpenFailed, "ping market snapshot", err)
	}
	return db, nil
}

const leadColumns = `ref, title, description, category, postcode, phone,
	       budget_pence, COALESCE(quote_pence, 0), status,
	       created_at, updated_at`

func (s *SQLiteStore) Leads(ctx context.Context) ([]domain.Lead, error) {
	db, err := s.openDB(ctx, s.readDSN)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	query := `SELECT ` + leadColumns + ` FROM leads`
	var args []any
	if s.builderID != "" {
		query += ` WHERE builder_id = ?`
		args = append(args, s.builderID)
	}
	query += ` ORDER BY created_at, ref`

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreQueryFailed, "query leads", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var leads []domain.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}
	if leads == nil {
		leads = []domain.Lead{}
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeStoreQueryFailed, "iterate leads", err)
	}
	return leads, nil
}

func (s *SQLiteStore) Lead(ctx context.Context, ref string) (domain.Lead, error) {
	db, err := s.openDB(ctx, s.readDSN)
	if err != nil {
		return domain.Lead{}, err
	}
	defer func() {
		_ = db.Close()
	}()

	row := db.QueryRowContext(ctx, `SELECT `+leadColumns+` FROM leads WHERE ref = ?`, ref)
	lead, err := scanLead(row)
	if err != nil {
		if appErrors.IsCode(err, appErrors.CodeNotFound) {
			return domain.Lead{}, appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("lead %s not found", ref), nil)
		}
		return domain.Lead{}, err
	}
	return lead, nil
}

func (s *SQLiteStore) Builders(ctx context.Context) ([]domain.Builder, error) {
	db, err := s.openDB(ctx, s.readDSN)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = db.Close()
	}()

	rows, err := db.QueryContext(ctx, `SELECT id, name FROM builders ORDER BY name, id`)
	if err != nil {
		return nil, appErrors.New(appErrors.CodeStoreQueryFailed, "query builders", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var builders []domain.Builder
	for rows.Next() {
		var b domain.Builder
		if err := rows.Scan(&b.ID, &b.Name); err != nil {
			return nil, appErrors.New(appErrors.CodeStoreQueryFailed, "scan builder", err)
		}
		builders = append(builders, b)
	}
	if builders == nil {
		builders = []domain.Builder{}
	}
	if err := rows.Err(); err != nil {
		return nil, appErrors.New(appErrors.CodeStoreQueryFailed, "iterate builders", err)
	}
	return builders, nil
}

// UpdateLeadStatus validates the transition against the current row before
// writing, inside a single transaction so concurrent dashboards cannot race
// each other into an illegal state.
func (s *SQLiteStore) UpdateLeadStatus(ctx context.Context, ref string, to domain.Status) error {
	if err := to.Validate(); err != nil {
		return err
	}

	db, err := s.openDB(ctx, s.writeDSN)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return appErrors.New(appErrors.CodeStoreQueryFailed, "begin transaction", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var current string
	err = tx.QueryRowContext(ctx, `SELECT status FROM leads WHERE ref = ?`, ref).Scan(&current)
	if err == sql.ErrNoRows {
		return appErrors.New(appErrors.CodeNotFound, fmt.Sprintf("lead %s not found", ref), nil)
	}
	if err != nil {
		return appErrors.New(appErrors.CodeStoreQueryFailed, "read lead status", err)
	}

	from, err := domain.ParseStatus(current)
	if err != nil {
		return err
	}
	if err := from.CanTransitionTo(to); err != nil {
		return err
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if _, err := tx.ExecContext(ctx,
		`UPDATE leads SET status = ?, updated_at = ? WHERE ref = ?`, string(to), now, ref); err != nil {
		return appErrors.New(appErrors.CodeStoreQueryFailed, "update lead status", err)
	}
	if err := tx.Commit(); err != nil {
		return appErrors.New(appErrors.CodeStoreQueryFailed, "commit lead status", err)
	}
	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (domain.Lead, error) {
	var (
		lead               domain.Lead
		status             string
		createdAt, updated string
	)
	err := row.Scan(
		&lead.Ref,
		&lead.Title,
		&lead.Description,
		&lead.Category,
		&lead.Postcode,
		&lead.Phone,
		&lead.BudgetPence,
		&lead.QuotePence,
		&status,
		&createdAt,
		&updated,
	)
	if err == sql.ErrNoRows {
		return domain.Lead{}, appErrors.New(appErrors.CodeNotFound, "lead not found", nil)
	}
	if err != nil {
		return domain.Lead{}, appErrors.New(appErrors.CodeStoreQueryFailed, "scan lead", err)
	}

	parsed, err := domain.ParseStatus(status)
	if err != nil {
		return domain.Lead{}, err
	}
	lead.Status = parsed
	lead.CreatedAt = parseSnapshotTime(createdAt)
	lead.UpdatedAt = parseSnapshotTime(updated)
	return lead, nil
}

// parseSnapshotTime tolerates the two timestamp shapes the sync job has
// produced over time. Unparseable values become the zero time.
func parseSnapshotTime(raw string) time.Time {
	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}
