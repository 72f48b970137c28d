package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/gofrs/uuid"
	"github.com/pkg/errors"
)

// Doc is a schemaless string-keyed document. The store injects the audit
// timestamps "createdAt" and "updatedAt" on every read.
type Doc map[string]any

var ErrNotFound = errors.New("store: document not found")

// Filter matches documents whose extracted JSON field equals Value.
type Filter struct {
	Field string
	Value string
}

// Order sorts query results by creation or update time.
type Order struct {
	Field string // "createdAt" or "updatedAt"
	Desc  bool
}

// Store persists schemaless documents in a single sqlite table keyed by
// (collection, id). Single-document writes are atomic; partial updates
// merge into the stored JSON inside one transaction.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Store {
	return &Store{db: db, now: time.Now}
}

func (s *Store) Create(ctx context.Context, collection string, doc Doc) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", errors.Wrap(err, "store.create.id")
	}
	return s.CreateWithID(ctx, collection, id.String(), doc)
}

func (s *Store) CreateWithID(ctx context.Context, collection, id string, doc Doc) (string, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return "", errors.Wrap(err, "store.create.marshal")
	}

	now := s.now().UTC()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO document (collection, id, data, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)`,
		collection, id, string(data), now, now,
	)
	if err != nil {
		return "", errors.Wrap(err, "store.create.insert")
	}
	return id, nil
}

// Update merges partial into the stored document and refreshes updated_at.
// The creation timestamp is never touched.
func (s *Store) Update(ctx context.Context, collection, id string, partial Doc) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "store.update.begin_tx")
	}
	defer tx.Rollback()

	var data string
	err = tx.QueryRowContext(ctx, `
		SELECT data FROM document
		WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return errors.Wrap(err, "store.update.select")
	}

	doc := Doc{}
	err = json.Unmarshal([]byte(data), &doc)
	if err != nil {
		return errors.Wrap(err, "store.update.unmarshal")
	}
	for k, v := range partial {
		doc[k] = v
	}

	merged, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, "store.update.marshal")
	}

	res, err := tx.ExecContext(ctx, `
		UPDATE document
		SET data = ?, updated_at = ?
		WHERE collection = ? AND id = ?`,
		string(merged), s.now().UTC(), collection, id,
	)
	if err != nil {
		return errors.Wrap(err, "store.update.exec")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "store.update.verify")
	}
	if n < 1 {
		return ErrNotFound
	}

	return errors.Wrap(tx.Commit(), "store.update.commit")
}

func (s *Store) Delete(ctx context.Context, collection, id string) error {
	res, err := s.db.ExecContext(ctx, `
		DELETE FROM document
		WHERE collection = ? AND id = ?`,
		collection, id,
	)
	if err != nil {
		return errors.Wrap(err, "store.delete.exec")
	}
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "store.delete.verify")
	}
	if n < 1 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) GetByID(ctx context.Context, collection, id string) (Doc, error) {
	var data string
	var createdAt, updatedAt time.Time
	err := s.db.QueryRowContext(ctx, `
		SELECT data, created_at, updated_at FROM document
		WHERE collection = ? AND id = ?`,
		collection, id,
	).Scan(&data, &createdAt, &updatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "store.get.scan")
	}

	return decodeDoc(id, data, createdAt, updatedAt)
}

// Query returns all documents of a collection, optionally filtered on one
// extracted JSON field, ordered by audit timestamp. A nil filter matches
// everything; a nil order means creation time ascending.
func (s *Store) Query(ctx context.Context, collection string, filter *Filter, order *Order) ([]Doc, error) {
	q := `
		SELECT id, data, created_at, updated_at FROM document
		WHERE collection = ?`
	args := []any{collection}

	if filter != nil {
		q += ` AND json_extract(data, '$.' || ?) = ?`
		args = append(args, filter.Field, filter.Value)
	}

	col := "created_at"
	if order != nil && order.Field == "updatedAt" {
		col = "updated_at"
	}
	q += ` ORDER BY ` + col
	if order != nil && order.Desc {
		q += ` DESC`
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, errors.Wrap(err, "store.query.exec")
	}
	defer rows.Close()

	docs := []Doc{}
	for rows.Next() {
		var id, data string
		var createdAt, updatedAt time.Time
		err = rows.Scan(&id, &data, &createdAt, &updatedAt)
		if err != nil {
			return nil, errors.Wrap(err, "store.query.scan")
		}

		doc, err := decodeDoc(id, data, createdAt, updatedAt)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, errors.Wrap(rows.Err(), "store.query.rows")
}

func decodeDoc(id, data string, createdAt, updatedAt time.Time) (Doc, error) {
	doc := Doc{}
	err := json.Unmarshal([]byte(data), &doc)
	if err != nil {
		return nil, errors.Wrap(err, "store.decode")
	}
	doc["id"] = id
	doc["createdAt"] = createdAt.UTC().Format(time.RFC3339Nano)
	doc["updatedAt"] = updatedAt.UTC().Format(time.RFC3339Nano)
	return doc, nil
}
