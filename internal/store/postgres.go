package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

type postgresStore struct {
	db *sql.DB
}

// NewPostgresStore keeps every record in a single JSONB table keyed by
// partition, record type and id.
func NewPostgresStore(db *sql.DB) RecordStore {
	return &postgresStore{db: db}
}

func (s *postgresStore) Save(ctx context.Context, p Partition, rec Record) (Record, error) {
	query := `
		INSERT INTO records (partition, record_type, id, fields)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (partition, record_type, id)
		DO UPDATE SET fields = EXCLUDED.fields, modified_at = NOW()
		RETURNING fields
	`

	payload, err := json.Marshal(rec.Fields)
	if err != nil {
		slog.Info(err.Error())
		return Record{}, opError("save", err)
	}

	var raw []byte
	err = s.db.QueryRowContext(ctx, query, string(p), rec.Type, rec.ID, string(payload)).Scan(&raw)
	if err != nil {
		slog.Info(err.Error())
		return Record{}, opError("save", err)
	}

	saved, err := decodeFields(rec.Type, rec.ID, raw)
	if err != nil {
		return Record{}, opError("save", err)
	}
	return saved, nil
}

func (s *postgresStore) SaveIf(ctx context.Context, p Partition, rec Record, conds []Condition) (bool, error) {
	payload, err := json.Marshal(rec.Fields)
	if err != nil {
		slog.Info(err.Error())
		return false, opError("save", err)
	}

	args := []any{string(p), rec.Type, rec.ID, string(payload)}
	where, args := buildConditions(conds, args)

	query := `UPDATE records SET fields = $4, modified_at = NOW() WHERE partition = $1 AND record_type = $2 AND id = $3` + where

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		slog.Info(err.Error())
		return false, opError("save", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		slog.Info(err.Error())
		return false, opError("save", err)
	}
	return affected == 1, nil
}

func (s *postgresStore) Fetch(ctx context.Context, p Partition, q Query) ([]Record, error) {
	args := []any{string(p), q.Type}
	where, args := buildConditions(q.Where, args)

	var b strings.Builder
	b.WriteString(`SELECT id, fields FROM records WHERE partition = $1 AND record_type = $2`)
	b.WriteString(where)

	b.WriteString(" ORDER BY ")
	for _, sort := range q.Sort {
		args = append(args, sort.Field)
		fmt.Fprintf(&b, "fields->($%d::text)", len(args))
		if sort.Desc {
			b.WriteString(" DESC")
		}
		b.WriteString(", ")
	}
	b.WriteString("id")

	if q.Limit > 0 {
		args = append(args, q.Limit)
		fmt.Fprintf(&b, " LIMIT $%d", len(args))
	}

	rows, err := s.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		slog.Info(err.Error())
		return nil, opError("fetch", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var id string
		var raw []byte
		if err := rows.Scan(&id, &raw); err != nil {
			slog.Info(err.Error())
			return nil, opError("fetch", err)
		}
		rec, err := decodeFields(q.Type, id, raw)
		if err != nil {
			return nil, opError("fetch", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		slog.Info(err.Error())
		return nil, opError("fetch", err)
	}

	return records, nil
}

func (s *postgresStore) FetchOne(ctx context.Context, p Partition, recordType, id string) (*Record, error) {
	query := `SELECT fields FROM records WHERE partition = $1 AND record_type = $2 AND id = $3`

	var raw []byte
	err := s.db.QueryRowContext(ctx, query, string(p), recordType, id).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		slog.Info(err.Error())
		return nil, opError("fetch", err)
	}

	rec, err := decodeFields(recordType, id, raw)
	if err != nil {
		return nil, opError("fetch", err)
	}
	return &rec, nil
}

func (s *postgresStore) Delete(ctx context.Context, p Partition, recordType, id string) error {
	query := `DELETE FROM records WHERE partition = $1 AND record_type = $2 AND id = $3`

	_, err := s.db.ExecContext(ctx, query, string(p), recordType, id)
	if err != nil {
		slog.Info(err.Error())
		return opError("delete", err)
	}
	return nil
}

// buildConditions renders conditions as SQL appended after the fixed
// predicates. Field names travel as parameters like the values do.
func buildConditions(conds []Condition, args []any) (string, []any) {
	var b strings.Builder
	for _, cond := range conds {
		op := cond.Op
		switch op {
		case Eq, Lt, Lte, Gt, Gte:
		default:
			op = Eq
		}

		value := normalize(cond.Value)
		args = append(args, cond.Field)
		fieldArg := len(args)
		args = append(args, value)
		valueArg := len(args)

		switch value.(type) {
		case float64:
			fmt.Fprintf(&b, " AND (fields->>($%d::text))::double precision %s $%d", fieldArg, op, valueArg)
		case bool:
			fmt.Fprintf(&b, " AND (fields->>($%d::text))::boolean %s $%d", fieldArg, op, valueArg)
		default:
			fmt.Fprintf(&b, ` AND (fields->>($%d::text)) COLLATE "C" %s $%d`, fieldArg, op, valueArg)
		}
	}
	return b.String(), args
}

func decodeFields(recordType, id string, raw []byte) (Record, error) {
	rec := NewRecord(recordType, id)
	if len(raw) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(raw, &rec.Fields); err != nil {
		slog.Info(err.Error())
		return Record{}, err
	}
	if rec.Fields == nil {
		rec.Fields = map[string]any{}
	}
	return rec, nil
}
