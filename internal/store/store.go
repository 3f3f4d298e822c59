package store

import (
	"context"
	"errors"
	"fmt"
)

// Partition selects the per-user or the shared half of the store.
type Partition string

const (
	Private Partition = "private"
	Public  Partition = "public"
)

type Op string

const (
	Eq  Op = "="
	Lt  Op = "<"
	Lte Op = "<="
	Gt  Op = ">"
	Gte Op = ">="
)

type Condition struct {
	Field string
	Op    Op
	Value any
}

func Where(field string, op Op, value any) Condition {
	return Condition{Field: field, Op: op, Value: normalize(value)}
}

type Sort struct {
	Field string
	Desc  bool
}

type Query struct {
	Type  string
	Where []Condition
	Sort  []Sort
	Limit int
}

// RecordStore is a schemaless document store offering predicate-filtered
// reads and full-record upserts. Last writer wins.
type RecordStore interface {
	Save(ctx context.Context, p Partition, rec Record) (Record, error)
	// SaveIf replaces an existing record only while every condition holds
	// against its stored fields. It reports whether the write happened.
	SaveIf(ctx context.Context, p Partition, rec Record, conds []Condition) (bool, error)
	Fetch(ctx context.Context, p Partition, q Query) ([]Record, error)
	// FetchOne returns nil, nil when the record does not exist.
	FetchOne(ctx context.Context, p Partition, recordType, id string) (*Record, error)
	Delete(ctx context.Context, p Partition, recordType, id string) error
}

var ErrMissingData = errors.New("the record is missing required fields")

type DecodeError struct {
	RecordType string
	Field      string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s record is missing required field %q", e.RecordType, e.Field)
}

func (e *DecodeError) Is(target error) bool {
	return target == ErrMissingData
}

type OperationError struct {
	Op  string
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("record store %s failed: %v", e.Op, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func opError(op string, err error) error {
	if err == nil {
		return nil
	}
	return &OperationError{Op: op, Err: err}
}
