package infra

import (
	"errors"

	"parking-allocator/internal/pkg/errs"
)

type RepositoryErrorKind string

const (
	KindNotFound     RepositoryErrorKind = "NOT_FOUND"
	KindDuplicateKey RepositoryErrorKind = "DUPLICATE_KEY"
	KindConflict     RepositoryErrorKind = "CONFLICT"
	KindDBFailure    RepositoryErrorKind = "DB_FAILURE"
)

type RepositoryError struct {
	Kind RepositoryErrorKind
	err  error
}

func (e *RepositoryError) Error() string {
	return e.err.Error()
}

func (e *RepositoryError) Unwrap() error {
	return e.err
}

// WrapRepoErr tags a storage error with a kind so usecases can branch on
// outcome without seeing driver details. Kind defaults to DB_FAILURE.
func WrapRepoErr(msg string, err error, kind ...RepositoryErrorKind) error {
	k := KindDBFailure
	if len(kind) > 0 {
		k = kind[0]
	}
	return &RepositoryError{Kind: k, err: errs.Wrap(err, msg)}
}

func IsKind(err error, kind RepositoryErrorKind) bool {
	var repoErr *RepositoryError
	if errors.As(err, &repoErr) {
		return repoErr.Kind == kind
	}
	return false
}
