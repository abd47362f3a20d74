//go:build unit || e2e

package testutil

import (
	"errors"

	"pricing-api/internal/infra"
)

// IsRepoErrKind reports whether err carries an infra.RepositoryError of the given kind.
func IsRepoErrKind(err error, kind infra.RepositoryErrorKind) bool {
	var repoErr infra.RepositoryError
	if !errors.As(err, &repoErr) {
		return false
	}
	return repoErr.Kind == kind
}
