// Package postgres implements the rate repositories on PostgreSQL.
//
// Fingerprint uniqueness is enforced by a unique index per table; that
// index is the sole concurrency-correctness mechanism for overlapping
// imports, so every insert path must surface its violations.
package postgres

import (
	"strings"

	"github.com/lib/pq"

	"ratehub/internal/errors"
)

// uniqueViolation is the PostgreSQL error code for unique-constraint
// violations.
const uniqueViolation = "23505"

// translateError maps driver-level unique violations onto the
// application's duplicate-key code so the batch loader can count them
// as skips instead of failures.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == uniqueViolation {
		return errors.DuplicateKey(err)
	}
	return err
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE metacharacters in user-supplied filter
// text so a literal "100%" filter does not act as a wildcard.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// containsPattern builds an ILIKE pattern for containment filtering.
// An empty filter yields the match-everything pattern.
func containsPattern(s string) string {
	return "%" + escapeLike(s) + "%"
}

// prefixPattern builds an ILIKE pattern for autosuggest prefix matching.
func prefixPattern(s string) string {
	return escapeLike(s) + "%"
}
