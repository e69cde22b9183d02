/*
# Module: storage/repository.go
Repository interface for membership record persistence.

## Linked Modules
- [types/member](../types/member.go) - Membership record data structures

## Tags
storage, repository, interface, persistence

## Exports
MemberRepository, ErrMemberExists

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/repository.go" ;
    code:description "Repository interface for membership record persistence" ;
    code:linksTo [
        code:name "types/member" ;
        code:path "../types/member.go" ;
        code:relationship "Membership record data structures"
    ] ;
    code:exports :MemberRepository, :ErrMemberExists ;
    code:tags "storage", "repository", "interface", "persistence" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"errors"

	"members-card/types"
)

// ErrMemberExists is returned by Create when a record for the user is
// already present (two first-visit requests racing).
var ErrMemberExists = errors.New("member record already exists")

// MemberRepository handles membership record persistence.
type MemberRepository interface {
	// Get returns the record for userID, or (nil, nil) when absent.
	Get(ctx context.Context, userID string) (*types.MemberRecord, error)

	// Create persists a brand-new record. Returns ErrMemberExists when a
	// record for the same user is already stored.
	Create(ctx context.Context, record types.MemberRecord) error

	// AddPoints atomically adds points to the balance, resets the point
	// expiration date, and returns the record as stored after the update.
	AddPoints(ctx context.Context, userID string, points int64, expirationDate string) (*types.MemberRecord, error)
}
