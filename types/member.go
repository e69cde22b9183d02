/*
# Module: types/member.go
Membership record data structures.

## Linked Modules
(None - types package has no dependencies)

## Tags
data-types, member, loyalty

## Exports
MemberRecord

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "types/member.go" ;
    code:description "Membership record data structures" ;
    code:exports :MemberRecord ;
    code:tags "data-types", "member", "loyalty" .
<!-- End LinkedDoc RDF -->
*/
package types

// MemberRecord represents one user's persisted members-card state.
// BarcodeNum is generated once at creation and never changes afterwards.
// Date fields are strings so they round-trip unchanged between DynamoDB
// and the JSON response (YYYY/MM/DD for the expiration, YYYY/MM/DD hh:mm:ss
// for the audit timestamps).
type MemberRecord struct {
	UserID              string `json:"userId" dynamodbav:"userId"`
	BarcodeNum          int64  `json:"barcodeNum" dynamodbav:"barcodeNum"`
	PointExpirationDate string `json:"pointExpirationDate" dynamodbav:"pointExpirationDate"`
	Point               int64  `json:"point" dynamodbav:"point"`
	CreatedTime         string `json:"createdTime,omitempty" dynamodbav:"createdTime"`
	UpdatedTime         string `json:"updatedTime,omitempty" dynamodbav:"updatedTime"`
}
