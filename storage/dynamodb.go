/*
# Module: storage/dynamodb.go
DynamoDB implementation of the membership record repository.

## Linked Modules
- [storage/repository](./repository.go) - Repository interface
- [types/member](../types/member.go) - Membership record data structures

## Tags
storage, dynamodb, persistence, repository

## Exports
MemberDynamoDBRepository, NewMemberDynamoDBRepository

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "storage/dynamodb.go" ;
    code:description "DynamoDB implementation of the membership record repository" ;
    code:linksTo [
        code:name "storage/repository" ;
        code:path "./repository.go" ;
        code:relationship "Repository interface"
    ], [
        code:name "types/member" ;
        code:path "../types/member.go" ;
        code:relationship "Membership record data structures"
    ] ;
    code:exports :MemberDynamoDBRepository, :NewMemberDynamoDBRepository ;
    code:tags "storage", "dynamodb", "persistence", "repository" .
<!-- End LinkedDoc RDF -->
*/
package storage

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"members-card/types"
)

const timestampLayout = "2006/01/02 15:04:05"

// MemberDynamoDBRepository implements MemberRepository using DynamoDB.
// The table is keyed on userId alone; one item per member.
type MemberDynamoDBRepository struct {
	client    *dynamodb.Client
	tableName string
	now       func() time.Time
}

// NewMemberDynamoDBRepository creates a new DynamoDB member repository.
// now supplies the wall clock used for audit timestamps (pass a clock
// pinned to the store's time zone).
func NewMemberDynamoDBRepository(client *dynamodb.Client, tableName string, now func() time.Time) *MemberDynamoDBRepository {
	if now == nil {
		now = time.Now
	}
	return &MemberDynamoDBRepository{
		client:    client,
		tableName: tableName,
		now:       now,
	}
}

// Get retrieves a member record by user ID. Absent records are (nil, nil).
func (r *MemberDynamoDBRepository) Get(ctx context.Context, userID string) (*types.MemberRecord, error) {
	if r.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]dynamodbtypes.AttributeValue{
			"userId": &dynamodbtypes.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get member record: %w", err)
	}

	if result.Item == nil {
		return nil, nil
	}

	var record types.MemberRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal member record: %w", err)
	}

	return &record, nil
}

// Create stores a new member record. The conditional put keeps a racing
// first visit from overwriting the barcode generated by the other request.
func (r *MemberDynamoDBRepository) Create(ctx context.Context, record types.MemberRecord) error {
	if r.client == nil {
		return fmt.Errorf("DynamoDB client not initialized")
	}

	stamp := r.now().Format(timestampLayout)
	record.CreatedTime = stamp
	record.UpdatedTime = stamp

	item, err := attributevalue.MarshalMap(record)
	if err != nil {
		return fmt.Errorf("failed to marshal member record: %w", err)
	}

	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(userId)"),
	})
	if err != nil {
		var conditionFailed *dynamodbtypes.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return ErrMemberExists
		}
		return fmt.Errorf("failed to save member record to DynamoDB: %w", err)
	}

	log.Printf("💾 Member record saved to DynamoDB: userId=%s", record.UserID)
	return nil
}

// AddPoints increments the point balance and resets the expiration date in
// one UpdateItem. ADD makes the balance update atomic, so two concurrent
// purchases for the same user both land instead of one overwriting the
// other. The condition keeps a purchase from materializing a record that
// init never created.
func (r *MemberDynamoDBRepository) AddPoints(ctx context.Context, userID string, points int64, expirationDate string) (*types.MemberRecord, error) {
	if r.client == nil {
		return nil, fmt.Errorf("DynamoDB client not initialized")
	}

	result, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]dynamodbtypes.AttributeValue{
			"userId": &dynamodbtypes.AttributeValueMemberS{Value: userID},
		},
		UpdateExpression:    aws.String("SET pointExpirationDate = :expiration, updatedTime = :updated ADD #point :points"),
		ConditionExpression: aws.String("attribute_exists(userId)"),
		// "point" collides with a DynamoDB reserved word, hence the alias.
		ExpressionAttributeNames: map[string]string{
			"#point": "point",
		},
		ExpressionAttributeValues: map[string]dynamodbtypes.AttributeValue{
			":points":     &dynamodbtypes.AttributeValueMemberN{Value: fmt.Sprintf("%d", points)},
			":expiration": &dynamodbtypes.AttributeValueMemberS{Value: expirationDate},
			":updated":    &dynamodbtypes.AttributeValueMemberS{Value: r.now().Format(timestampLayout)},
		},
		ReturnValues: dynamodbtypes.ReturnValueAllNew,
	})
	if err != nil {
		var conditionFailed *dynamodbtypes.ConditionalCheckFailedException
		if errors.As(err, &conditionFailed) {
			return nil, fmt.Errorf("member record not found: userId=%s", userID)
		}
		return nil, fmt.Errorf("failed to update member record: %w", err)
	}

	var record types.MemberRecord
	if err := attributevalue.UnmarshalMap(result.Attributes, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal updated member record: %w", err)
	}

	log.Printf("💾 Member record updated: userId=%s point=%d", record.UserID, record.Point)
	return &record, nil
}
