/*
# Module: handlers/handler.go
Lambda request dispatcher for the members-card workflows.

## Linked Modules
- [clients/line_login](../clients/line_login.go) - ID-token verification client
- [pricing/pricing](../pricing/pricing.go) - Purchase pricing arithmetic
- [receipt/builder](../receipt/builder.go) - Electronic receipt construction
- [storage/repository](../storage/repository.go) - Membership record repository

## Tags
handler, lambda, dispatcher, membership

## Exports
Handler, New, Request

<!-- LinkedDoc RDF -->
@prefix code: <https://schema.codedoc.org/> .
<this> a code:Module ;
    code:name "handlers/handler.go" ;
    code:description "Lambda request dispatcher for the members-card workflows" ;
    code:linksTo [
        code:name "clients/line_login" ;
        code:path "../clients/line_login.go" ;
        code:relationship "ID-token verification client"
    ], [
        code:name "pricing/pricing" ;
        code:path "../pricing/pricing.go" ;
        code:relationship "Purchase pricing arithmetic"
    ], [
        code:name "receipt/builder" ;
        code:path "../receipt/builder.go" ;
        code:relationship "Electronic receipt construction"
    ], [
        code:name "storage/repository" ;
        code:path "../storage/repository.go" ;
        code:relationship "Membership record repository"
    ] ;
    code:exports :Handler, :New, :Request ;
    code:tags "handler", "lambda", "dispatcher", "membership" .
<!-- End LinkedDoc RDF -->
*/
package handlers

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"

	"members-card/clients"
	"members-card/pricing"
	"members-card/receipt"
	"members-card/storage"
	"members-card/types"
)

// IdentityVerifier exchanges an opaque ID token for a verified user ID.
type IdentityVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}

// Messenger delivers a flex message to a user.
type Messenger interface {
	PushMessage(ctx context.Context, userID string, message *types.FlexMessage) error
}

// Request is the JSON body posted by the LIFF frontend.
type Request struct {
	IDToken  string `json:"idToken"`
	Mode     string `json:"mode"`
	Language string `json:"language,omitempty"`
	LiffID   string `json:"liffId,omitempty"`
}

// Handler dispatches init/buy requests. All collaborators are injected so
// tests can substitute stubs; now must return the store's local time
// (Asia/Tokyo in production).
type Handler struct {
	verifier  IdentityVerifier
	members   storage.MemberRepository
	messenger Messenger
	item      types.ProductItem
	now       func() time.Time
	debug     bool
}

// New creates a request handler with its collaborators.
func New(verifier IdentityVerifier, members storage.MemberRepository, messenger Messenger, item types.ProductItem, now func() time.Time, debug bool) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		verifier:  verifier,
		members:   members,
		messenger: messenger,
		item:      item,
		now:       now,
		debug:     debug,
	}
}

// Handle processes one Function URL invocation. Failures never propagate as
// handler errors; they collapse to the coarse response taxonomy: 403
// "Forbidden" for rejected tokens, 500 "Error" when verification itself
// fails, 500 "ERROR" for everything inside the workflows.
func (h *Handler) Handle(ctx context.Context, event events.LambdaFunctionURLRequest) (events.LambdaFunctionURLResponse, error) {
	if h.debug {
		log.Printf("🔍 Request body: %s", event.Body)
	}

	var req Request
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		log.Printf("⚠️  Invalid request body: %v", err)
		return errorResponse("ERROR", http.StatusInternalServerError), nil
	}

	userID, err := h.verifier.VerifyIDToken(ctx, req.IDToken)
	if err != nil {
		if errors.Is(err, clients.ErrTokenExpired) || errors.Is(err, clients.ErrTokenInvalid) {
			log.Printf("⚠️  ID token rejected: %v", err)
			return errorResponse("Forbidden", http.StatusForbidden), nil
		}
		log.Printf("⚠️  ID token verification failed: %v", err)
		return errorResponse("Error", http.StatusInternalServerError), nil
	}

	var record *types.MemberRecord
	switch req.Mode {
	case "init":
		record, err = h.initMember(ctx, userID)
	case "buy":
		record, err = h.buy(ctx, userID, req.Language, req.LiffID)
	default:
		err = fmt.Errorf("unknown mode %q", req.Mode)
	}
	if err != nil {
		log.Printf("❌ Mode %s failed for %s: %v", req.Mode, userID, err)
		return errorResponse("ERROR", http.StatusInternalServerError), nil
	}

	body, err := json.Marshal(record)
	if err != nil {
		log.Printf("❌ Failed to marshal response: %v", err)
		return errorResponse("ERROR", http.StatusInternalServerError), nil
	}

	return events.LambdaFunctionURLResponse{
		StatusCode: http.StatusOK,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(body),
	}, nil
}

// initMember returns the caller's member record, creating it on first
// visit. Safe to call repeatedly; the barcode is generated exactly once.
func (h *Handler) initMember(ctx context.Context, userID string) (*types.MemberRecord, error) {
	record, err := h.members.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record != nil {
		return record, nil
	}

	barcode, err := newBarcodeNum()
	if err != nil {
		return nil, err
	}

	fresh := types.MemberRecord{
		UserID:              userID,
		BarcodeNum:          barcode,
		PointExpirationDate: "",
		Point:               0,
	}
	if err := h.members.Create(ctx, fresh); err != nil {
		if errors.Is(err, storage.ErrMemberExists) {
			// Lost a first-visit race; the other request's record wins.
			existing, getErr := h.members.Get(ctx, userID)
			if getErr != nil {
				return nil, getErr
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, err
	}

	log.Printf("✅ Member record created: userId=%s", userID)
	return &fresh, nil
}

// buy prices the catalog bundle, credits the awarded points, and pushes the
// electronic receipt.
//
// The receipt (including the localization lookup) is built before the
// balance commit so a bad language setting cannot credit points for a
// purchase the user is never told about. The commit still precedes the
// push: a failed push leaves the balance credited with no compensation.
func (h *Handler) buy(ctx context.Context, userID, language, liffID string) (*types.MemberRecord, error) {
	record, err := h.members.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, fmt.Errorf("no member record for userId=%s", userID)
	}

	now := h.now()
	result := pricing.Compute(h.item, 0)

	message, err := receipt.Build(h.item, result, 0, now, language, liffID)
	if err != nil {
		return nil, err
	}

	expiration := addOneYear(now).Format("2006/01/02")
	updated, err := h.members.AddPoints(ctx, userID, result.Points, expiration)
	if err != nil {
		return nil, err
	}
	log.Printf("💳 Awarded %d points: userId=%s balance=%d expires=%s",
		result.Points, userID, updated.Point, expiration)

	if err := h.messenger.PushMessage(ctx, userID, message); err != nil {
		return nil, fmt.Errorf("failed to push receipt message: %w", err)
	}

	return updated, nil
}

// newBarcodeNum draws a uniformly random 13-digit barcode number,
// range [10^12, 10^13).
func newBarcodeNum() (int64, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(9_000_000_000_000))
	if err != nil {
		return 0, fmt.Errorf("failed to generate barcode number: %w", err)
	}
	return n.Int64() + 1_000_000_000_000, nil
}

// addOneYear advances t by one calendar year, clamping into the shorter
// month instead of normalizing (Feb 29 -> Feb 28, not Mar 1).
func addOneYear(t time.Time) time.Time {
	next := t.AddDate(1, 0, 0)
	if next.Day() != t.Day() {
		next = next.AddDate(0, 0, -next.Day())
	}
	return next
}

func errorResponse(body string, status int) events.LambdaFunctionURLResponse {
	return events.LambdaFunctionURLResponse{
		StatusCode: status,
		Body:       body,
	}
}
