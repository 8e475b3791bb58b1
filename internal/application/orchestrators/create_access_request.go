package orchestrators

import (
	"context"
	"fmt"
	"html"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"zuzz/internal/adapters/email"
	domain "zuzz/internal/domain/accessrequest"
)

// messagePreviewLen bounds how much of the free-text message is logged.
const messagePreviewLen = 200

// AccessRequestStoreForCreate defines the store interface needed by
// CreateAccessRequest.
type AccessRequestStoreForCreate interface {
	Create(ctx context.Context, r domain.AccessRequest) (domain.AccessRequest, error)
}

// CreateAccessRequestDeps holds dependencies for CreateAccessRequest.
// Sender and SalesEmail are optional; when unset no notification goes out.
type CreateAccessRequestDeps struct {
	Store      AccessRequestStoreForCreate
	Sender     email.Sender
	SalesEmail string
	EmailFrom  string
}

// CreateAccessRequestResult carries the created record and the correlation
// identifier tying together the log lines for this submission attempt.
type CreateAccessRequestResult struct {
	RequestID string
	Request   domain.AccessRequest
}

// ExecuteCreateAccessRequest validates, normalizes and persists one access
// request. Validation failures return *domain.ValidationError with every
// missing field at once; store failures return *domain.PersistenceError.
// No step is retried; either the record is fully created or nothing is
// persisted. The sales notification is best-effort and never affects the
// outcome.
// PRE: raw is a decoded JSON object (may be nil or empty)
// POST: on success exactly one record exists with status pending
func ExecuteCreateAccessRequest(ctx context.Context, raw map[string]any, deps CreateAccessRequestDeps) (CreateAccessRequestResult, error) {
	requestID := uuid.New().String()
	logPayload(requestID, raw)

	if missing := domain.MissingFields(raw); len(missing) > 0 {
		slog.Warn("access_request_rejected", "request_id", requestID, "missing_fields", missing)
		return CreateAccessRequestResult{}, domain.NewValidationError(missing, raw)
	}

	rec := domain.FromRaw(raw)
	rec.ID = uuid.New().String()
	rec.CreatedAt = time.Now().UTC()

	created, err := deps.Store.Create(ctx, rec)
	if err != nil {
		slog.Error("access_request_persist_failed", "request_id", requestID, "error", err)
		return CreateAccessRequestResult{}, err
	}
	slog.Info("access_request_created", "request_id", requestID, "id", created.ID, "email", created.Email)

	notifySales(ctx, deps, requestID, created)

	return CreateAccessRequestResult{RequestID: requestID, Request: created}, nil
}

// logPayload logs the incoming submission with the free-text message
// truncated so log growth stays bounded.
func logPayload(requestID string, raw map[string]any) {
	attrs := []any{"request_id", requestID}
	for k, v := range raw {
		if k == "message" {
			if s, ok := v.(string); ok {
				v = truncate(s, messagePreviewLen)
			}
		}
		attrs = append(attrs, "field_"+k, v)
	}
	slog.Info("access_request_received", attrs...)
}

// truncate bounds s to max runes, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "…"
}

// notifySales emails the sales inbox about the new lead. Failures are
// logged and swallowed.
func notifySales(ctx context.Context, deps CreateAccessRequestDeps, requestID string, r domain.AccessRequest) {
	if deps.Sender == nil || deps.SalesEmail == "" {
		return
	}
	body := fmt.Sprintf(
		"<p>New access request.</p><ul><li>Name: %s %s</li><li>Email: %s</li><li>Phone: %s</li><li>Industry: %s</li><li>Specialties: %s</li></ul>",
		html.EscapeString(r.FirstName), html.EscapeString(r.LastName),
		html.EscapeString(r.Email), html.EscapeString(r.Phone),
		html.EscapeString(r.Industry),
		html.EscapeString(strings.Join(r.Specialties, ", ")))
	_, err := deps.Sender.Send(ctx, email.SendRequest{
		To:      []string{deps.SalesEmail},
		From:    deps.EmailFrom,
		Subject: fmt.Sprintf("New access request from %s %s", r.FirstName, r.LastName),
		HTML:    body,
	})
	if err != nil {
		slog.Warn("access_request_notify_failed", "request_id", requestID, "error", err)
	}
}
