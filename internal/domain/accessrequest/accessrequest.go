package accessrequest

import (
	"fmt"
	"strings"
	"time"
)

// NotApplicable is the fallback stored for every optional field the
// submitter left out. Persisted records are always fully populated.
const NotApplicable = "Not applicable"

// Access request statuses
const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusClosed    = "closed"
)

// RequiredFields lists the submission fields that must be present and
// non-falsy. The lead modal only collects name, email, phone and industry,
// so only name and email are hard requirements.
var RequiredFields = []string{"name", "email"}

// AccessRequest is a durable record of one lead-capture submission.
// Records are created exactly once and never updated from the intake
// pipeline; resubmission creates a new record.
type AccessRequest struct {
	ID            string    `json:"id"`
	FirstName     string    `json:"firstName"`
	LastName      string    `json:"lastName"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Company       string    `json:"company"`
	JobTitle      string    `json:"jobTitle"`
	Industry      string    `json:"industry"`
	CompanySize   string    `json:"companySize"`
	CurrentSystem string    `json:"currentSystem"`
	Budget        string    `json:"budget"`
	Timeline      string    `json:"timeline"`
	Specialties   []string  `json:"specialties"`
	Message       string    `json:"message"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// IsPending reports whether the request has not been actioned yet.
func (r *AccessRequest) IsPending() bool {
	return r.Status == StatusPending
}

// MissingFields returns the required field names that are absent or falsy
// in the raw submission, in RequiredFields order.
// PRE: raw is a decoded JSON object (may be nil)
// POST: Returns the exact set difference between required and present-truthy fields
func MissingFields(raw map[string]any) []string {
	missing := []string{}
	for _, f := range RequiredFields {
		if !truthy(raw[f]) {
			missing = append(missing, f)
		}
	}
	return missing
}

// truthy mirrors JSON falsiness: nil, "", false, 0 and empty
// arrays/objects all count as absent.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case string:
		return x != ""
	case bool:
		return x
	case float64:
		return x != 0
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}

// NormalizeSpecialties coerces the polymorphic specialties input into a
// slice of trimmed, non-empty strings. The normalization is total: a
// sequence, a comma-separated string, or anything else (including absent)
// all produce a valid result, never an error.
// PRE: none
// POST: every element of the result is non-empty and has no surrounding whitespace
func NormalizeSpecialties(v any) []string {
	switch x := v.(type) {
	case []any:
		out := []string{}
		for _, item := range x {
			s := strings.TrimSpace(stringify(item))
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		out := []string{}
		for _, item := range x {
			s := strings.TrimSpace(item)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		out := []string{}
		for _, part := range strings.Split(x, ",") {
			s := strings.TrimSpace(part)
			if s != "" {
				out = append(out, s)
			}
		}
		return out
	default:
		return []string{}
	}
}

// stringify renders a decoded JSON value as a flat string.
// Numbers drop the ".0" float artifact so [42] normalizes to "42".
func stringify(v any) string {
	switch x := v.(type) {
	case string:
		return x
	case float64:
		if x == float64(int64(x)) {
			return fmt.Sprintf("%d", int64(x))
		}
		return fmt.Sprintf("%g", x)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", x)
	}
}

// SplitName divides a free-form name into a first token and the joined
// remainder. A single-token name yields an empty last name; the caller
// substitutes the sentinel.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}

// FromRaw maps a validated raw submission onto the canonical record shape.
// Every optional field that is absent takes the NotApplicable sentinel, so
// persisted records are always fully populated.
// PRE: MissingFields(raw) is empty
// POST: no string field of the result is empty; Status is pending
func FromRaw(raw map[string]any) AccessRequest {
	first, last := SplitName(stringOr(raw, "", "name"))
	if first == "" {
		first = NotApplicable
	}
	if last == "" {
		last = NotApplicable
	}
	return AccessRequest{
		FirstName:     first,
		LastName:      last,
		Email:         stringOr(raw, NotApplicable, "email"),
		Phone:         stringOr(raw, NotApplicable, "phone"),
		Company:       stringOr(raw, NotApplicable, "company"),
		JobTitle:      stringOr(raw, NotApplicable, "jobTitle", "role"),
		Industry:      stringOr(raw, NotApplicable, "industry"),
		CompanySize:   stringOr(raw, NotApplicable, "companySize", "clinicSize"),
		CurrentSystem: stringOr(raw, NotApplicable, "currentSystem"),
		Budget:        stringOr(raw, NotApplicable, "budget"),
		Timeline:      stringOr(raw, NotApplicable, "timeline"),
		Specialties:   NormalizeSpecialties(raw["specialties"]),
		Message:       stringOr(raw, NotApplicable, "message"),
		Status:        StatusPending,
	}
}

// stringOr returns the trimmed string value of the first present key, or
// fallback when every key is absent, non-string, or blank. Older clients
// submitted jobTitle as "role" and companySize as "clinicSize"; both
// spellings map onto the canonical columns.
func stringOr(raw map[string]any, fallback string, keys ...string) string {
	for _, key := range keys {
		if v, ok := raw[key]; ok {
			if s := strings.TrimSpace(stringify(v)); s != "" {
				return s
			}
		}
	}
	return fallback
}

// JSONType names the runtime type of a decoded JSON value, for the
// validation error payload.
func JSONType(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	case []any:
		return "array"
	case map[string]any:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}
