package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"zuzz/internal/application/orchestrators"
	domain "zuzz/internal/domain/accessrequest"
)

// handleAccessRequestAPI handles POST /api/access-request.
// The body is an arbitrary JSON object; validation reports all missing
// required fields at once. 201 returns the persisted record wrapped with a
// correlation identifier; 400/500 carry the error taxonomy payloads.
func handleAccessRequestAPI(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":   "Invalid JSON body",
			"message": err.Error(),
		})
		return
	}

	res, err := createAccessRequest(w, r, raw)
	if err != nil {
		return // response already written
	}

	writeJSON(w, http.StatusCreated, map[string]any{
		"requestId": res.RequestID,
		"request":   res.Request,
	})
}

// createAccessRequest runs the shared intake pipeline and writes the error
// response when it fails. Callers only proceed on a nil error.
func createAccessRequest(w http.ResponseWriter, r *http.Request, raw map[string]any) (orchestrators.CreateAccessRequestResult, error) {
	deps := orchestrators.CreateAccessRequestDeps{
		Store:      stores.AccessRequestStore,
		Sender:     emailSender,
		SalesEmail: siteConfig.SalesEmail,
		EmailFrom:  siteConfig.EmailFrom,
	}
	res, err := orchestrators.ExecuteCreateAccessRequest(r.Context(), raw, deps)
	if err == nil {
		return res, nil
	}

	var verr *domain.ValidationError
	var perr *domain.PersistenceError
	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"error":         "Missing required fields",
			"missingFields": verr.MissingFields,
			"receivedKeys":  verr.ReceivedKeys,
			"fieldTypes":    verr.FieldTypes,
		})
	case errors.As(err, &perr):
		body := map[string]any{
			"error":   "Failed to create access request",
			"message": perr.Error(),
		}
		if perr.Code != "" {
			body["code"] = perr.Code
		}
		writeJSON(w, http.StatusInternalServerError, body)
	default:
		writeJSON(w, http.StatusInternalServerError, map[string]any{
			"error":   "Failed to create access request",
			"message": err.Error(),
		})
	}
	return orchestrators.CreateAccessRequestResult{}, err
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// handleRequestFormPage renders the no-JS lead form.
func handleRequestFormPage(w http.ResponseWriter, r *http.Request) {
	renderTemplate(w, r, "request_form.html", langFromRequest(r), nil)
}

// handleRequestFormSubmit feeds a CSRF-protected form POST through the
// same intake pipeline as the JSON API, then sends the visitor to the
// confirmation page. Failures re-render the form with the entered values
// intact so nothing has to be retyped.
func handleRequestFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}

	raw := map[string]any{}
	for _, k := range []string{"name", "email", "phone", "message"} {
		if v := r.PostFormValue(k); v != "" {
			raw[k] = v
		}
	}
	// The form's single industry select doubles as a one-element
	// specialties sequence, mirroring the lead modal.
	if v := r.PostFormValue("industry"); v != "" {
		raw["industry"] = v
		raw["specialties"] = []any{v}
	}

	deps := orchestrators.CreateAccessRequestDeps{
		Store:      stores.AccessRequestStore,
		Sender:     emailSender,
		SalesEmail: siteConfig.SalesEmail,
		EmailFrom:  siteConfig.EmailFrom,
	}
	_, err := orchestrators.ExecuteCreateAccessRequest(r.Context(), raw, deps)
	if err != nil {
		lang := langFromRequest(r)
		var verr *domain.ValidationError
		values := map[string]string{}
		for _, k := range []string{"name", "email", "phone", "industry", "message"} {
			values[k] = r.PostFormValue(k)
		}
		data := map[string]any{
			"Error":  true,
			"Values": values,
		}
		status := http.StatusInternalServerError
		if errors.As(err, &verr) {
			data["MissingFields"] = verr.MissingFields
			status = http.StatusBadRequest
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(status)
		renderTemplate(w, r, "request_form.html", lang, data)
		return
	}

	http.Redirect(w, r, "/thanks", http.StatusSeeOther)
}
