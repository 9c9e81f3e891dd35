package subscribe

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"git.home.luguber.info/inful/sitegen/internal/metrics"
)

type response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Handler answers newsletter signup posts. Responses mirror the PHP
// endpoint exactly so the front-end script works against either.
type Handler struct {
	store    *Store
	recorder metrics.Recorder
}

// NewHandler creates a Handler. A nil recorder disables metrics.
func NewHandler(store *Store, recorder metrics.Recorder) *Handler {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Handler{store: store, recorder: recorder}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		h.reply(w, http.StatusMethodNotAllowed, response{OK: false, Error: "method_not_allowed"})
		return
	}

	email := strings.TrimSpace(r.PostFormValue("email"))
	if !validEmail(email) {
		h.reply(w, http.StatusBadRequest, response{OK: false, Error: "invalid_email"})
		return
	}

	if err := h.store.Append(email); err != nil {
		slog.Error("Storing signup failed", "error", err)
		h.reply(w, http.StatusInternalServerError, response{OK: false, Error: "storage_unavailable"})
		return
	}

	h.reply(w, http.StatusOK, response{OK: true})
}

func (h *Handler) reply(w http.ResponseWriter, status int, resp response) {
	if resp.Error != "" {
		h.recorder.IncSubscribeResult(resp.Error)
	} else {
		h.recorder.IncSubscribeResult("ok")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

func validEmail(email string) bool {
	if email == "" || strings.ContainsAny(email, " \t") {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil {
		return false
	}
	// Reject display-name forms; only the bare address is accepted.
	if addr.Address != email {
		return false
	}
	// mail.ParseAddress allows local domains; signups require a dot.
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}
