package dashboard

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

const defaultLimit = 500

type Handler struct {
	log      *slog.Logger
	provider Provider
	cache    *Cache
}

func NewHandler(log *slog.Logger, provider Provider, cache *Cache) *Handler {
	return &Handler{log: log, provider: provider, cache: cache}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/api/source", h.source)
	r.Get("/api/views/{view}", h.view)
	return r
}

// source reports whether the dashboard is serving from the warehouse or has
// degraded to the local files.
func (h *Handler) source(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"mode": h.provider.Mode()})
}

func (h *Handler) view(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "view")
	limit := defaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			http.Error(w, "invalid limit", http.StatusBadRequest)
			return
		}
		limit = n
	}

	key := h.cache.Key(h.provider.Mode(), name, limit)
	if body, ok := h.cache.Get(r.Context(), key); ok {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
		return
	}

	rows, err := h.provider.View(r.Context(), name, limit)
	if err != nil {
		if errors.Is(err, errUnknownView) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		h.log.Error("view query failed", "view", name, "err", err)
		http.Error(w, "view query failed", http.StatusInternalServerError)
		return
	}
	if rows == nil {
		rows = []map[string]any{}
	}

	body, err := json.Marshal(map[string]any{
		"view": name,
		"mode": h.provider.Mode(),
		"rows": rows,
	})
	if err != nil {
		http.Error(w, "encoding failed", http.StatusInternalServerError)
		return
	}
	h.cache.Set(r.Context(), key, body)
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}
