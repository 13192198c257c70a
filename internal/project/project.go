package project

import (
	"encoding/json"
	"log"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	auth "Monolith/internal/auth"
	geometry "Monolith/internal/calc/geometry"
	repo "Monolith/internal/repo"
	units "Monolith/internal/units"
)

// Handler stores and serves a user's saved slab panels.
type Handler struct {
	Repo repo.Repository
}

type SaveRequest struct {
	Name  string          `json:"name"`
	Panel json.RawMessage `json:"panel"`
}

// Save validates the panel (it must survive geometry preparation) and
// stores its raw input JSON under the given name.
func (h *Handler) Save(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var req SaveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}
	if req.Name == "" || len(req.Panel) == 0 {
		http.Error(w, "Name and panel required", http.StatusBadRequest)
		return
	}

	var panel geometry.Input
	if err := json.Unmarshal(req.Panel, &panel); err != nil {
		http.Error(w, "Invalid panel payload", http.StatusBadRequest)
		return
	}
	if _, err := geometry.Prepare(panel, units.Default()); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	id, err := h.Repo.SaveProject(r.Context(), userID, req.Name, req.Panel)
	if err != nil {
		log.Printf("SaveProject Error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]int{"id": id})
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	projects, err := h.Repo.ListProjects(r.Context(), userID)
	if err != nil {
		log.Printf("ListProjects Error: %v", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projects)
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserID(r.Context())
	if !ok {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "Invalid project id", http.StatusBadRequest)
		return
	}

	p, err := h.Repo.GetProject(r.Context(), userID, id)
	if err != nil {
		http.Error(w, "Project not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(p)
}
