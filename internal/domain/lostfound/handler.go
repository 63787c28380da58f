package lostfound

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-market/internal/middleware"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/lost-and-found", func(lr chi.Router) {
		lr.Get("/", listOpenHandler(svc))
		lr.Post("/", createReportHandler(svc))
		lr.Get("/{reportID}", getReportHandler(svc))
		lr.Post("/{reportID}/reunite", reuniteHandler(svc))
	})
}

type createReportRequest struct {
	Kind         string `json:"kind"`
	PetName      string `json:"pet_name"`
	Species      string `json:"species"`
	Description  string `json:"description"`
	LastSeenCity string `json:"last_seen_city"`
	PhotoURL     string `json:"photo_url"`
}

type reportResponse struct {
	ID             string    `json:"id"`
	ReporterUserID string    `json:"reporter_user_id"`
	Kind           string    `json:"kind"`
	PetName        string    `json:"pet_name"`
	Species        string    `json:"species"`
	Description    string    `json:"description"`
	LastSeenCity   string    `json:"last_seen_city"`
	PhotoURL       string    `json:"photo_url"`
	Status         string    `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func createReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createReportRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		rep, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Kind:         req.Kind,
			PetName:      req.PetName,
			Species:      req.Species,
			Description:  req.Description,
			LastSeenCity: req.LastSeenCity,
			PhotoURL:     req.PhotoURL,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toReportResponse(rep))
	}
}

func listOpenHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListOpen(r.Context(), r.URL.Query().Get("kind"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "kind must be lost or found", http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]reportResponse, 0, len(items))
		for _, rep := range items {
			out = append(out, toReportResponse(rep))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func getReportHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep, err := svc.GetByID(r.Context(), chi.URLParam(r, "reportID"))
		if err != nil {
			http.Error(w, "report not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func reuniteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		rep, err := svc.MarkReunited(r.Context(), chi.URLParam(r, "reportID"), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrForbidden):
				http.Error(w, "forbidden", http.StatusForbidden)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "report not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toReportResponse(rep))
	}
}

func toReportResponse(rep Report) reportResponse {
	return reportResponse{
		ID:             rep.ID,
		ReporterUserID: rep.ReporterUserID,
		Kind:           string(rep.Kind),
		PetName:        rep.PetName,
		Species:        rep.Species,
		Description:    rep.Description,
		LastSeenCity:   rep.LastSeenCity,
		PhotoURL:       rep.PhotoURL,
		Status:         string(rep.Status),
		CreatedAt:      rep.CreatedAt,
		UpdatedAt:      rep.UpdatedAt,
	}
}

// duplicated per handler package on purpose (see pets/handler.go)
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
