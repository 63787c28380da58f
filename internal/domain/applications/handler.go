package applications

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-market/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes keeps the legacy decision/delete paths intact alongside the
// per-pet pending listings.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Post("/adoption_application", submitHandler(svc, KindAdoption))
	r.Post("/foster_application", submitHandler(svc, KindFoster))

	r.Post("/accept-adoption-application/{adoption_id}", decideHandler(svc, KindAdoption, DecisionApprove, "adoption_id"))
	r.Post("/reject-adoption-application/{adoption_id}", decideHandler(svc, KindAdoption, DecisionReject, "adoption_id"))
	r.Post("/accept-foster-application/{foster_id}", decideHandler(svc, KindFoster, DecisionApprove, "foster_id"))
	r.Post("/reject-foster-application/{foster_id}", decideHandler(svc, KindFoster, DecisionReject, "foster_id"))

	r.Get("/pets/{petID}/adoption-applications/pending", listPendingHandler(svc, KindAdoption))
	r.Get("/pets/{petID}/foster-applications/pending", listPendingHandler(svc, KindFoster))

	r.Delete("/delete-application/{type_id}", deleteHandler(svc))
}

type submitRequest struct {
	PetID             string `json:"pet_id"`
	UserID            string `json:"user_id"`
	Address           string `json:"address"`
	HouseholdSize     int    `json:"household_size"`
	HasOtherPets      bool   `json:"has_other_pets"`
	AgreementAccepted bool   `json:"agreement_accepted"`
	Message           string `json:"message"`

	// Ignored on purpose: status is always pending server-side.
	Status string `json:"status"`
}

type applicationResponse struct {
	ID                string    `json:"id"`
	Kind              string    `json:"kind"`
	PetID             string    `json:"pet_id"`
	ApplicantUserID   string    `json:"applicant_user_id"`
	Status            string    `json:"status"`
	Address           string    `json:"address"`
	HouseholdSize     int       `json:"household_size"`
	HasOtherPets      bool      `json:"has_other_pets"`
	AgreementAccepted bool      `json:"agreement_accepted"`
	Message           string    `json:"message"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type decisionResponse struct {
	Message     string              `json:"message"`
	Application applicationResponse `json:"application"`
}

func submitHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		// Applicant identity: claims when present, body field otherwise.
		applicantID := req.UserID
		if claims, ok := middleware.GetClaims(r.Context()); ok && strings.TrimSpace(claims.UserID) != "" {
			applicantID = claims.UserID
		}

		a, err := svc.Submit(r.Context(), kind, SubmitInput{
			PetID:             req.PetID,
			ApplicantUserID:   applicantID,
			Address:           req.Address,
			HouseholdSize:     req.HouseholdSize,
			HasOtherPets:      req.HasOtherPets,
			AgreementAccepted: req.AgreementAccepted,
			Message:           req.Message,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toApplicationResponse(a))
	}
}

func decideHandler(svc *Service, kind Kind, decision Decision, param string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(chi.URLParam(r, param))
		if id == "" {
			http.Error(w, "missing application id", http.StatusBadRequest)
			return
		}

		a, err := svc.Decide(r.Context(), kind, id, decision)
		if err != nil {
			writeDecisionError(w, err)
			return
		}

		msg := "application rejected"
		if decision == DecisionApprove {
			msg = "application approved"
		}
		writeJSON(w, http.StatusOK, decisionResponse{
			Message:     msg,
			Application: toApplicationResponse(a),
		})
	}
}

func listPendingHandler(svc *Service, kind Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListPendingForPet(r.Context(), kind, chi.URLParam(r, "petID"))
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "missing pet id", http.StatusBadRequest)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		// Legacy contract: an empty pending list surfaces as 404. Callers
		// treat it as a normal outcome, not a failure.
		if len(items) == 0 {
			http.Error(w, "no pending applications", http.StatusNotFound)
			return
		}

		out := make([]applicationResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toApplicationResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func deleteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.Delete(r.Context(), chi.URLParam(r, "type_id"))
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, "id must be adoption_<id> or foster_<id>", http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "application not found", http.StatusNotFound)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, decisionResponse{
			Message:     "application deleted",
			Application: toApplicationResponse(a),
		})
	}
}

func writeDecisionError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "application not found", http.StatusNotFound)
	case errors.Is(err, ErrBadState), errors.Is(err, ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toApplicationResponse(a Application) applicationResponse {
	return applicationResponse{
		ID:                a.ID,
		Kind:              string(a.Kind),
		PetID:             a.PetID,
		ApplicantUserID:   a.ApplicantUserID,
		Status:            string(a.Status),
		Address:           a.Address,
		HouseholdSize:     a.HouseholdSize,
		HasOtherPets:      a.HasOtherPets,
		AgreementAccepted: a.AgreementAccepted,
		Message:           a.Message,
		CreatedAt:         a.CreatedAt,
		UpdatedAt:         a.UpdatedAt,
	}
}

// duplicated per handler package on purpose (see pets/handler.go)
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
