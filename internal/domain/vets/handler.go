package vets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"pet-adoption-market/internal/middleware"
	"pet-adoption-market/internal/ports/auth"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/vets", func(vr chi.Router) {
		vr.Post("/", registerVetHandler(svc))
		vr.Get("/pending-review", listPendingReviewHandler(svc))
		vr.Get("/{vetID}", getVetHandler(svc))

		vr.Post("/{vetID}/credentials", submitCredentialsHandler(svc))
		vr.Get("/{vetID}/qualifications", listQualificationsHandler(svc))
		vr.Get("/{vetID}/documents", listDocumentsHandler(svc))
		vr.Post("/{vetID}/qualifications/{qualificationID}/documents", addDocumentHandler(svc))
		vr.Post("/{vetID}/submit", submitForReviewHandler(svc))

		// Admin decisions
		vr.Post("/{vetID}/verify", decideVetHandler(svc, true))
		vr.Post("/{vetID}/decline", decideVetHandler(svc, false))
	})

	r.Get("/me/vet", getMyVetHandler(svc))
}

type registerVetRequest struct {
	ClinicName string `json:"clinic_name"`
	Bio        string `json:"bio"`
}

type vetResponse struct {
	ID         string     `json:"id"`
	UserID     string     `json:"user_id"`
	ClinicName string     `json:"clinic_name"`
	Bio        string     `json:"bio"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
	DecidedAt  *time.Time `json:"decided_at,omitempty"`
}

type credentialsRequest struct {
	Qualifications []struct {
		Title       string `json:"title"`
		Institution string `json:"institution"`
		Year        int    `json:"year"`
	} `json:"qualifications"`
	Specializations []string `json:"specializations"`
	Schedule        []struct {
		Weekday int    `json:"weekday"`
		Start   string `json:"start"`
		End     string `json:"end"`
	} `json:"schedule"`
}

type addDocumentRequest struct {
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
}

type documentUploadResponse struct {
	DocumentID string `json:"document_id"`
	URL        string `json:"url"`
	UploadURL  string `json:"upload_url"`
	ObjectKey  string `json:"object_key"`
	ExpiresIn  int    `json:"expires_in"`
}

func registerVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req registerVetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		v, err := svc.Register(r.Context(), claims.UserID, RegisterInput{
			ClinicName: req.ClinicName,
			Bio:        req.Bio,
		})
		if err != nil {
			if errors.Is(err, ErrExists) {
				http.Error(w, err.Error(), http.StatusConflict)
				return
			}
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		writeJSON(w, http.StatusCreated, toVetResponse(v))
	}
}

func getVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.GetByID(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			http.Error(w, "vet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func getMyVetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		v, err := svc.GetByUserID(r.Context(), claims.UserID)
		if err != nil {
			http.Error(w, "vet not found", http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func listPendingReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.Role != auth.RoleAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		items, err := svc.ListPendingReview(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]vetResponse, 0, len(items))
		for _, v := range items {
			out = append(out, toVetResponse(v))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func submitCredentialsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		in := CredentialsInput{Specializations: req.Specializations}
		for _, q := range req.Qualifications {
			in.Qualifications = append(in.Qualifications, QualificationInput{
				Title:       q.Title,
				Institution: q.Institution,
				Year:        q.Year,
			})
		}
		for _, sl := range req.Schedule {
			in.Schedule = append(in.Schedule, ScheduleSlotInput{
				Weekday: sl.Weekday,
				Start:   sl.Start,
				End:     sl.End,
			})
		}

		v, err := svc.SubmitCredentials(r.Context(), chi.URLParam(r, "vetID"), in)
		if err != nil {
			writeVetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func addDocumentHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req addDocumentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		du, err := svc.AddProofDocument(
			r.Context(),
			chi.URLParam(r, "vetID"),
			chi.URLParam(r, "qualificationID"),
			req.Filename,
			req.ContentType,
		)
		if err != nil {
			writeVetError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, documentUploadResponse{
			DocumentID: du.Document.ID,
			URL:        du.Document.URL,
			UploadURL:  du.Upload.URL,
			ObjectKey:  du.Upload.ObjectKey,
			ExpiresIn:  du.Upload.ExpiresIn,
		})
	}
}

func submitForReviewHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := svc.SubmitForReview(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			writeVetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

type qualificationResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Institution string `json:"institution"`
	Year        int    `json:"year"`
}

type documentResponse struct {
	ID              string    `json:"id"`
	QualificationID string    `json:"qualification_id"`
	URL             string    `json:"url"`
	ContentType     string    `json:"content_type"`
	CreatedAt       time.Time `json:"created_at"`
}

func listQualificationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListQualifications(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]qualificationResponse, 0, len(items))
		for _, q := range items {
			out = append(out, qualificationResponse{
				ID:          q.ID,
				Title:       q.Title,
				Institution: q.Institution,
				Year:        q.Year,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listDocumentsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListDocuments(r.Context(), chi.URLParam(r, "vetID"))
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]documentResponse, 0, len(items))
		for _, d := range items {
			out = append(out, documentResponse{
				ID:              d.ID,
				QualificationID: d.QualificationID,
				URL:             d.URL,
				ContentType:     d.ContentType,
				CreatedAt:       d.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func decideVetHandler(svc *Service, verify bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || claims.Role != auth.RoleAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		var (
			v   Vet
			err error
		)
		if verify {
			v, err = svc.Verify(r.Context(), chi.URLParam(r, "vetID"))
		} else {
			v, err = svc.Decline(r.Context(), chi.URLParam(r, "vetID"))
		}
		if err != nil {
			writeVetError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toVetResponse(v))
	}
}

func writeVetError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case errors.Is(err, ErrBadState):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toVetResponse(v Vet) vetResponse {
	return vetResponse{
		ID:         v.ID,
		UserID:     v.UserID,
		ClinicName: v.ClinicName,
		Bio:        v.Bio,
		Status:     string(v.Status),
		CreatedAt:  v.CreatedAt,
		UpdatedAt:  v.UpdatedAt,
		DecidedAt:  v.DecidedAt,
	}
}

// duplicated per handler package on purpose (see pets/handler.go)
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
