package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"pet-adoption-market/internal/router"
)

func TestHTTP_EndToEnd_AdoptionDecision(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	ownerID := "owner-1"

	// 1) Owner registers a pet for adoption
	petID := createPet(t, ts.URL, ownerID, map[string]any{
		"name":         "Milo",
		"species":      "dog",
		"breed":        "mixed",
		"sex":          "male",
		"listing_type": "adoption",
	})

	// 2) New listing is hidden from the public catalog
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?type=adoption", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing catalog, got %d body=%s", st, string(body))
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("expected empty catalog before admin listing, got %s", string(body))
		}
	}

	// 3) Admin makes it visible; a member cannot
	{
		st, _ := doReq(t, ts.URL, "POST", "/pets/"+petID+"/listing", "member-1", "member", map[string]any{"listed": true})
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 listing by member, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/pets/"+petID+"/listing", "admin-1", "admin", map[string]any{"listed": true})
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing by admin, got %d body=%s", st, string(body))
		}
	}

	// 4) No pending applications yet => 404 on the legacy listing path
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/adoption-applications/pending", "", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 with no pending applications, got %d", st)
		}
	}

	// 5) Two applicants apply; a submitted status is ignored
	app1 := submitApplication(t, ts.URL, "/adoption_application", "applicant-1", map[string]any{
		"pet_id":             petID,
		"address":            "123 Main St",
		"household_size":     2,
		"agreement_accepted": true,
		"status":             "approved", // server must force pending
	})
	app2 := submitApplication(t, ts.URL, "/adoption_application", "applicant-2", map[string]any{
		"pet_id":             petID,
		"agreement_accepted": true,
	})

	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID+"/adoption-applications/pending", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing pending, got %d body=%s", st, string(body))
		}
		var items []struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 2 {
			t.Fatalf("expected 2 pending applications, got %s", string(body))
		}
		for _, it := range items {
			if it.Status != "pending" {
				t.Fatalf("expected pending status, got %s", it.Status)
			}
		}
	}

	// 6) Approving one rejects the sibling and places the pet
	{
		st, body := doReq(t, ts.URL, "POST", "/accept-adoption-application/"+app1, "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 accept, got %d body=%s", st, string(body))
		}
		var resp struct {
			Application struct {
				Status string `json:"status"`
			} `json:"application"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Application.Status != "approved" {
			t.Fatalf("expected approved, got %s", resp.Application.Status)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "GET", "/pets/"+petID+"/adoption-applications/pending", "", "", nil)
		if st != http.StatusNotFound {
			t.Fatalf("expected 404 after decision cleared pending, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/pets/"+petID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get pet, got %d", st)
		}
		var resp struct {
			PlacementStatus string `json:"placement_status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.PlacementStatus != "adopted" {
			t.Fatalf("expected adopted, got %s", resp.PlacementStatus)
		}
	}

	// 7) Deciding the already rejected sibling => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/accept-adoption-application/"+app2, "admin-1", "admin", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 accepting decided application, got %d", st)
		}
	}

	// 8) The placed pet leaves the catalog even while listed
	{
		st, body := doReq(t, ts.URL, "GET", "/pets?type=adoption", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 listing catalog, got %d", st)
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("expected placed pet out of catalog, got %s", string(body))
		}
	}

	// 9) Legacy composite-id delete
	{
		st, body := doReq(t, ts.URL, "DELETE", "/delete-application/adoption_"+app2, "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 delete, got %d body=%s", st, string(body))
		}
	}
	{
		st, _ := doReq(t, ts.URL, "DELETE", "/delete-application/rehome_"+app2, "admin-1", "admin", nil)
		if st != http.StatusBadRequest {
			t.Fatalf("expected 400 for unknown kind prefix, got %d", st)
		}
	}
}

func TestHTTP_EndToEnd_FosterDecision(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	petID := createPet(t, ts.URL, "owner-1", map[string]any{
		"name":         "Luna",
		"species":      "cat",
		"listing_type": "foster",
	})

	appID := submitApplication(t, ts.URL, "/foster_application", "applicant-1", map[string]any{
		"pet_id": petID,
	})

	st, body := doReq(t, ts.URL, "POST", "/accept-foster-application/"+appID, "admin-1", "admin", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 accept foster, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/pets/"+petID, "", "", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get pet, got %d", st)
	}
	var resp struct {
		PlacementStatus string `json:"placement_status"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.PlacementStatus != "fostered" {
		t.Fatalf("expected fostered, got %s", resp.PlacementStatus)
	}
}

func TestHTTP_EndToEnd_VetVerification(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	// Register an account so the role promotion is observable.
	var userID string
	{
		st, body := doReq(t, ts.URL, "POST", "/users", "", "", map[string]any{
			"name":  "Dra. Flores",
			"email": "flores@example.com",
			"city":  "Lima",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register user, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID   string `json:"id"`
			Role string `json:"role"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Role != "member" {
			t.Fatalf("expected member role on signup, got %s", resp.Role)
		}
		userID = resp.ID
	}

	// Draft profile
	var vetID string
	{
		st, body := doReq(t, ts.URL, "POST", "/vets", userID, "", map[string]any{
			"clinic_name": "City Vet",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 register vet, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID     string `json:"id"`
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "draft" {
			t.Fatalf("expected draft, got %s", resp.Status)
		}
		vetID = resp.ID
	}

	// Submitting for review out of order => 409
	{
		st, _ := doReq(t, ts.URL, "POST", "/vets/"+vetID+"/submit", userID, "", nil)
		if st != http.StatusConflict {
			t.Fatalf("expected 409 submit before documents, got %d", st)
		}
	}

	// Credentials
	{
		st, body := doReq(t, ts.URL, "POST", "/vets/"+vetID+"/credentials", userID, "", map[string]any{
			"qualifications": []map[string]any{
				{"title": "DVM", "institution": "UNMSM", "year": 2015},
			},
			"specializations": []string{"surgery"},
			"schedule": []map[string]any{
				{"weekday": 1, "start": "09:00", "end": "13:00"},
			},
		})
		if st != http.StatusOK {
			t.Fatalf("expected 200 credentials, got %d body=%s", st, string(body))
		}
	}

	// Proof document with presigned upload
	var qualificationID string
	{
		st, body := doReq(t, ts.URL, "GET", "/vets/"+vetID+"/qualifications", userID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list qualifications, got %d body=%s", st, string(body))
		}
		var items []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 {
			t.Fatalf("expected 1 qualification, got %s", string(body))
		}
		qualificationID = items[0].ID
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/vets/"+vetID+"/qualifications/"+qualificationID+"/documents", userID, "", map[string]any{
			"filename":     "diploma.png",
			"content_type": "image/png",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 add document, got %d body=%s", st, string(body))
		}
		var resp struct {
			UploadURL string `json:"upload_url"`
			ObjectKey string `json:"object_key"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.UploadURL == "" || resp.ObjectKey == "" {
			t.Fatalf("expected presigned upload in response, got %s", string(body))
		}
	}

	// Hand to review; only an admin may decide
	{
		st, _ := doReq(t, ts.URL, "POST", "/vets/"+vetID+"/submit", userID, "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 submit for review, got %d", st)
		}
	}
	{
		st, _ := doReq(t, ts.URL, "POST", "/vets/"+vetID+"/verify", userID, "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 verify by non-admin, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "GET", "/vets/pending-review", "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 pending review, got %d", st)
		}
		var items []struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &items)
		if len(items) != 1 || items[0].ID != vetID {
			t.Fatalf("expected the vet in review queue, got %s", string(body))
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/vets/"+vetID+"/verify", "admin-1", "admin", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 verify, got %d body=%s", st, string(body))
		}
		var resp struct {
			Status string `json:"status"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Status != "verified" {
			t.Fatalf("expected verified, got %s", resp.Status)
		}
	}

	// Verification promoted the account to the vet role
	{
		st, body := doReq(t, ts.URL, "GET", "/users/"+userID, "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 get user, got %d", st)
		}
		var resp struct {
			Role string `json:"role"`
		}
		_ = json.Unmarshal(body, &resp)
		if resp.Role != "vet" {
			t.Fatalf("expected vet role after verification, got %s", resp.Role)
		}
	}
}

func TestHTTP_LostAndFound_ReuniteIsReporterOnly(t *testing.T) {
	ts := httptest.NewServer(router.NewRouter(router.Options{AuthVerifier: nil}))
	defer ts.Close()

	var reportID string
	{
		st, body := doReq(t, ts.URL, "POST", "/lost-and-found", "reporter-1", "", map[string]any{
			"kind":           "lost",
			"pet_name":       "Milo",
			"species":        "dog",
			"last_seen_city": "Lima",
		})
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create report, got %d body=%s", st, string(body))
		}
		var resp struct {
			ID string `json:"id"`
		}
		_ = json.Unmarshal(body, &resp)
		reportID = resp.ID
	}

	{
		st, _ := doReq(t, ts.URL, "POST", "/lost-and-found/"+reportID+"/reunite", "someone-else", "", nil)
		if st != http.StatusForbidden {
			t.Fatalf("expected 403 reunite by stranger, got %d", st)
		}
	}
	{
		st, body := doReq(t, ts.URL, "POST", "/lost-and-found/"+reportID+"/reunite", "reporter-1", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 reunite, got %d body=%s", st, string(body))
		}
	}

	// Closed reports drop off the board.
	{
		st, body := doReq(t, ts.URL, "GET", "/lost-and-found", "", "", nil)
		if st != http.StatusOK {
			t.Fatalf("expected 200 list, got %d", st)
		}
		var items []map[string]any
		_ = json.Unmarshal(body, &items)
		if len(items) != 0 {
			t.Fatalf("expected empty board, got %s", string(body))
		}
	}
}

func createPet(t *testing.T, baseURL, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/pets", userID, "", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create pet, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID string `json:"id"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("create pet: missing id body=%s", string(body))
	}
	return resp.ID
}

func submitApplication(t *testing.T, baseURL, path, userID string, payload map[string]any) string {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", path, userID, "", payload)
	if st != http.StatusCreated {
		t.Fatalf("expected 201 submit application, got %d body=%s", st, string(body))
	}

	var resp struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.ID == "" {
		t.Fatalf("submit application: missing id body=%s", string(body))
	}
	if resp.Status != "pending" {
		t.Fatalf("submit application: expected pending, got %s", resp.Status)
	}
	return resp.ID
}

func doReq(t *testing.T, baseURL, method, path, debugUserID, debugRole string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if debugUserID != "" {
		req.Header.Set("X-Debug-User-ID", debugUserID)
	}
	if debugRole != "" {
		req.Header.Set("X-Debug-Role", debugRole)
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
