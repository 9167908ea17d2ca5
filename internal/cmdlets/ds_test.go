package cmdlets

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestPostActionSendsJSONBody(t *testing.T) {
	var gotBody struct{ Enabled bool }
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	old := addrFlag
	addrFlag = srv.URL
	defer func() { addrFlag = old }()

	if err := postAction("/api/enabled", struct{ Enabled bool }{true}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !gotBody.Enabled {
		t.Fatal("expected the JSON body to carry Enabled=true")
	}
}

func TestPostActionPropagatesNon2xxAsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	old := addrFlag
	addrFlag = srv.URL
	defer func() { addrFlag = old }()

	if err := postAction("/api/estop", nil); err == nil {
		t.Fatal("expected a non-2xx response to be surfaced as an error")
	}
}
