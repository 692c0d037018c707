package controller_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/testutil"
)

func TestConnect(t *testing.T) {
	r := testutil.Router(t, testutil.DB(t), t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	testutil.Decode(t, w, &resp)
	if resp.Message != "Success Connect" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestSignup(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/signup", map[string]any{
		"name":   "jiyoon",
		"age":    "20s",
		"gender": "female",
		"email":  "jiyoon@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		UserID  uint   `json:"user_id"`
	}
	testutil.Decode(t, w, &resp)
	if resp.UserID == 0 {
		t.Error("expected a generated user_id")
	}
	if !strings.Contains(resp.Message, "jiyoon") {
		t.Errorf("expected message to name the user, got %q", resp.Message)
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 user row, got %d", count)
	}
}

func TestSignupMissingField(t *testing.T) {
	r := testutil.Router(t, testutil.DB(t), t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/signup", map[string]any{
		"name":   "jiyoon",
		"age":    "20s",
		"gender": "female",
		// email missing
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "Email") {
		t.Errorf("expected error details to name the missing field, got %s", w.Body.String())
	}
}

func TestSignupInvalidEnums(t *testing.T) {
	r := testutil.Router(t, testutil.DB(t), t.TempDir())

	cases := []struct {
		name string
		body map[string]any
	}{
		{"bad age", map[string]any{"name": "a", "age": "25", "gender": "male", "email": "a@b.com"}},
		{"bad gender", map[string]any{"name": "a", "age": "20s", "gender": "robot", "email": "a@b.com"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := testutil.DoJSON(t, r, http.MethodPost, "/signup", tc.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("expected 400, got %d: %s", w.Code, w.Body.String())
			}
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	body := map[string]any{
		"name":   "minsu",
		"age":    "30s",
		"gender": "male",
		"email":  "minsu@example.com",
	}

	w := testutil.DoJSON(t, r, http.MethodPost, "/signup", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("first signup: expected 201, got %d: %s", w.Code, w.Body.String())
	}

	w = testutil.DoJSON(t, r, http.MethodPost, "/signup", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("second signup: expected 400, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&model.User{}).Count(&count)
	if count != 1 {
		t.Errorf("expected exactly 1 user row after duplicate signup, got %d", count)
	}
}
