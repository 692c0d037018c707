package controller_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/testutil"
)

func TestCreateAnswer(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/answers", map[string]any{
		"user_id":   1,
		"choice_id": 2,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		AnswerID uint `json:"answer_id"`
	}
	testutil.Decode(t, w, &resp)
	if resp.AnswerID == 0 {
		t.Error("expected a generated answer_id")
	}
}

func TestCreateAnswerMissingField(t *testing.T) {
	r := testutil.Router(t, testutil.DB(t), t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/answers", map[string]any{"user_id": 1})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitBatchSameUser(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/submit", []map[string]any{
		{"user_id": 1, "choice_id": 2},
		{"user_id": 1, "choice_id": 4},
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
	}
	testutil.Decode(t, w, &resp)
	if !strings.Contains(resp.Message, "1") {
		t.Errorf("expected message to contain the shared user_id, got %q", resp.Message)
	}

	var answers []model.Answer
	if err := db.Order("id ASC").Find(&answers).Error; err != nil {
		t.Fatalf("failed to load answers: %v", err)
	}
	if len(answers) != 2 {
		t.Fatalf("expected 2 answer rows, got %d", len(answers))
	}
	for _, a := range answers {
		if a.UserID != 1 {
			t.Errorf("expected user_id 1 on every row, got %d", a.UserID)
		}
	}
}

func TestSubmitBatchMismatchedUser(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/submit", []map[string]any{
		{"user_id": 1, "choice_id": 2},
		{"user_id": 2, "choice_id": 4},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	if !strings.Contains(w.Body.String(), "#2") {
		t.Errorf("expected the offending item index in the message, got %s", w.Body.String())
	}

	// all-or-nothing: the valid first item must not have been persisted
	var count int64
	db.Model(&model.Answer{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 answer rows after rejected batch, got %d", count)
	}
}

func TestSubmitBatchMissingField(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/submit", []map[string]any{
		{"user_id": 1, "choice_id": 2},
		{"user_id": 1},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
	body := w.Body.String()
	if !strings.Contains(body, "#2") || !strings.Contains(body, "choice_id") {
		t.Errorf("expected item index and field name in the message, got %s", body)
	}

	var count int64
	db.Model(&model.Answer{}).Count(&count)
	if count != 0 {
		t.Errorf("expected 0 answer rows, got %d", count)
	}
}

func TestSubmitBatchRejectsNonList(t *testing.T) {
	r := testutil.Router(t, testutil.DB(t), t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/submit", map[string]any{"user_id": 1, "choice_id": 2})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for a non-list body, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSubmitBatchRejectsEmptyList(t *testing.T) {
	r := testutil.Router(t, testutil.DB(t), t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodPost, "/submit", []map[string]any{})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for an empty list, got %d: %s", w.Code, w.Body.String())
	}
}

func TestListAnswersOrderedByID(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	answers := []model.Answer{
		{UserID: 2, ChoiceID: 5},
		{UserID: 1, ChoiceID: 3},
		{UserID: 1, ChoiceID: 4},
	}
	if err := db.Create(&answers).Error; err != nil {
		t.Fatalf("failed to seed answers: %v", err)
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/answers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp []struct {
		ID       uint `json:"id"`
		UserID   uint `json:"user_id"`
		ChoiceID uint `json:"choice_id"`
	}
	testutil.Decode(t, w, &resp)
	if len(resp) != 3 {
		t.Fatalf("expected 3 answers, got %d", len(resp))
	}
	for i := 1; i < len(resp); i++ {
		if resp[i].ID < resp[i-1].ID {
			t.Errorf("answers not ordered by id: %+v", resp)
		}
	}
}

func TestListAnswersByUser(t *testing.T) {
	db := testutil.DB(t)
	r := testutil.Router(t, db, t.TempDir())

	answers := []model.Answer{
		{UserID: 1, ChoiceID: 3},
		{UserID: 2, ChoiceID: 5},
		{UserID: 1, ChoiceID: 4},
	}
	if err := db.Create(&answers).Error; err != nil {
		t.Fatalf("failed to seed answers: %v", err)
	}

	w := testutil.DoJSON(t, r, http.MethodGet, "/answers/user/1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp []struct {
		UserID uint `json:"user_id"`
	}
	testutil.Decode(t, w, &resp)
	if len(resp) != 2 {
		t.Fatalf("expected 2 answers for user 1, got %d", len(resp))
	}
	for _, a := range resp {
		if a.UserID != 1 {
			t.Errorf("expected only user 1's answers, got %+v", resp)
		}
	}
}

func TestListAnswersByUserEmptyIs404(t *testing.T) {
	r := testutil.Router(t, testutil.DB(t), t.TempDir())

	w := testutil.DoJSON(t, r, http.MethodGet, "/answers/user/77", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for a user with no answers, got %d: %s", w.Code, w.Body.String())
	}
}
