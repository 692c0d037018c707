// Package testutil wires an in-memory database and a fully routed engine
// so handler tests exercise the controller, service, and repository layers
// together.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/Ocelots/config"
	"github.com/lshigami/Ocelots/internal/controller"
	"github.com/lshigami/Ocelots/internal/model"
	"github.com/lshigami/Ocelots/internal/repository"
	"github.com/lshigami/Ocelots/internal/service"
	"github.com/lshigami/Ocelots/internal/storage"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

// BaseURL is the public base URL the test config serves uploads under.
const BaseURL = "http://localhost:8080"

// DB opens a fresh in-memory sqlite database with the full schema.
// TranslateError matches the production gorm config so unique violations
// surface as gorm.ErrDuplicatedKey.
func DB(tb testing.TB) *gorm.DB {
	tb.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	if err != nil {
		tb.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&model.User{},
		&model.Image{},
		&model.Question{},
		&model.Choice{},
		&model.Answer{},
	)
	if err != nil {
		tb.Fatalf("failed to migrate test database: %v", err)
	}
	return db
}

// Router builds the routed gin engine over db, storing uploads in
// uploadDir (use tb.TempDir()). The route table mirrors cmd/main.go.
func Router(tb testing.TB, db *gorm.DB, uploadDir string) *gin.Engine {
	tb.Helper()

	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.BaseURL = BaseURL
	cfg.Upload.Dir = uploadDir

	store, err := storage.NewLocalStore(uploadDir)
	if err != nil {
		tb.Fatalf("failed to create file store: %v", err)
	}

	userCtrl := controller.NewUserController(service.NewUserService(repository.NewUserRepository(db)))
	questionCtrl := controller.NewQuestionController(service.NewQuestionService(repository.NewQuestionRepository(db)))
	choiceCtrl := controller.NewChoiceController(service.NewChoiceService(repository.NewChoiceRepository(db)))
	answerCtrl := controller.NewAnswerController(service.NewAnswerService(repository.NewAnswerRepository(db), db))
	imageCtrl := controller.NewImageController(service.NewImageService(repository.NewImageRepository(db), store, cfg))

	r := gin.New()
	r.Static("/static/uploads", uploadDir)

	r.GET("/", userCtrl.Connect)
	r.POST("/signup", userCtrl.Signup)

	r.GET("/questions/count", questionCtrl.CountQuestions)
	r.GET("/questions/:sqe", questionCtrl.GetQuestion)
	r.POST("/questions", questionCtrl.CreateQuestion)
	r.POST("/question", questionCtrl.CreateQuestion)

	r.GET("/choices/question/:question_id", choiceCtrl.ListByQuestion)
	r.POST("/choices", choiceCtrl.CreateChoice)
	r.POST("/choices/choice", choiceCtrl.CreateChoice)

	r.POST("/answers", answerCtrl.CreateAnswer)
	r.POST("/submit", answerCtrl.SubmitAnswers)
	r.GET("/answers", answerCtrl.ListAnswers)
	r.GET("/answers/user/:user_id", answerCtrl.ListAnswersByUser)

	r.POST("/images/upload", imageCtrl.UploadImage)
	r.POST("/images", imageCtrl.CreateImage)
	r.GET("/images", imageCtrl.ListImages)
	r.GET("/images/type/:type", imageCtrl.ListImagesByType)
	r.GET("/images/main", imageCtrl.GetMainImage)
	r.DELETE("/images/:id", imageCtrl.DeleteImage)

	return r
}

// DoJSON performs an HTTP request against r with an optional JSON body and
// returns the recorded response.
func DoJSON(tb testing.TB, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	tb.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			tb.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// Decode unmarshals the recorded JSON response body into out.
func Decode(tb testing.TB, w *httptest.ResponseRecorder, out any) {
	tb.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		tb.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}
