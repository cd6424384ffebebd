package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/infrastructure/config"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testConfig() *config.Config {
	return &config.Config{
		EnvType:       "test",
		ServerPort:    "8080",
		MongoDBName:   "hmz-solutions-test",
		JWTSecretKey:  "test-secret-key",
		AdminEmail:    "admin@hmzsolutions.com",
		AdminPassword: "Admin@123",
	}
}

// newTestContainer sahte servis enjeksiyonuna hazır bir konteyner kurar.
// mongo.Connect ilk işleme kadar ağa çıkmaz; sahte servisler hiçbir
// veritabanı işlemi yapmadığı için bağlantı hiç denenmez.
func newTestContainer(t *testing.T) *container.ServiceContainer {
	t.Helper()

	cfg := testConfig()
	client, err := mongo.Connect(context.Background(), options.Client().ApplyURI("mongodb://localhost:27017"))
	if err != nil {
		t.Fatalf("mongo istemcisi oluşturulamadı: %v", err)
	}
	t.Cleanup(func() { client.Disconnect(context.Background()) })

	middleware.InitAuthMiddleware(cfg)
	return container.NewServiceContainer(client.Database(cfg.MongoDBName), cfg)
}

// adminToken geçerli bir admin token üretir
func adminToken(t *testing.T) string {
	t.Helper()

	jwtService := services.NewJWTService(testConfig())
	token, err := jwtService.GenerateToken("admin@hmzsolutions.com", models.AdminRole)
	if err != nil {
		t.Fatalf("token üretilemedi: %v", err)
	}
	return token
}

func jsonBody(t *testing.T, body interface{}) io.Reader {
	t.Helper()

	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("istek gövdesi kodlanamadı: %v", err)
	}
	return bytes.NewReader(data)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("istek gövdesi kodlanamadı: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("yanıt gövdesi çözümlenemedi: %v (gövde: %s)", err, w.Body.String())
	}
	return body
}

// --- sahte servisler ---

type fakeBlogService struct {
	posts       []models.BlogPost
	total       int64
	getPostsErr error

	post      *models.BlogPost
	getErr    error
	gotID     string
	createErr error
	createdID string
	created   *models.BlogPost
	updateErr error
	updated   bson.M
	deleteErr error
}

func (f *fakeBlogService) GetPosts(ctx context.Context, filter services.BlogListFilter) ([]models.BlogPost, int64, error) {
	if f.getPostsErr != nil {
		return nil, 0, f.getPostsErr
	}
	return f.posts, f.total, nil
}

func (f *fakeBlogService) GetPostByID(ctx context.Context, id string) (*models.BlogPost, error) {
	f.gotID = id
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.post, nil
}

func (f *fakeBlogService) CreatePost(ctx context.Context, post *models.BlogPost) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	f.created = post
	return f.createdID, nil
}

func (f *fakeBlogService) UpdatePost(ctx context.Context, id string, set bson.M) (*models.BlogPost, error) {
	f.gotID = id
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	f.updated = set
	return f.post, nil
}

func (f *fakeBlogService) DeletePost(ctx context.Context, id string) error {
	f.gotID = id
	return f.deleteErr
}

type fakeContactService struct {
	createdMsg *models.ContactMessage
	createdID  string
	createErr  error

	messages []models.ContactMessage
	listErr  error

	statusID   string
	statusVal  string
	statusErr  error
	statusSeen bool
}

func (f *fakeContactService) CreateMessage(ctx context.Context, msg *models.ContactMessage) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	msg.Status = models.MessageStatusNew
	f.createdMsg = msg
	return f.createdID, nil
}

func (f *fakeContactService) GetRecentMessages(ctx context.Context) ([]models.ContactMessage, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.messages, nil
}

func (f *fakeContactService) UpdateMessageStatus(ctx context.Context, id, status string) error {
	f.statusSeen = true
	f.statusID = id
	f.statusVal = status
	return f.statusErr
}

type fakeContentService struct {
	content   *models.SiteContent
	getErr    error
	upserted  bool
	section   string
	data      bson.M
	updatedBy string
	upsertErr error
}

func (f *fakeContentService) GetContent(ctx context.Context, section string) (*models.SiteContent, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.content, nil
}

func (f *fakeContentService) UpsertContent(ctx context.Context, section string, data bson.M, updatedBy string) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = true
	f.section = section
	f.data = data
	f.updatedBy = updatedBy
	return nil
}

type fakeSettingsService struct {
	settings   *models.SiteSettings
	getErr     error
	replaced   *models.SiteSettings
	replaceErr error
}

func (f *fakeSettingsService) GetSettings(ctx context.Context) (*models.SiteSettings, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.settings, nil
}

func (f *fakeSettingsService) ReplaceSettings(ctx context.Context, settings *models.SiteSettings) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	settings.ID = models.SiteSettingsID
	f.replaced = settings
	return nil
}

type fakeUploadService struct {
	result    *services.UploadResult
	uploadErr error
	gotName   string
	gotType   string
}

func (f *fakeUploadService) Upload(ctx context.Context, filename, contentType string, body io.Reader, size int64) (*services.UploadResult, error) {
	f.gotName = filename
	f.gotType = contentType
	if f.uploadErr != nil {
		return nil, f.uploadErr
	}
	return f.result, nil
}
