package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
)

func newBlogRouter(t *testing.T, fake *fakeBlogService) (*gin.Engine, *container.ServiceContainer) {
	t.Helper()

	c := newTestContainer(t)
	c.SetService("blog", fake)

	r := gin.New()
	r.GET("/api/blog", HandleBlogFunc(c, "getPosts"))
	r.GET("/api/blog/:id", HandleBlogFunc(c, "getPost"))
	r.POST("/api/blog", middleware.AuthenticateAdmin(), HandleBlogFunc(c, "createPost"))
	r.PUT("/api/blog/:id", middleware.AuthenticateAdmin(), HandleBlogFunc(c, "updatePost"))
	r.DELETE("/api/blog/:id", middleware.AuthenticateAdmin(), HandleBlogFunc(c, "deletePost"))
	return r, c
}

func TestGetPostsHasMore(t *testing.T) {
	fake := &fakeBlogService{
		posts: []models.BlogPost{{Title: "a"}, {Title: "b"}},
		total: 10,
	}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodGet, "/api/blog?limit=2&skip=0", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("durum kodu 200 beklenirken %d alındı", w.Code)
	}

	body := decodeBody(t, w)
	if body["hasMore"] != true {
		t.Errorf("skip+limit < total iken hasMore true olmalı: %v", body)
	}
	if body["total"] != float64(10) {
		t.Errorf("beklenmeyen toplam: %v", body["total"])
	}

	// Son sayfa: skip+limit >= total
	fake.total = 2
	w = doJSON(t, r, http.MethodGet, "/api/blog?limit=2&skip=0", "", nil)
	body = decodeBody(t, w)
	if body["hasMore"] != false {
		t.Errorf("son sayfada hasMore false olmalı: %v", body)
	}
}

func TestGetPostIncrementsViews(t *testing.T) {
	id := primitive.NewObjectID()
	fake := &fakeBlogService{
		post: &models.BlogPost{ID: id, Title: "Merhaba", Slug: "merhaba", Views: 6},
	}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodGet, "/api/blog/"+id.Hex(), "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("durum kodu 200 beklenirken %d alındı: %s", w.Code, w.Body.String())
	}
	if fake.gotID != id.Hex() {
		t.Errorf("servise beklenmeyen kimlik gitti: %s", fake.gotID)
	}

	body := decodeBody(t, w)
	post, ok := body["post"].(map[string]interface{})
	if !ok {
		t.Fatalf("post nesnesi bekleniyordu: %v", body)
	}
	// _id JSON'da string olarak döner
	if post["_id"] != id.Hex() {
		t.Errorf("_id hex string olmalı: %v", post["_id"])
	}
}

func TestGetPostNotFound(t *testing.T) {
	fake := &fakeBlogService{getErr: services.ErrPostNotFound}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodGet, "/api/blog/"+primitive.NewObjectID().Hex(), "", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("durum kodu 404 beklenirken %d alındı", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "Blog yazısı bulunamadı" {
		t.Errorf("beklenmeyen hata mesajı: %v", body["error"])
	}
}

func TestCreatePostRequiresAuth(t *testing.T) {
	fake := &fakeBlogService{}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodPost, "/api/blog", "", gin.H{
		"title": "t", "content": "c", "slug": "s",
	})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("durum kodu 401 beklenirken %d alındı", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "Unauthorized" {
		t.Errorf("beklenmeyen hata gövdesi: %v", body)
	}
	if fake.created != nil {
		t.Error("yetkisiz istekte yazı oluşturulmamalı")
	}
}

func TestCreatePostMissingFields(t *testing.T) {
	fake := &fakeBlogService{}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodPost, "/api/blog", adminToken(t), gin.H{
		"content": "içerik",
		"slug":    "slug",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("durum kodu 400 beklenirken %d alındı", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "Başlık, içerik ve slug alanları zorunludur" {
		t.Errorf("beklenmeyen hata mesajı: %v", body["error"])
	}
	if fake.created != nil {
		t.Error("doğrulama hatasında yazı oluşturulmamalı")
	}
}

func TestCreatePostSlugTaken(t *testing.T) {
	fake := &fakeBlogService{createErr: services.ErrSlugTaken}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodPost, "/api/blog", adminToken(t), gin.H{
		"title":   "Başlık",
		"content": "İçerik",
		"slug":    "mevcut-slug",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("durum kodu 400 beklenirken %d alındı", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "Bu slug zaten kullanılıyor" {
		t.Errorf("beklenmeyen hata mesajı: %v", body["error"])
	}
}

func TestCreatePostSuccess(t *testing.T) {
	fake := &fakeBlogService{createdID: primitive.NewObjectID().Hex()}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodPost, "/api/blog", adminToken(t), gin.H{
		"title":     "Yeni Yazı",
		"content":   "İçerik",
		"slug":      "yeni-yazi",
		"tags":      []string{"go", "web"},
		"published": true,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("durum kodu 200 beklenirken %d alındı: %s", w.Code, w.Body.String())
	}

	body := decodeBody(t, w)
	if body["success"] != true {
		t.Errorf("success true beklenirken %v alındı", body["success"])
	}
	if body["postId"] != fake.createdID {
		t.Errorf("beklenmeyen postId: %v", body["postId"])
	}

	// Yazar token'daki admin kimliğinden alınır
	if fake.created == nil || fake.created.Author != "admin@hmzsolutions.com" {
		t.Errorf("yazar admin e-postası olmalı: %+v", fake.created)
	}
}

func TestUpdatePostSlugCollision(t *testing.T) {
	fake := &fakeBlogService{updateErr: services.ErrSlugTaken}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodPut, "/api/blog/"+primitive.NewObjectID().Hex(), adminToken(t), gin.H{
		"slug": "mevcut-slug",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("durum kodu 400 beklenirken %d alındı", w.Code)
	}
}

func TestUpdatePostPartialSet(t *testing.T) {
	id := primitive.NewObjectID()
	fake := &fakeBlogService{post: &models.BlogPost{ID: id, Title: "Güncel"}}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodPut, "/api/blog/"+id.Hex(), adminToken(t), gin.H{
		"title":     "Güncel",
		"published": false,
	})
	if w.Code != http.StatusOK {
		t.Fatalf("durum kodu 200 beklenirken %d alındı: %s", w.Code, w.Body.String())
	}

	// Yalnızca gönderilen alanlar güncellenir
	if _, ok := fake.updated["title"]; !ok {
		t.Error("title güncellemede yer almalı")
	}
	if _, ok := fake.updated["published"]; !ok {
		t.Error("published güncellemede yer almalı")
	}
	if _, ok := fake.updated["slug"]; ok {
		t.Error("gönderilmeyen slug güncellemede yer almamalı")
	}
}

func TestDeletePostNotFound(t *testing.T) {
	fake := &fakeBlogService{deleteErr: services.ErrPostNotFound}
	r, _ := newBlogRouter(t, fake)

	w := doJSON(t, r, http.MethodDelete, "/api/blog/"+primitive.NewObjectID().Hex(), adminToken(t), nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("durum kodu 404 beklenirken %d alındı", w.Code)
	}
}
