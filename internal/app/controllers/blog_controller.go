package controllers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/hamzakyb/hmz-solutions-sub001/internal/app/middleware"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/models"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/domain/services/container"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/code"
	"github.com/hamzakyb/hmz-solutions-sub001/internal/error/response"
	"github.com/hamzakyb/hmz-solutions-sub001/pkg/logger"
)

// InterfaceBlogController blog denetleyicisi arayüzü
type InterfaceBlogController interface {
	GetPosts()
	GetPost()
	CreatePost()
	UpdatePost()
	DeletePost()
}

// BlogController blog yazısı isteklerini işler
type BlogController struct {
	Ctx       *gin.Context
	Container *container.ServiceContainer
}

// NewBlogController yeni bir blog denetleyicisi oluşturur
func NewBlogController(ctx *gin.Context, container *container.ServiceContainer) *BlogController {
	return &BlogController{
		Ctx:       ctx,
		Container: container,
	}
}

// CreatePostRequest yazı oluşturma isteği. Zorunlu alanlar bilinçli olarak
// binding ile değil elle denetlenir; sözleşme tek bir mesajla üçünü birden
// raporlamayı gerektirir.
type CreatePostRequest struct {
	Title          string   `json:"title"`
	Content        string   `json:"content"`
	Excerpt        string   `json:"excerpt"`
	FeaturedImage  string   `json:"featuredImage"`
	Slug           string   `json:"slug"`
	Tags           []string `json:"tags"`
	Published      bool     `json:"published"`
	SEOTitle       string   `json:"seoTitle"`
	SEODescription string   `json:"seoDescription"`
}

// UpdatePostRequest kısmi güncelleme isteği
type UpdatePostRequest struct {
	Title          *string   `json:"title"`
	Content        *string   `json:"content"`
	Excerpt        *string   `json:"excerpt"`
	FeaturedImage  *string   `json:"featuredImage"`
	Slug           *string   `json:"slug"`
	Tags           *[]string `json:"tags"`
	Published      *bool     `json:"published"`
	SEOTitle       *string   `json:"seoTitle"`
	SEODescription *string   `json:"seoDescription"`
}

// HandleBlogFunc blog isteklerini işleyen Gin handler döndürür
func HandleBlogFunc(container *container.ServiceContainer, method string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		controller := NewBlogController(ctx, container)

		switch method {
		case "getPosts":
			controller.GetPosts()
		case "getPost":
			controller.GetPost()
		case "createPost":
			controller.CreatePost()
		case "updatePost":
			controller.UpdatePost()
		case "deletePost":
			controller.DeletePost()
		default:
			response.Fail(ctx, code.ErrBind)
		}
	}
}

func (c *BlogController) blogService() services.InterfaceBlogService {
	return c.Container.GetService("blog").(services.InterfaceBlogService)
}

// 1 GetPosts yazıları listeler
// @Summary      List blog posts
// @Description  Returns posts filtered by published flag, slug or tag with skip/limit pagination
// @Tags         Blog
// @Produce      json
// @Param        published query bool false "Filter by published flag"
// @Param        slug query string false "Filter by slug"
// @Param        tag query string false "Filter by tag"
// @Param        limit query int false "Page size, default 10"
// @Param        skip query int false "Offset, default 0"
// @Success      200  {object}  map[string]interface{}
// @Router       /blog [get]
func (c *BlogController) GetPosts() {
	filter := services.BlogListFilter{
		Slug: c.Ctx.Query("slug"),
		Tag:  c.Ctx.Query("tag"),
	}

	if publishedStr := c.Ctx.Query("published"); publishedStr != "" {
		published := publishedStr == "true"
		filter.Published = &published
	}

	limit, _ := strconv.ParseInt(c.Ctx.DefaultQuery("limit", "10"), 10, 64)
	skip, _ := strconv.ParseInt(c.Ctx.DefaultQuery("skip", "0"), 10, 64)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	if skip < 0 {
		skip = 0
	}
	filter.Limit = limit
	filter.Skip = skip

	posts, total, err := c.blogService().GetPosts(c.Ctx.Request.Context(), filter)
	if err != nil {
		logger.Error("blog listesi sorgusu başarısız: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	response.OK(c.Ctx, gin.H{
		"posts":   posts,
		"total":   total,
		"hasMore": skip+limit < total,
	})
}

// 2 GetPost tek yazıyı döndürür; görüntülenme sayacı artar
// @Summary      Get a blog post
// @Tags         Blog
// @Produce      json
// @Param        id path string true "Post id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Router       /blog/{id} [get]
func (c *BlogController) GetPost() {
	id := c.Ctx.Param("id")

	post, err := c.blogService().GetPostByID(c.Ctx.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPostID):
			response.Fail(c.Ctx, code.ErrInvalidPostID)
		case errors.Is(err, services.ErrPostNotFound):
			response.NotFound(c.Ctx, code.ErrPostNotFound)
		default:
			logger.Error("blog yazısı sorgusu başarısız (%s): %v", id, err)
			response.Fail(c.Ctx, code.ErrDatabase)
		}
		return
	}

	response.OK(c.Ctx, gin.H{"post": post})
}

// 3 CreatePost yeni yazı oluşturur
// @Summary      Create a blog post
// @Tags         Blog
// @Accept       json
// @Produce      json
// @Param        request body CreatePostRequest true "Post fields"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      401  {object}  response.ErrorBody
// @Router       /blog [post]
// @Security     BearerAuth
func (c *BlogController) CreatePost() {
	var req CreatePostRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	if req.Title == "" || req.Content == "" || req.Slug == "" {
		response.Fail(c.Ctx, code.ErrPostFieldsRequired)
		return
	}

	admin, _ := middleware.CurrentAdmin(c.Ctx)

	post := &models.BlogPost{
		Title:          req.Title,
		Content:        req.Content,
		Excerpt:        req.Excerpt,
		FeaturedImage:  req.FeaturedImage,
		Slug:           req.Slug,
		Tags:           req.Tags,
		Published:      req.Published,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		Author:         admin.Email,
	}

	postID, err := c.blogService().CreatePost(c.Ctx.Request.Context(), post)
	if err != nil {
		if errors.Is(err, services.ErrSlugTaken) {
			response.Fail(c.Ctx, code.ErrSlugTaken)
			return
		}
		logger.Error("blog yazısı oluşturulamadı: %v", err)
		response.Fail(c.Ctx, code.ErrDatabase)
		return
	}

	middleware.PurgeCache()

	response.OK(c.Ctx, gin.H{
		"success": true,
		"postId":  postID,
		"message": "Blog yazısı başarıyla oluşturuldu",
	})
}

// 4 UpdatePost yazıyı kısmi olarak günceller
// @Summary      Update a blog post
// @Tags         Blog
// @Accept       json
// @Produce      json
// @Param        id path string true "Post id"
// @Param        request body UpdatePostRequest true "Fields to update"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /blog/{id} [put]
// @Security     BearerAuth
func (c *BlogController) UpdatePost() {
	id := c.Ctx.Param("id")

	var req UpdatePostRequest
	if err := c.Ctx.ShouldBindJSON(&req); err != nil {
		response.Fail(c.Ctx, code.ErrBind)
		return
	}

	set := bson.M{}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.Content != nil {
		set["content"] = *req.Content
	}
	if req.Excerpt != nil {
		set["excerpt"] = *req.Excerpt
	}
	if req.FeaturedImage != nil {
		set["featuredImage"] = *req.FeaturedImage
	}
	if req.Slug != nil {
		set["slug"] = *req.Slug
	}
	if req.Tags != nil {
		set["tags"] = *req.Tags
	}
	if req.Published != nil {
		set["published"] = *req.Published
	}
	if req.SEOTitle != nil {
		set["seoTitle"] = *req.SEOTitle
	}
	if req.SEODescription != nil {
		set["seoDescription"] = *req.SEODescription
	}

	if len(set) == 0 {
		response.Fail(c.Ctx, code.ErrValidation)
		return
	}

	post, err := c.blogService().UpdatePost(c.Ctx.Request.Context(), id, set)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPostID):
			response.Fail(c.Ctx, code.ErrInvalidPostID)
		case errors.Is(err, services.ErrSlugTaken):
			response.Fail(c.Ctx, code.ErrSlugTaken)
		case errors.Is(err, services.ErrPostNotFound):
			response.NotFound(c.Ctx, code.ErrPostNotFound)
		default:
			logger.Error("blog yazısı güncellenemedi (%s): %v", id, err)
			response.Fail(c.Ctx, code.ErrDatabase)
		}
		return
	}

	middleware.PurgeCache()

	response.OK(c.Ctx, gin.H{
		"success": true,
		"post":    post,
		"message": "Blog yazısı başarıyla güncellendi",
	})
}

// 5 DeletePost yazıyı siler
// @Summary      Delete a blog post
// @Tags         Blog
// @Produce      json
// @Param        id path string true "Post id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  response.ErrorBody
// @Router       /blog/{id} [delete]
// @Security     BearerAuth
func (c *BlogController) DeletePost() {
	id := c.Ctx.Param("id")

	if err := c.blogService().DeletePost(c.Ctx.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidPostID):
			response.Fail(c.Ctx, code.ErrInvalidPostID)
		case errors.Is(err, services.ErrPostNotFound):
			response.NotFound(c.Ctx, code.ErrPostNotFound)
		default:
			logger.Error("blog yazısı silinemedi (%s): %v", id, err)
			response.Fail(c.Ctx, code.ErrDatabase)
		}
		return
	}

	middleware.PurgeCache()

	response.OK(c.Ctx, gin.H{
		"success": true,
		"message": "Blog yazısı başarıyla silindi",
	})
}
