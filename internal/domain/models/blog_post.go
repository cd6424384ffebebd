package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BlogPost represents a blog post document
// Collection: blogPosts
type BlogPost struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Title          string             `bson:"title" json:"title"`
	Content        string             `bson:"content" json:"content"`
	Excerpt        string             `bson:"excerpt,omitempty" json:"excerpt,omitempty"`
	FeaturedImage  string             `bson:"featuredImage,omitempty" json:"featuredImage,omitempty"`
	Slug           string             `bson:"slug" json:"slug"` // benzersiz, yazı URL'sinde kullanılır
	Tags           []string           `bson:"tags" json:"tags"`
	Published      bool               `bson:"published" json:"published"`
	SEOTitle       string             `bson:"seoTitle,omitempty" json:"seoTitle,omitempty"`
	SEODescription string             `bson:"seoDescription,omitempty" json:"seoDescription,omitempty"`
	Author         string             `bson:"author" json:"author"` // yazıyı oluşturan admin e-postası
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
	Views          int64              `bson:"views" json:"views"` // her herkese açık okumada artar
}
