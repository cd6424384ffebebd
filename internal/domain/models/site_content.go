package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SiteContent bölüm adıyla anahtarlanmış serbest biçimli içerik bloğu.
// İlk yazmada oluşturulur, sonraki yazmalarda değiştirilir (upsert).
// Collection: siteContent
type SiteContent struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Section   string             `bson:"section" json:"section"` // örn. "hero", "services"
	Data      bson.M             `bson:"data" json:"data"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
	UpdatedBy string             `bson:"updatedBy,omitempty" json:"updatedBy,omitempty"`
}
