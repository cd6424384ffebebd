package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Mesaj durumları. Kullanım akışında yalnızca ileri yönde ilerler:
// new -> read -> replied
const (
	MessageStatusNew     = "new"
	MessageStatusRead    = "read"
	MessageStatusReplied = "replied"
)

// ContactMessage represents a contact form submission
// Collection: contactMessages
type ContactMessage struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Company   string             `bson:"company,omitempty" json:"company,omitempty"`
	Message   string             `bson:"message" json:"message"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	Status    string             `bson:"status" json:"status"`
	IP        string             `bson:"ip" json:"ip"` // forwarded-for başlıklarından çözümlenir
}

// ValidMessageStatus verilen durumun tanımlı bir değer olup olmadığını döndürür
func ValidMessageStatus(status string) bool {
	switch status {
	case MessageStatusNew, MessageStatusRead, MessageStatusReplied:
		return true
	}
	return false
}
