package schedule

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ============================
// 🔷 Schedule Item (collection: schedule)
// One entry of the wedding-day timeline shown on the public site.
type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	StartTime   string             `bson:"startTime" json:"startTime"` // "15:00"
	Location    string             `bson:"location" json:"location"`
	Order       int                `bson:"order" json:"order"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// ============================
// 🟡 Create/Update Item Request
type ItemRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	StartTime   string `json:"startTime" binding:"required"`
	Location    string `json:"location"`
	Order       int    `json:"order"`
}
