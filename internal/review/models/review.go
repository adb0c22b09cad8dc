package models

import "time"

type Review struct {
	ID        string    `json:"id" bson:"id"`
	ProductID string    `json:"productId" bson:"productId"`
	UserName  string    `json:"userName" bson:"userName"`
	Rating    int       `json:"rating" bson:"rating"` // callers use 1-5, not enforced
	Comment   string    `json:"comment" bson:"comment"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

func (Review) CollectionName() string {
	return "reviews"
}
