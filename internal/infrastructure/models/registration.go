package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamRegistration is the Mongo document shape for a registration.
// Field names match the collection layout the admin tooling expects.
type TeamRegistration struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	TeamName      string             `bson:"team_name"`
	TeamLeadName  string             `bson:"team_lead_name"`
	TeamLeadEmail string             `bson:"team_lead_email"`
	TeamLeadPhone string             `bson:"team_lead_phone"`
	TeamLeadRegNo string             `bson:"team_lead_reg_no"`
	Member1Name   string             `bson:"member1_name"`
	Member1Email  string             `bson:"member1_email"`
	Member1RegNo  string             `bson:"member1_reg_no"`
	Member2Name   string             `bson:"member2_name"`
	Member2Email  string             `bson:"member2_email"`
	Member2RegNo  string             `bson:"member2_reg_no"`
	Member3Name   string             `bson:"member3_name"`
	Member3Email  string             `bson:"member3_email"`
	Member3RegNo  string             `bson:"member3_reg_no"`
	CreatedAt     time.Time          `bson:"created_at"`
}
