package entities

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TeamRegistration is one submitted team's sign-up record. The ID and
// CreatedAt are assigned at insert time and never change afterwards.
type TeamRegistration struct {
	ID            primitive.ObjectID `json:"_id"`
	TeamName      string             `json:"team_name"`
	TeamLeadName  string             `json:"team_lead_name"`
	TeamLeadEmail string             `json:"team_lead_email"`
	TeamLeadPhone string             `json:"team_lead_phone"`
	TeamLeadRegNo string             `json:"team_lead_reg_no"`
	Member1Name   string             `json:"member1_name"`
	Member1Email  string             `json:"member1_email"`
	Member1RegNo  string             `json:"member1_reg_no"`
	Member2Name   string             `json:"member2_name"`
	Member2Email  string             `json:"member2_email"`
	Member2RegNo  string             `json:"member2_reg_no"`
	Member3Name   string             `json:"member3_name"`
	Member3Email  string             `json:"member3_email"`
	Member3RegNo  string             `json:"member3_reg_no"`
	CreatedAt     time.Time          `json:"created_at"`
}

// RegistrationInput carries the raw submitted form fields.
type RegistrationInput struct {
	TeamName      string `form:"team_name" json:"team_name"`
	TeamLeadName  string `form:"team_lead_name" json:"team_lead_name"`
	TeamLeadEmail string `form:"team_lead_email" json:"team_lead_email"`
	TeamLeadPhone string `form:"team_lead_phone" json:"team_lead_phone"`
	TeamLeadRegNo string `form:"team_lead_reg_no" json:"team_lead_reg_no"`
	Member1Name   string `form:"member_1_name" json:"member_1_name"`
	Member1Email  string `form:"member_1_email" json:"member_1_email"`
	Member1RegNo  string `form:"member_1_reg_no" json:"member_1_reg_no"`
	Member2Name   string `form:"member_2_name" json:"member_2_name"`
	Member2Email  string `form:"member_2_email" json:"member_2_email"`
	Member2RegNo  string `form:"member_2_reg_no" json:"member_2_reg_no"`
	Member3Name   string `form:"member_3_name" json:"member_3_name"`
	Member3Email  string `form:"member_3_email" json:"member_3_email"`
	Member3RegNo  string `form:"member_3_reg_no" json:"member_3_reg_no"`
}

// Trimmed returns a copy of the input with every field whitespace-trimmed.
// The original is kept intact so failed submissions can be echoed back as sent.
func (in RegistrationInput) Trimmed() RegistrationInput {
	return RegistrationInput{
		TeamName:      strings.TrimSpace(in.TeamName),
		TeamLeadName:  strings.TrimSpace(in.TeamLeadName),
		TeamLeadEmail: strings.TrimSpace(in.TeamLeadEmail),
		TeamLeadPhone: strings.TrimSpace(in.TeamLeadPhone),
		TeamLeadRegNo: strings.TrimSpace(in.TeamLeadRegNo),
		Member1Name:   strings.TrimSpace(in.Member1Name),
		Member1Email:  strings.TrimSpace(in.Member1Email),
		Member1RegNo:  strings.TrimSpace(in.Member1RegNo),
		Member2Name:   strings.TrimSpace(in.Member2Name),
		Member2Email:  strings.TrimSpace(in.Member2Email),
		Member2RegNo:  strings.TrimSpace(in.Member2RegNo),
		Member3Name:   strings.TrimSpace(in.Member3Name),
		Member3Email:  strings.TrimSpace(in.Member3Email),
		Member3RegNo:  strings.TrimSpace(in.Member3RegNo),
	}
}
