package usecases

import (
	"time"

	"event-portal.backend/internal/domain/entities"
)

// DocToMap flattens a stored registration into a template/JSON-safe mapping:
// the store identifier becomes its canonical hex string and timestamps become
// RFC 3339 text. The input is never mutated; nil in, nil out.
func DocToMap(reg *entities.TeamRegistration) map[string]any {
	if reg == nil {
		return nil
	}

	return map[string]any{
		"_id":              reg.ID.Hex(),
		"team_name":        reg.TeamName,
		"team_lead_name":   reg.TeamLeadName,
		"team_lead_email":  reg.TeamLeadEmail,
		"team_lead_phone":  reg.TeamLeadPhone,
		"team_lead_reg_no": reg.TeamLeadRegNo,
		"member1_name":     reg.Member1Name,
		"member1_email":    reg.Member1Email,
		"member1_reg_no":   reg.Member1RegNo,
		"member2_name":     reg.Member2Name,
		"member2_email":    reg.Member2Email,
		"member2_reg_no":   reg.Member2RegNo,
		"member3_name":     reg.Member3Name,
		"member3_email":    reg.Member3Email,
		"member3_reg_no":   reg.Member3RegNo,
		"created_at":       reg.CreatedAt.Format(time.RFC3339),
	}
}

// docColumns is the stable column order used by listings and the export.
var docColumns = []string{
	"_id",
	"team_name",
	"team_lead_name",
	"team_lead_email",
	"team_lead_phone",
	"team_lead_reg_no",
	"member1_name",
	"member1_email",
	"member1_reg_no",
	"member2_name",
	"member2_email",
	"member2_reg_no",
	"member3_name",
	"member3_email",
	"member3_reg_no",
	"created_at",
}
