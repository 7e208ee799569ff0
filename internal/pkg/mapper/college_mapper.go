package mapper

import (
	"encoding/json"

	httpEntity "github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	dbEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
)

// ToCollege - Convert DB entity to response entity; a malformed courses column is dropped
func ToCollege(row dbEntity.College) httpEntity.College {
	var courses []string
	if row.Courses != "" {
		if err := json.Unmarshal([]byte(row.Courses), &courses); err != nil {
			courses = nil
		}
	}

	return httpEntity.College{
		ID:          row.ID,
		Name:        row.Name,
		District:    row.District,
		Type:        row.Type,
		Fields:      row.Fields,
		Courses:     courses,
		SportsQuota: row.SportsQuota,
	}
}

func ToColleges(rows []dbEntity.College) []httpEntity.College {
	colleges := make([]httpEntity.College, 0, len(rows))
	for _, row := range rows {
		colleges = append(colleges, ToCollege(row))
	}
	return colleges
}
