package mapper

import (
	httpEntity "github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	dbEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
)

func ToProfile(user *dbEntity.User, applied []dbEntity.CollegeApplication) httpEntity.Profile {
	recommended := ""
	if user.RecommendedField != nil {
		recommended = *user.RecommendedField
	}

	appliedIDs := make([]uint, 0, len(applied))
	for _, a := range applied {
		appliedIDs = append(appliedIDs, a.CollegeID)
	}

	return httpEntity.Profile{
		ID:               user.ID,
		Email:            user.Email,
		Name:             user.Name,
		Qualification:    user.Qualification,
		SchoolBackground: user.SchoolBackground,
		Marks:            user.Marks,
		Subjects:         user.Subjects,
		Interests:        user.Interests,
		Skills:           user.Skills,
		CareerGoal:       user.CareerGoal,
		College:          user.College,
		Joined:           user.Joined,
		Guidelines:       user.Guidelines,
		ProfilePic:       user.ProfilePic,
		RecommendedField: recommended,
		AppliedColleges:  appliedIDs,
	}
}
