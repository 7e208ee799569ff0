package entity

type RegisterRequest struct {
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required"`
	ConfirmPassword  string `json:"confirm_password" validate:"required"`
	Name             string `json:"name"`
	Qualification    string `json:"qualification"`
	SchoolBackground string `json:"school_background"`
	Marks            string `json:"marks"`
	Subjects         string `json:"subjects"`
	Interests        string `json:"interests"`
	Skills           string `json:"skills"`
	CareerGoal       string `json:"career_goal"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

// Nil fields are left unchanged.
type UpdateProfileRequest struct {
	Name             *string `json:"name"`
	Qualification    *string `json:"qualification"`
	SchoolBackground *string `json:"school_background"`
	Marks            *string `json:"marks"`
	Subjects         *string `json:"subjects"`
	College          *string `json:"college"`
	Joined           *string `json:"joined"`
	Interests        *string `json:"interests"`
	Skills           *string `json:"skills"`
	CareerGoal       *string `json:"career_goal"`
	Guidelines       *string `json:"guidelines"`
	ProfilePic       *string `json:"profile_pic"`
}

type Profile struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Name             string `json:"name"`
	Qualification    string `json:"qualification"`
	SchoolBackground string `json:"school_background"`
	Marks            string `json:"marks"`
	Subjects         string `json:"subjects"`
	Interests        string `json:"interests"`
	Skills           string `json:"skills"`
	CareerGoal       string `json:"career_goal"`
	College          string `json:"college"`
	Joined           string `json:"joined"`
	Guidelines       string `json:"guidelines"`
	ProfilePic       string `json:"profile_pic,omitempty"`
	RecommendedField string `json:"recommended_field,omitempty"`
	AppliedColleges  []uint `json:"applied_colleges"`
}
