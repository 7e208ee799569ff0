package entity

type CollegeFilter struct {
	Search   string `query:"search"`
	District string `query:"district"`
	Type     string `query:"type"`
	Page     int    `query:"page" validate:"omitempty,min=1"`
	PerPage  int    `query:"per_page" validate:"omitempty,min=1,max=100"`
}

type College struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	District    string   `json:"district"`
	Type        string   `json:"type"`
	Fields      string   `json:"fields"`
	Courses     []string `json:"courses,omitempty"`
	SportsQuota bool     `json:"sports_quota"`
}

type CollegePage struct {
	Colleges     []College `json:"colleges"`
	AllDistricts []string  `json:"all_districts"`
}

type PageMeta struct {
	Page       int `json:"page"`
	PerPage    int `json:"per_page"`
	Total      int `json:"total"`
	TotalPages int `json:"total_pages"`
}

type CollegeDetail struct {
	College College   `json:"college"`
	Nearby  []College `json:"nearby"`
	MapsURL string    `json:"maps_url"`
	Applied bool      `json:"applied"`
}

type ApplyResponse struct {
	CollegeID      uint `json:"college_id"`
	AlreadyApplied bool `json:"already_applied"`
}

type RecommendedColleges struct {
	Field    string    `json:"field"`
	Colleges []College `json:"colleges"`
}

type ExamResource struct {
	Title string `json:"title"`
	Link  string `json:"link"`
}

type Exam struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Plan        string         `json:"plan"`
	Date        string         `json:"date"` // YYYY-MM-DD
	Resources   []ExamResource `json:"resources"`
	Progress    int            `json:"progress"`
	DaysLeft    int            `json:"days_left"`
}

type ExamPrep struct {
	Field string `json:"field"`
	Exams []Exam `json:"exams"`
}

type TimelineStep struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Link        string `json:"link"`
}

type Timeline struct {
	Steps       []TimelineStep `json:"steps"`
	CurrentStep int            `json:"current_step"`
}
