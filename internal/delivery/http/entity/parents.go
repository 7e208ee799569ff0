package entity

type StreamGuide struct {
	Stream        string `json:"stream"`
	Subjects      string `json:"subjects"`
	Opportunities string `json:"opportunities,omitempty"`
}

type CourseOutcome struct {
	Course   string `json:"course"`
	Outcomes string `json:"outcomes"`
}

type Scholarship struct {
	Name        string `json:"name"`
	Eligibility string `json:"eligibility"`
	Benefits    string `json:"benefits"`
	ApplyLink   string `json:"apply_link,omitempty"`
	Category    string `json:"category,omitempty"`
}

type Quota struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Reservation string `json:"reservation"`
	Eligibility string `json:"eligibility"`
	Notes       string `json:"notes"`
}

type GovExam struct {
	Exam          string `json:"exam"`
	Qualification string `json:"qualification"`
}

type AdmissionAlert struct {
	College  string `json:"college"`
	LastDate string `json:"last_date"`
}

type Occupation struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Paths       []string `json:"paths"`
	Careers     []string `json:"careers"`
	Salary      string   `json:"salary"`
	Future      string   `json:"future"`
	Colleges    []string `json:"colleges"`
	Tips        string   `json:"tips"`
}

type ParentsDashboard struct {
	Courses           []StreamGuide    `json:"courses"`
	Scholarships      []Scholarship    `json:"scholarships"`
	Quotas            []string         `json:"quotas"`
	Occupations       []string         `json:"occupations"`
	GovExams          []GovExam        `json:"gov_exams"`
	AdmissionAlerts   []AdmissionAlert `json:"admission_alerts"`
	FinancialPlanning []string         `json:"financial_planning"`
	CourseMapping     []CourseOutcome  `json:"course_mapping"`
}

type ParentsCourses struct {
	AfterTenth   []StreamGuide   `json:"courses_after_10th"`
	AfterTwelfth []StreamGuide   `json:"courses_after_12th"`
	Outcomes     []CourseOutcome `json:"course_outcomes"`
}

type ScholarshipFilter struct {
	Category string `query:"category"`
}
