package usecase

import (
	"math"
	"time"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
)

const (
	generalExamField    = "General"
	examDateLayout      = "2006-01-02"
	timelineCurrentStep = 2
)

var examPlans = map[string][]entity.Exam{
	string(entity.CategoryEngineering): {
		{
			Name:        "JEE Main",
			Description: "National level exam for engineering colleges like NITs, IIITs.",
			Plan:        "Focus on NCERT + Previous Year Papers. Daily 6 hrs of study with mock tests.",
			Date:        "2025-04-06",
			Resources: []entity.ExamResource{
				{Title: "NTA JEE Official", Link: "https://jeemain.nta.nic.in/"},
				{Title: "Physics Wallah JEE", Link: "https://www.pw.live/"},
				{Title: "JEE Mains PYQs", Link: "https://jeemains.in/pyqs"},
			},
			Progress: 20,
		},
		{
			Name:        "JKCET",
			Description: "State-level entrance exam in Jammu & Kashmir.",
			Plan:        "Revise NCERT of PCM thoroughly. Solve past 5-year JKCET papers.",
			Date:        "2025-05-15",
			Resources: []entity.ExamResource{
				{Title: "JKBOPEE Official", Link: "https://jkbopee.gov.in/"},
				{Title: "JKCET Study Guide", Link: "https://www.examguide.com/jkcet"},
			},
			Progress: 10,
		},
	},
	string(entity.CategoryMedicine): {
		{
			Name:        "NEET UG",
			Description: "National exam for MBBS/BDS admissions.",
			Plan:        "Daily 8 hrs study. Strong NCERT focus. Practice diagrams & mock tests.",
			Date:        "2025-05-05",
			Resources: []entity.ExamResource{
				{Title: "NEET Official", Link: "https://neet.nta.nic.in/"},
				{Title: "Allen NEET Prep", Link: "https://www.allen.ac.in/"},
				{Title: "Biology Notes", Link: "https://www.neetprep.com/"},
			},
			Progress: 15,
		},
	},
	string(entity.CategoryArts): {
		{
			Name:        "NIFT Entrance",
			Description: "Fashion & Design admission test.",
			Plan:        "Practice sketching daily. Focus on creativity & design aptitude.",
			Date:        "2025-02-21",
			Resources: []entity.ExamResource{
				{Title: "NIFT Official", Link: "https://nift.ac.in/"},
				{Title: "Design Entrance Prep", Link: "https://www.dsource.in/"},
			},
			Progress: 5,
		},
	},
	generalExamField: {
		{
			Name:        "CUET",
			Description: "Common University Entrance Test for multiple fields.",
			Plan:        "Focus on NCERT + GK. Daily 3 hrs practice on aptitude and reasoning.",
			Date:        "2025-06-15",
			Resources: []entity.ExamResource{
				{Title: "CUET Official", Link: "https://cuet.samarth.ac.in/"},
				{Title: "CUET Guide", Link: "https://cuetguide.com/"},
			},
			Progress: 0,
		},
	},
}

var timelineSteps = []entity.TimelineStep{
	{Name: "Career Quiz", Description: "Discover your strengths and suggested fields of study.", Link: "/api/quiz"},
	{Name: "Entrance Exam Preparation", Description: "Start preparing for entrance exams with focus.", Link: "/api/exam-prep"},
	{Name: "College Applications", Description: "Apply to recommended colleges matching your interests.", Link: "/api/colleges"},
	{Name: "Profile & Interests", Description: "Update your profile with interests, skills and goals.", Link: "/api/profile"},
	{Name: "Start College 🎓", Description: "Kickstart your academic journey in your chosen field.", Link: "/api/profile"},
}

// ExamsFor returns a copy of the field's exam plans (General when the field
// has none) with DaysLeft computed against now and clamped at zero.
func ExamsFor(field string, now time.Time) []entity.Exam {
	plans, ok := examPlans[field]
	if !ok {
		plans = examPlans[generalExamField]
	}

	exams := make([]entity.Exam, len(plans))
	for i, plan := range plans {
		exam := plan
		exam.Resources = append([]entity.ExamResource(nil), plan.Resources...)
		exam.DaysLeft = DaysUntil(plan.Date, now)
		exams[i] = exam
	}
	return exams
}

// DaysUntil counts whole days from now to midnight of date (in now's
// location), floored, never negative. Unparseable dates give zero.
func DaysUntil(date string, now time.Time) int {
	target, err := time.ParseInLocation(examDateLayout, date, now.Location())
	if err != nil {
		return 0
	}
	days := int(math.Floor(target.Sub(now).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}
