package usecase

import "github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"

var dashboardStreams = []entity.StreamGuide{
	{Stream: "Science", Subjects: "Physics, Chemistry, Math/Biology, English"},
	{Stream: "Commerce", Subjects: "Accountancy, Business Studies, Economics, Math/CS"},
	{Stream: "Arts", Subjects: "History, Political Science, Sociology, Literature"},
}

var dashboardScholarships = []entity.Scholarship{
	{Name: "National Scholarship", Eligibility: "Above 80% in 12th", Benefits: "₹50,000/year"},
	{Name: "State Merit Scholarship", Eligibility: "J&K Domicile + Above 75%", Benefits: "₹25,000/year"},
}

var dashboardQuotas = []string{
	"SC/ST Reservation",
	"OBC Reservation",
	"EWS (Economically Weaker Section)",
	"Defence Personnel Quota",
	"PWD Quota",
}

var dashboardOccupations = []string{
	"Engineering & Technology",
	"Medical & Healthcare",
	"Civil Services",
	"Law",
	"Teaching & Research",
	"Entrepreneurship",
}

var govExams = []entity.GovExam{
	{Exam: "NEET", Qualification: "12th Science with PCB"},
	{Exam: "JEE", Qualification: "12th Science with PCM"},
	{Exam: "UPSC CSE", Qualification: "Graduate"},
	{Exam: "SSC CGL", Qualification: "Graduate"},
	{Exam: "Bank PO", Qualification: "Graduate"},
}

var admissionAlerts = []entity.AdmissionAlert{
	{College: "NIT Srinagar", LastDate: "30 June 2025"},
	{College: "AIIMS Jammu", LastDate: "15 July 2025"},
	{College: "University of Jammu", LastDate: "10 August 2025"},
}

var financialPlanning = []string{
	"Start SIP/FD for child’s higher education",
	"Look for education loans with low interest rates",
	"Apply for multiple scholarships",
	"Balance between private & government colleges",
}

var dashboardCourseMapping = []entity.CourseOutcome{
	{Course: "B.Tech (CSE)", Outcomes: "Software Engineer, Data Scientist, AI Specialist"},
	{Course: "MBBS", Outcomes: "Doctor, Surgeon, Specialist"},
	{Course: "B.Com", Outcomes: "CA, Accountant, Banking Professional"},
	{Course: "BA", Outcomes: "Civil Services, Journalism, Teaching"},
}

var coursesAfterTenth = []entity.StreamGuide{
	{Stream: "Science", Subjects: "Physics, Chemistry, Math/Biology, English", Opportunities: "Engineering, Medicine, Research, IT, Pure Sciences"},
	{Stream: "Commerce", Subjects: "Accountancy, Business Studies, Economics, Math/CS", Opportunities: "CA, CS, CMA, Banking, Management, Finance"},
	{Stream: "Arts/Humanities", Subjects: "History, Political Science, Sociology, Literature, Psychology", Opportunities: "Civil Services, Law, Journalism, Design, Teaching"},
	{Stream: "Diploma/Polytechnic", Subjects: "Applied Science & Technical Subjects", Opportunities: "Direct entry into engineering fields, technician jobs"},
	{Stream: "Vocational Courses", Subjects: "Tailoring, Photography, Computer Basics, Tourism, Agriculture", Opportunities: "Skilled jobs, entrepreneurship, early employment"},
	{Stream: "ITI (Industrial Training)", Subjects: "Electrician, Fitter, Mechanic, Welder, Computer Operator", Opportunities: "Skilled industry jobs, government technical posts"},
}

var coursesAfterTwelfth = []entity.StreamGuide{
	{Stream: "Engineering/Technology", Subjects: "PCM", Opportunities: "B.Tech, B.E, AI, Robotics"},
	{Stream: "Medical", Subjects: "PCB", Opportunities: "MBBS, BDS, BAMS, Nursing, Pharmacy"},
	{Stream: "Commerce & Management", Subjects: "Accountancy, Business Studies", Opportunities: "B.Com, BBA, MBA"},
	{Stream: "Arts & Humanities", Subjects: "Humanities", Opportunities: "BA, Law, Journalism, Civil Services"},
	{Stream: "Law", Subjects: "Any stream", Opportunities: "BA LLB, BBA LLB"},
	{Stream: "Design & Creative", Subjects: "Any stream", Opportunities: "Fashion, Animation, Fine Arts"},
	{Stream: "Defense & Civil Services", Subjects: "Any stream", Opportunities: "NDA, UPSC (later)"},
	{Stream: "Hotel Management & Tourism", Subjects: "Any stream", Opportunities: "BHM, Tourism Industry"},
	{Stream: "Education & Research", Subjects: "Any stream", Opportunities: "B.Ed, Teaching, Research"},
}

var courseOutcomes = []entity.CourseOutcome{
	{Course: "B.Tech (CSE)", Outcomes: "Software Engineer, Data Scientist, AI Specialist"},
	{Course: "MBBS", Outcomes: "Doctor, Surgeon, Specialist"},
	{Course: "B.Com", Outcomes: "CA, Accountant, Finance Professional"},
	{Course: "BA (Humanities)", Outcomes: "Civil Services, Journalism, Teaching"},
	{Course: "LLB", Outcomes: "Lawyer, Judge, Legal Advisor"},
	{Course: "B.Des", Outcomes: "Fashion Designer, Animator, UI/UX Designer"},
	{Course: "BHM", Outcomes: "Hotel Manager, Travel Consultant"},
	{Course: "B.Ed", Outcomes: "Teacher, Lecturer, Researcher"},
}

var scholarships = []entity.Scholarship{
	{
		Name:        "National Merit Scholarship",
		Eligibility: "Class 10/12 toppers, merit-based",
		Benefits:    "₹10,000 per annum for 2 years",
		ApplyLink:   "https://scholarships.gov.in/",
		Category:    "Merit-based Central",
	},
	{
		Name:        "Post-Matric Scholarship (SC/ST/OBC)",
		Eligibility: "Students from reserved categories studying post-matric courses",
		Benefits:    "Tuition fee waiver, hostel allowance, monthly stipend",
		ApplyLink:   "https://scholarships.gov.in/",
		Category:    "Need-based Central",
	},
	{
		Name:        "AICTE Pragati Scholarship (Girls)",
		Eligibility: "Girl students in technical/engineering colleges",
		Benefits:    "₹50,000 annually + tuition reimbursement",
		ApplyLink:   "https://aicte-pragati-saksham.gov.in/",
		Category:    "Girls Central",
	},
	{
		Name:        "INSPIRE Scholarship (Science Stream)",
		Eligibility: "Top 1% in Class 12, pursuing BSc/Integrated MSc",
		Benefits:    "₹80,000 per year",
		ApplyLink:   "https://online-inspire.gov.in/",
		Category:    "Merit-based Central",
	},
	{
		Name:        "State Government Scholarships",
		Eligibility: "Varies by state (check local portal)",
		Benefits:    "Fee reimbursement, stipend, book grants",
		ApplyLink:   "https://scholarships.gov.in/",
		Category:    "Need-based State",
	},
}

var quotas = []entity.Quota{
	{Name: "Scheduled Caste (SC)", Category: "SC", Reservation: "15%", Eligibility: "Students with valid SC certificate", Notes: "Applicable in Central & State institutions"},
	{Name: "Scheduled Tribe (ST)", Category: "ST", Reservation: "7.5%", Eligibility: "Students with valid ST certificate", Notes: "Relaxation in cut-offs and fees"},
	{Name: "Other Backward Classes (OBC – Non Creamy Layer)", Category: "OBC", Reservation: "27%", Eligibility: "OBC students (Non-Creamy Layer, income < ₹8 lakh)", Notes: "Requires central OBC certificate"},
	{Name: "Economically Weaker Section (EWS)", Category: "EWS", Reservation: "10%", Eligibility: "General category, income < ₹8 lakh", Notes: "Requires valid EWS certificate"},
	{Name: "Persons with Disability (PwD)", Category: "PwD", Reservation: "5%", Eligibility: "Minimum 40% disability with certificate", Notes: "Reservation across all categories"},
	{Name: "Minority Communities", Category: "Minority", Reservation: "Varies", Eligibility: "Muslim, Christian, Sikh, Buddhist, Jain, Parsi", Notes: "Special scholarships and state quotas available"},
	{Name: "State Quotas", Category: "State", Reservation: "Varies by state", Eligibility: "Domicile students", Notes: "Each state has unique reservation policies"},
}

var occupations = []entity.Occupation{
	{
		Name:        "Engineering & Technology",
		Description: "Focuses on innovation, design, and solving technical problems.",
		Paths:       []string{"B.Tech", "Diploma", "Polytechnic"},
		Careers:     []string{"Software Engineer", "Mechanical Engineer", "AI Specialist"},
		Salary:      "₹4–12 LPA",
		Future:      "High demand in IT, AI, Robotics, and Renewable Energy",
		Colleges:    []string{"IITs", "NITs", "IIITs", "Top State Universities"},
		Tips:        "Encourage logical thinking and problem-solving practice.",
	},
	{
		Name:        "Medical & Healthcare",
		Description: "Career in medicine, surgery, and allied healthcare services.",
		Paths:       []string{"MBBS", "BDS", "Nursing", "Pharmacy"},
		Careers:     []string{"Doctor", "Surgeon", "Dentist", "Pharmacist"},
		Salary:      "₹5–20 LPA",
		Future:      "Evergreen demand in healthcare worldwide",
		Colleges:    []string{"AIIMS", "JIPMER", "State Medical Colleges"},
		Tips:        "Strong biology background and compassion are key.",
	},
	{
		Name:        "Civil Services",
		Description: "Prestigious government jobs via UPSC/State PSC exams.",
		Paths:       []string{"Any Graduate Degree"},
		Careers:     []string{"IAS", "IPS", "IFS", "IRS"},
		Salary:      "₹7–18 LPA + perks",
		Future:      "Stable and influential career",
		Colleges:    []string{"Delhi University", "JNU", "State Universities"},
		Tips:        "Focus on current affairs and communication skills.",
	},
}
