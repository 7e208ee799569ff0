package usecase

import (
	"context"
	"strings"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
)

// ParentsUsecase serves the fixed guidance tables for parents. Every call
// returns fresh copies, so callers may modify the results.
type ParentsUsecase interface {
	Dashboard(ctx context.Context) *entity.ParentsDashboard
	Courses(ctx context.Context) *entity.ParentsCourses
	Scholarships(ctx context.Context, filter entity.ScholarshipFilter) []entity.Scholarship
	Quotas(ctx context.Context) []entity.Quota
	Occupations(ctx context.Context) []entity.Occupation
}

type parentsUsecase struct{}

func NewParentsUsecase() ParentsUsecase {
	return &parentsUsecase{}
}

func (u *parentsUsecase) Dashboard(ctx context.Context) *entity.ParentsDashboard {
	return &entity.ParentsDashboard{
		Courses:           cloneSlice(dashboardStreams),
		Scholarships:      cloneSlice(dashboardScholarships),
		Quotas:            cloneSlice(dashboardQuotas),
		Occupations:       cloneSlice(dashboardOccupations),
		GovExams:          cloneSlice(govExams),
		AdmissionAlerts:   cloneSlice(admissionAlerts),
		FinancialPlanning: cloneSlice(financialPlanning),
		CourseMapping:     cloneSlice(dashboardCourseMapping),
	}
}

func (u *parentsUsecase) Courses(ctx context.Context) *entity.ParentsCourses {
	return &entity.ParentsCourses{
		AfterTenth:   cloneSlice(coursesAfterTenth),
		AfterTwelfth: cloneSlice(coursesAfterTwelfth),
		Outcomes:     cloneSlice(courseOutcomes),
	}
}

// Scholarships filters by a case-insensitive substring of the category,
// e.g. "merit" or "state". An empty filter returns all of them.
func (u *parentsUsecase) Scholarships(ctx context.Context, filter entity.ScholarshipFilter) []entity.Scholarship {
	category := strings.ToLower(strings.TrimSpace(filter.Category))
	out := make([]entity.Scholarship, 0, len(scholarships))
	for _, s := range scholarships {
		if category != "" && !strings.Contains(strings.ToLower(s.Category), category) {
			continue
		}
		out = append(out, s)
	}
	return out
}

func (u *parentsUsecase) Quotas(ctx context.Context) []entity.Quota {
	return cloneSlice(quotas)
}

func (u *parentsUsecase) Occupations(ctx context.Context) []entity.Occupation {
	out := make([]entity.Occupation, len(occupations))
	for i, o := range occupations {
		o.Paths = cloneSlice(o.Paths)
		o.Careers = cloneSlice(o.Careers)
		o.Colleges = cloneSlice(o.Colleges)
		out[i] = o
	}
	return out
}

func cloneSlice[T any](s []T) []T {
	return append(make([]T, 0, len(s)), s...)
}
