package usecase

import (
	"context"
	"testing"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParentsDashboard(t *testing.T) {
	d := NewParentsUsecase().Dashboard(context.Background())

	assert.Len(t, d.Courses, 3)
	assert.Len(t, d.Scholarships, 2)
	assert.Len(t, d.Quotas, 5)
	assert.Len(t, d.Occupations, 6)
	assert.Len(t, d.GovExams, 5)
	assert.Len(t, d.AdmissionAlerts, 3)
	assert.Len(t, d.FinancialPlanning, 4)
	assert.Len(t, d.CourseMapping, 4)
	assert.Equal(t, "NIT Srinagar", d.AdmissionAlerts[0].College)
}

func TestParentsCourses(t *testing.T) {
	c := NewParentsUsecase().Courses(context.Background())

	require.Len(t, c.AfterTenth, 6)
	require.Len(t, c.AfterTwelfth, 9)
	require.Len(t, c.Outcomes, 8)
	assert.Equal(t, "ITI (Industrial Training)", c.AfterTenth[5].Stream)
	assert.Equal(t, "LLB", c.Outcomes[4].Course)
}

func TestParentsScholarships_Filter(t *testing.T) {
	u := NewParentsUsecase()
	ctx := context.Background()

	tests := []struct {
		category string
		want     []string
	}{
		{"", []string{
			"National Merit Scholarship",
			"Post-Matric Scholarship (SC/ST/OBC)",
			"AICTE Pragati Scholarship (Girls)",
			"INSPIRE Scholarship (Science Stream)",
			"State Government Scholarships",
		}},
		{"MERIT", []string{"National Merit Scholarship", "INSPIRE Scholarship (Science Stream)"}},
		{"state", []string{"State Government Scholarships"}},
		{"sports", []string{}},
	}

	for _, tt := range tests {
		got := u.Scholarships(ctx, entity.ScholarshipFilter{Category: tt.category})
		names := make([]string, 0, len(got))
		for _, s := range got {
			assert.NotEmpty(t, s.ApplyLink, s.Name)
			names = append(names, s.Name)
		}
		assert.Equal(t, tt.want, names, tt.category)
	}
}

func TestParentsQuotas(t *testing.T) {
	q := NewParentsUsecase().Quotas(context.Background())
	require.Len(t, q, 7)
	assert.Equal(t, "OBC", q[2].Category)
	assert.Equal(t, "27%", q[2].Reservation)
}

func TestParentsTablesNotShared(t *testing.T) {
	u := NewParentsUsecase()
	ctx := context.Background()

	occ := u.Occupations(ctx)
	require.Len(t, occ, 3)
	occ[0].Name = "changed"
	occ[0].Careers[0] = "changed"

	q := u.Quotas(ctx)
	q[0].Reservation = "0%"

	fresh := u.Occupations(ctx)
	assert.Equal(t, "Engineering & Technology", fresh[0].Name)
	assert.Equal(t, "Software Engineer", fresh[0].Careers[0])
	assert.Equal(t, "15%", u.Quotas(ctx)[0].Reservation)
}
