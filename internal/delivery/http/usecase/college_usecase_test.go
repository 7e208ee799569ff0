package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Vickyvkz7/SIH2025/internal/delivery/http/entity"
	internalEntity "github.com/Vickyvkz7/SIH2025/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testApplication(userID string, collegeID uint) internalEntity.CollegeApplication {
	return internalEntity.CollegeApplication{UserID: userID, CollegeID: collegeID}
}

func testColleges() []internalEntity.College {
	return []internalEntity.College{
		{ID: 1, Name: "Government Degree College", District: "Srinagar", Type: "Government", Fields: "Arts/Design, Education/Research", Courses: `["BA","BSc"]`},
		{ID: 2, Name: "NIT Srinagar", District: "Srinagar", Type: "Government", Fields: "Engineering/Tech", Courses: `["BTech"]`},
		{ID: 3, Name: "SKIMS Medical College", District: "Srinagar", Type: "Government", Fields: "Medicine/Biology"},
		{ID: 4, Name: "Islamia College", District: "Srinagar", Type: "Private", Fields: "Business/Management"},
		{ID: 5, Name: "GGM Science College", District: "Jammu", Type: "Government", Fields: "medicine/biology, engineering/tech"},
		{ID: 6, Name: "Model Institute of Engineering", District: "Jammu", Type: "Private", Fields: "Engineering/Tech"},
		{ID: 7, Name: "Degree College Anantnag", District: "Anantnag", Type: "Government", Fields: "Arts/Design"},
	}
}

type collegeFixture struct {
	usecase  CollegeUsecase
	users    *fakeUserRepo
	colleges *fakeCollegeRepo
}

func newCollegeFixture(users ...internalEntity.User) *collegeFixture {
	f := &collegeFixture{
		users:    newFakeUserRepo(users...),
		colleges: &fakeCollegeRepo{colleges: testColleges()},
	}
	f.usecase = NewCollegeUsecase(CollegeConfig{
		Log:      quietLogger(),
		Users:    f.users,
		Colleges: f.colleges,
	})
	return f
}

func collegeIDs(colleges []entity.College) []uint {
	ids := make([]uint, 0, len(colleges))
	for _, c := range colleges {
		ids = append(ids, c.ID)
	}
	return ids
}

func TestCollegeList_Filters(t *testing.T) {
	f := newCollegeFixture()
	ctx := context.Background()

	tests := []struct {
		name   string
		filter entity.CollegeFilter
		want   []uint
	}{
		{"default page size", entity.CollegeFilter{}, []uint{1, 2, 3, 4, 5, 6}},
		{"search", entity.CollegeFilter{Search: "college", PerPage: 10}, []uint{1, 3, 4, 5, 7}},
		{"district", entity.CollegeFilter{District: "jammu", PerPage: 10}, []uint{5, 6}},
		{"type", entity.CollegeFilter{Type: "PRIVATE", PerPage: 10}, []uint{4, 6}},
		{"combined", entity.CollegeFilter{Search: "nit", District: "Srinagar", Type: "Government", PerPage: 10}, []uint{2}},
		{"none", entity.CollegeFilter{District: "Leh", PerPage: 10}, []uint{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, _, err := f.usecase.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, collegeIDs(page.Colleges))
			assert.Equal(t, []string{"Anantnag", "Jammu", "Srinagar"}, page.AllDistricts)
		})
	}
}

func TestCollegeList_Pagination(t *testing.T) {
	f := newCollegeFixture()
	ctx := context.Background()

	page, meta, err := f.usecase.List(ctx, entity.CollegeFilter{Page: 2})
	require.NoError(t, err)
	assert.Equal(t, []uint{7}, collegeIDs(page.Colleges))
	assert.Equal(t, entity.PageMeta{Page: 2, PerPage: 6, Total: 7, TotalPages: 2}, *meta)

	page, meta, err = f.usecase.List(ctx, entity.CollegeFilter{Page: 5, PerPage: 3})
	require.NoError(t, err)
	assert.Empty(t, page.Colleges)
	assert.Equal(t, 3, meta.TotalPages)
}

func TestCollegeDetail(t *testing.T) {
	f := newCollegeFixture()
	ctx := context.Background()
	f.colleges.applications = append(f.colleges.applications, testApplication(testUserID, 1))

	detail, err := f.usecase.Detail(ctx, 1, testUserID)
	require.NoError(t, err)
	assert.Equal(t, uint(1), detail.College.ID)
	assert.Equal(t, []string{"BA", "BSc"}, detail.College.Courses)
	assert.Equal(t, []uint{2, 3, 4}, collegeIDs(detail.Nearby))
	assert.True(t, detail.Applied)
	assert.Equal(t, "https://www.google.com/maps?q=Government+Degree+College+Srinagar&output=embed", detail.MapsURL)

	detail, err = f.usecase.Detail(ctx, 7, testUserID)
	require.NoError(t, err)
	assert.Empty(t, detail.Nearby)
	assert.False(t, detail.Applied)

	_, err = f.usecase.Detail(ctx, 99, testUserID)
	assert.ErrorIs(t, err, ErrCollegeNotFound)
}

func TestCollegeApply_Idempotent(t *testing.T) {
	f := newCollegeFixture()
	ctx := context.Background()

	resp, err := f.usecase.Apply(ctx, testUserID, 2)
	require.NoError(t, err)
	assert.False(t, resp.AlreadyApplied)

	resp, err = f.usecase.Apply(ctx, testUserID, 2)
	require.NoError(t, err)
	assert.True(t, resp.AlreadyApplied)
	assert.Len(t, f.colleges.applications, 1)

	_, err = f.usecase.Apply(ctx, testUserID, 42)
	assert.ErrorIs(t, err, ErrCollegeNotFound)
}

func TestCollegeRecommended(t *testing.T) {
	field := string(entity.CategoryMedicine)
	f := newCollegeFixture(
		internalEntity.User{ID: testUserID, RecommendedField: &field},
		internalEntity.User{ID: "fresh"},
	)
	ctx := context.Background()

	rec, err := f.usecase.Recommended(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, field, rec.Field)
	assert.Equal(t, []uint{3, 5}, collegeIDs(rec.Colleges))

	_, err = f.usecase.Recommended(ctx, "fresh")
	assert.ErrorIs(t, err, ErrQuizNotTaken)
}

func TestExamPrep(t *testing.T) {
	field := string(entity.CategoryEngineering)
	unknown := "Law"
	f := newCollegeFixture(
		internalEntity.User{ID: testUserID, RecommendedField: &field},
		internalEntity.User{ID: "fresh"},
		internalEntity.User{ID: "other", RecommendedField: &unknown},
	)
	ctx := context.Background()
	now := time.Date(2025, 4, 1, 12, 0, 0, 0, time.UTC)

	prep, err := f.usecase.ExamPrep(ctx, testUserID, now)
	require.NoError(t, err)
	assert.Equal(t, field, prep.Field)
	require.Len(t, prep.Exams, 2)
	assert.Equal(t, "JEE Main", prep.Exams[0].Name)
	assert.Equal(t, 4, prep.Exams[0].DaysLeft)

	prep, err = f.usecase.ExamPrep(ctx, "fresh", now)
	require.NoError(t, err)
	assert.Equal(t, generalExamField, prep.Field)
	require.Len(t, prep.Exams, 1)
	assert.Equal(t, "CUET", prep.Exams[0].Name)

	prep, err = f.usecase.ExamPrep(ctx, "other", now)
	require.NoError(t, err)
	assert.Equal(t, "Law", prep.Field)
	assert.Equal(t, "CUET", prep.Exams[0].Name)
}

func TestDaysUntil(t *testing.T) {
	now := time.Date(2025, 5, 4, 23, 0, 0, 0, time.UTC)

	tests := []struct {
		date string
		want int
	}{
		{"2025-05-05", 0}, // one hour away
		{"2025-05-06", 1},
		{"2025-05-01", 0}, // past dates clamp
		{"not-a-date", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DaysUntil(tt.date, now), fmt.Sprint(tt.date))
	}
}

func TestTimeline(t *testing.T) {
	f := newCollegeFixture()
	tl := f.usecase.Timeline(context.Background())
	assert.Len(t, tl.Steps, 5)
	assert.Equal(t, 2, tl.CurrentStep)
	assert.Equal(t, "Career Quiz", tl.Steps[0].Name)
}
