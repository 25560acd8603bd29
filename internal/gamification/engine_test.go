package gamification_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/vytor/edugame/internal/gamification"
	"github.com/vytor/edugame/internal/grades"
	"github.com/vytor/edugame/internal/models"
)

func TestLevelFor(t *testing.T) {
	tests := []struct {
		exp  uint64
		want uint64
	}{
		{exp: 0, want: 1},
		{exp: 99, want: 1},
		{exp: 100, want: 10},
		{exp: 1300, want: 28},
		{exp: 2600, want: 39},
		{exp: 3900, want: 47},
		{exp: 5200, want: 53},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, gamification.LevelFor(tt.exp), "exp=%d", tt.exp)
	}
}

func TestLevelFor_Monotonic(t *testing.T) {
	prev := gamification.LevelFor(0)
	for exp := uint64(1); exp <= 20000; exp++ {
		cur := gamification.LevelFor(exp)
		assert.GreaterOrEqual(t, cur, prev, "exp=%d", exp)
		prev = cur
	}
}

func TestCourseExp(t *testing.T) {
	tests := []struct {
		name        string
		mean        float64
		attendance  float64
		wantExp     uint64
		wantBonus   uint32
		wantPenalty uint32
	}{
		{name: "perfect", mean: 7.0, attendance: 100, wantExp: 1300, wantBonus: 7},
		{name: "bare pass", mean: 5.5, attendance: 80, wantExp: 403, wantBonus: 2},
		{name: "nothing parsed", mean: 0, attendance: 0, wantExp: 0, wantPenalty: 2},
		{name: "low mean good attendance", mean: 4.0, attendance: 90, wantExp: 495, wantBonus: 4, wantPenalty: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exp, bonus, penalty := gamification.CourseExp(tt.mean, tt.attendance)
			assert.Equal(t, tt.wantExp, exp)
			assert.Equal(t, tt.wantBonus, bonus)
			assert.Equal(t, tt.wantPenalty, penalty)
		})
	}
}

func perfectCourses() []models.CourseScore {
	scores := make([]models.CourseScore, 0, len(models.DefaultCourses))
	for _, c := range models.DefaultCourses {
		scores = append(scores, models.CourseScore{Code: c.Code, Mean: 7.0, Attendance: 100})
	}
	return scores
}

func TestApply_PerfectStudent(t *testing.T) {
	s := models.Student{Name: "Ana"}
	summary := grades.Summary{Mean: 7.0, GradePoints: 840, Assist: 100}

	gamification.Apply(&s, perfectCourses(), summary)

	want := models.Student{
		Name:    "Ana",
		Assist:  100,
		Grades:  840,
		Mean:    7.0,
		Exp:     5200,
		Level:   53,
		Penalty: 0,
		Bonus:   28,
		Coins:   28934,
	}
	if diff := cmp.Diff(want, s); diff != "" {
		t.Errorf("Apply() mismatch (-want +got):\n%s", diff)
	}
}

func TestApply_ResetsPreviousState(t *testing.T) {
	s := models.Student{Exp: 999999, Level: 999, Coins: 1, Penalty: 9, Bonus: 9}

	gamification.Apply(&s, nil, grades.Summary{})

	assert.Equal(t, uint64(0), s.Exp)
	assert.Equal(t, uint64(1), s.Level)
	assert.Equal(t, uint64(100), s.Coins)
	assert.Equal(t, uint32(0), s.Penalty)
	assert.Equal(t, uint32(0), s.Bonus)
}

func TestApply_Idempotent(t *testing.T) {
	var a, b models.Student
	gamification.Apply(&a, perfectCourses(), grades.Summary{Mean: 7})
	b = a
	gamification.Apply(&b, perfectCourses(), grades.Summary{Mean: 7})

	assert.Equal(t, a, b)
}

func TestApply_FailingStudentKeepsStartingCoins(t *testing.T) {
	var s models.Student
	courses := []models.CourseScore{{Code: "CSI0168"}, {Code: "CSI0169"}}

	gamification.Apply(&s, courses, grades.Summary{})

	assert.Equal(t, uint64(0), s.Exp)
	assert.Equal(t, uint64(1), s.Level)
	assert.Equal(t, uint64(100), s.Coins)
	assert.Equal(t, uint32(4), s.Penalty)
}

func TestGainExp_RecomputesLevel(t *testing.T) {
	s := models.Student{Exp: 50, Level: 1}

	gamification.GainExp(&s, 50)

	assert.Equal(t, uint64(100), s.Exp)
	assert.Equal(t, gamification.LevelFor(100), s.Level)
}
