// Package gamification scores a student's academic record.
package gamification

import (
	"math"

	"github.com/vytor/edugame/internal/grades"
	"github.com/vytor/edugame/internal/models"
)

const (
	StartingCoins uint64 = 100
	StartingLevel uint64 = 1
)

// LevelFor maps experience to a level. Below 100 exp the level is 1; above
// it grows with the square root of exp/2, starting at 3.
func LevelFor(exp uint64) uint64 {
	if exp < 100 {
		return 1
	}
	return 2 + uint64(math.Floor(math.Sqrt(float64(exp)/2.0))) + 1
}

// GainExp adds amount to the record and recomputes its level.
func GainExp(s *models.Student, amount uint64) {
	s.Exp += amount
	s.Level = LevelFor(s.Exp)
}

// Reset puts the scoring fields back to their starting values.
func Reset(s *models.Student) {
	s.Exp = 0
	s.Level = StartingLevel
	s.Penalty = 0
	s.Bonus = 0
	s.Coins = StartingCoins
}

// Apply resets s and scores each course in order, then stores the summary
// aggregates. Course order matters: coins depend on the running exp.
func Apply(s *models.Student, courses []models.CourseScore, summary grades.Summary) {
	Reset(s)
	for _, c := range courses {
		applyCourse(s, c.Mean, c.Attendance)
	}
	s.Mean = summary.Mean
	s.Grades = summary.GradePoints
	s.Assist = summary.Assist
}

// CourseExp returns the exp a single course is worth, with the bonus and
// penalty counts it contributes.
func CourseExp(mean, attendance float64) (exp uint64, bonus, penalty uint32) {
	raw := ((mean-1)/6)*50 + (attendance/100)*50
	exp = uint64(math.Round(math.Max(0, raw)))

	if mean >= 5.5 {
		exp += 100
		bonus++
	}
	if mean >= 6.0 {
		exp += 200
		bonus++
	}
	if mean >= 6.5 {
		exp += 350
		bonus++
	}
	if attendance >= 80 {
		exp += 225
		bonus++
	}
	if attendance >= 85 {
		exp += 100
		bonus++
	}
	if attendance >= 90 {
		exp += 225
		bonus += 2
	}

	if mean < 4.5 {
		exp = saturatingSub(exp, 125)
		penalty++
	}
	if attendance < 65 {
		exp = saturatingSub(exp, 125)
		penalty++
	}
	return exp, bonus, penalty
}

func applyCourse(s *models.Student, mean, attendance float64) {
	gained, bonus, penalty := CourseExp(mean, attendance)
	s.Bonus += bonus
	s.Penalty += penalty

	GainExp(s, gained)

	coinBonus := s.Level*2 + gained/10
	s.Coins += (coinBonus * s.Exp) / 100
}

func saturatingSub(a, b uint64) uint64 {
	if a < b {
		return 0
	}
	return a - b
}
