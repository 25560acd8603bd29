package services

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/vytor/edugame/internal/errors"
	"github.com/vytor/edugame/internal/extract"
	"github.com/vytor/edugame/internal/gamification"
	"github.com/vytor/edugame/internal/grades"
	"github.com/vytor/edugame/internal/jobs"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/metrics"
	"github.com/vytor/edugame/internal/models"
	"github.com/vytor/edugame/internal/portal"
	"github.com/vytor/edugame/internal/registry"
)

// ScrapeService logs into the portal, scores the student and stores the record
type ScrapeService interface {
	Scrape(ctx context.Context, creds models.Credentials) (*models.ScrapeResult, error)
}

type scrapeService struct {
	client   portal.ClientInterface
	registry *registry.Registry
	settings portal.Settings
	locator  extract.Locator
	jobQueue jobs.JobQueue
}

// NewScrapeService creates a new ScrapeService
func NewScrapeService(client portal.ClientInterface, reg *registry.Registry, settings portal.Settings, jobQueue jobs.JobQueue) ScrapeService {
	return &scrapeService{
		client:   client,
		registry: reg,
		settings: settings,
		locator:  extract.NewLocator(settings.Markers),
		jobQueue: jobQueue,
	}
}

func (s *scrapeService) Scrape(ctx context.Context, creds models.Credentials) (*models.ScrapeResult, error) {
	log := logger.FromContext(ctx).WithField("username", creds.Username)
	start := time.Now()

	if strings.TrimSpace(creds.Username) == "" {
		return nil, errors.NewValidationError("username", "cannot be empty")
	}
	if creds.Password == "" {
		return nil, errors.NewValidationError("password", "cannot be empty")
	}

	log.Info("starting scrape of %d courses", len(s.settings.Courses))

	session, err := s.client.Establish(ctx, creds)
	if err != nil {
		return nil, s.fail(log, "login", err)
	}

	pages := make([]models.RawCoursePage, 0, len(s.settings.Courses))
	for _, c := range s.settings.Courses {
		page, err := session.FetchCourse(ctx, c.Code)
		if err != nil {
			return nil, s.fail(log, "fetch "+c.Code, err)
		}
		pages = append(pages, page)
	}

	student, scores := ScorePages(s.locator, s.settings.Courses, pages)

	created := s.registry.Upsert(creds.Username, student)
	metrics.RegisteredStudents.Set(float64(s.registry.Len()))
	metrics.ScrapesTotal.WithLabelValues("ok").Inc()

	recordLedger(ctx, s.jobQueue, models.LedgerEntry{
		Username: creds.Username,
		Kind:     models.LedgerScrape,
		Delta:    int64(student.Coins),
		Balance:  student.Coins,
		Detail:   fmt.Sprintf("exp=%d level=%d", student.Exp, student.Level),
	})

	log.Info("scrape completed in %v: exp=%d, level=%d, coins=%d, new=%t", time.Since(start), student.Exp, student.Level, student.Coins, created)
	return &models.ScrapeResult{Student: student, IsNewUser: created, Courses: scores}, nil
}

func (s *scrapeService) fail(log *logger.Logger, step string, err error) error {
	var authErr *portal.AuthError
	var netErr *portal.NetworkError
	switch {
	case stderrors.As(err, &authErr):
		metrics.ScrapesTotal.WithLabelValues("auth_error").Inc()
		log.Warn("scrape refused at %s: %s", step, authErr.Kind)
		if authErr.Kind == portal.SessionCookieMissing {
			return errors.NewAuthError("portal did not open a session", err)
		}
		return errors.NewAuthError("invalid username or password", err)
	case stderrors.As(err, &netErr):
		metrics.ScrapesTotal.WithLabelValues("network_error").Inc()
		log.Error("scrape failed at %s: %v", step, err)
		return errors.NewNetworkError(err)
	default:
		metrics.ScrapesTotal.WithLabelValues("error").Inc()
		log.Error("scrape failed at %s: %v", step, err)
		return errors.NewInternalError(err)
	}
}

// ScorePages extracts, aggregates and scores the pages of one student. pages
// must follow the order of courses; the display name comes from the first
// grades page.
func ScorePages(locator extract.Locator, courses []models.Course, pages []models.RawCoursePage) (models.Student, []models.CourseScore) {
	results := make([]grades.CourseResult, 0, len(pages))
	for i, page := range pages {
		count := 0
		if i < len(courses) {
			count = courses[i].GradeCount
		}
		offset := locator.GradeOffset(page.GradesText)
		results = append(results, grades.NewCourseResult(models.CourseData{
			Code:           page.Code,
			GradeStrings:   locator.Grades(page.GradesText, offset, count),
			AttendanceText: locator.Attendance(page.AttendanceText),
		}))
	}

	name := extract.DefaultName
	if len(pages) > 0 {
		name = locator.DisplayName(pages[0].GradesText)
	}

	student := models.Student{Name: name}
	scores := grades.Scores(results)
	gamification.Apply(&student, scores, grades.Summarize(results))
	return student, scores
}
