package db

import (
	"fmt"
	"math/rand"
	"time"

	"talentflow-backend/lib/utils/helpers"
	"talentflow-backend/models"
	dbmodels "talentflow-backend/models/db"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael", "Linda",
	"William", "Barbara", "David", "Elizabeth", "Richard", "Susan", "Joseph", "Jessica",
	"Thomas", "Sarah", "Charles", "Karen", "Daniel", "Lisa", "Matthew", "Emily",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller", "Davis",
	"Rodriguez", "Martinez", "Wilson", "Anderson", "Taylor", "Moore", "Lee", "Walker",
	"Young", "Allen", "King", "Wright", "Scott", "Hill", "Green", "Baker",
}

var jobTitles = []string{
	"Senior Full Stack Developer", "Frontend Engineer", "Backend Engineer",
	"DevOps Engineer", "Product Manager", "UX Designer", "Data Scientist",
	"Mobile Developer", "QA Engineer", "Engineering Manager",
	"Senior Backend Developer", "React Developer", "Node.js Developer",
	"Cloud Architect", "Security Engineer", "Machine Learning Engineer",
	"iOS Developer", "Android Developer", "Full Stack Engineer",
	"Technical Lead", "Solutions Architect", "Site Reliability Engineer",
	"Platform Engineer", "API Developer", "Database Administrator",
}

var tagSets = [][]string{
	{"remote", "full-time"},
	{"on-site", "full-time"},
	{"hybrid", "contract"},
	{"remote", "part-time"},
	{"hybrid", "full-time"},
	{"remote", "contract"},
}

// Preload fills an empty database with demo data: 25 jobs, 50
// candidates with coherent stage history walks, and 3 assessments.
// A non-empty jobs table short-circuits.
func Preload(db *gorm.DB) error {
	var jobCount int64
	if err := db.Model(&dbmodels.Job{}).Count(&jobCount).Error; err != nil {
		return err
	}
	if jobCount > 0 {
		log.Info("database already seeded")
		return nil
	}
	log.Info("seeding database with demo data")

	users := []dbmodels.User{
		{Name: "Admin User", Email: "admin@talentflow.com"},
		{Name: "HR Manager", Email: "hr@talentflow.com"},
		{Name: "Tech Lead", Email: "tech@talentflow.com"},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	jobs := make([]dbmodels.Job, 0, len(jobTitles))
	for idx, title := range jobTitles {
		status := models.JobStatusActive
		if idx >= 16 && idx < 21 {
			status = models.JobStatusDraft
		} else if idx >= 21 {
			status = models.JobStatusArchived
		}
		jobs = append(jobs, dbmodels.Job{
			Title:       title,
			Slug:        helpers.Slugify(title),
			Description: fmt.Sprintf("We are looking for an experienced %s to join our team.", title),
			Status:      status,
			Tags:        datatypes.NewJSONSlice(tagSets[idx%len(tagSets)]),
			JobOrder:    idx,
		})
	}
	if err := db.Create(&jobs).Error; err != nil {
		return err
	}

	activeJobs := make([]dbmodels.Job, 0, len(jobs))
	for _, job := range jobs {
		if job.Status == models.JobStatusActive {
			activeJobs = append(activeJobs, job)
		}
	}

	// Candidates and assessments are independent, seed them in parallel.
	g := errgroup.Group{}
	g.Go(func() error { return seedCandidates(db, users, activeJobs) })
	g.Go(func() error { return seedAssessments(db, activeJobs) })
	if err := g.Wait(); err != nil {
		return err
	}

	log.Info("database seeded")
	return nil
}

func seedCandidates(db *gorm.DB, users []dbmodels.User, activeJobs []dbmodels.Job) error {
	for i := 0; i < 50; i++ {
		firstName := firstNames[rand.Intn(len(firstNames))]
		lastName := lastNames[rand.Intn(len(lastNames))]
		job := activeJobs[rand.Intn(len(activeJobs))]
		stage := models.Stages[rand.Intn(len(models.Stages))]
		appliedAt := time.Now().UTC().AddDate(0, 0, -(1 + rand.Intn(90)))

		rec := dbmodels.Candidate{
			Name:         firstName + " " + lastName,
			Email:        fmt.Sprintf("%s.%s%d@example.com", firstName, lastName, i),
			Phone:        fmt.Sprintf("+1%d-%d-%d", 200+rand.Intn(800), 100+rand.Intn(900), 1000+rand.Intn(9000)),
			JobID:        job.ID,
			CurrentStage: stage,
			AppliedAt:    appliedAt,
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}

		// Genesis event plus the forward walk up to the current stage,
		// so the history chain always ends at currentStage.
		events := []dbmodels.StageHistoryEvent{{
			CandidateID: rec.ID,
			FromStage:   nil,
			ToStage:     models.StageApplied,
			Timestamp:   appliedAt,
			ChangedBy:   users[rand.Intn(len(users))].ID,
		}}
		for step := 1; step < len(models.Stages); step++ {
			if models.Stages[step-1] == stage {
				break
			}
			prev := models.Stages[step-1]
			events = append(events, dbmodels.StageHistoryEvent{
				CandidateID: rec.ID,
				FromStage:   &prev,
				ToStage:     models.Stages[step],
				Timestamp:   appliedAt.AddDate(0, 0, step*5),
				ChangedBy:   users[rand.Intn(len(users))].ID,
			})
			if models.Stages[step] == stage {
				break
			}
		}
		if err := db.Create(&events).Error; err != nil {
			return err
		}
	}
	return nil
}

func seedAssessments(db *gorm.DB, activeJobs []dbmodels.Job) error {
	count := 3
	if count > len(activeJobs) {
		count = len(activeJobs)
	}
	for idx := 0; idx < count; idx++ {
		job := activeJobs[idx]
		rec := dbmodels.Assessment{
			JobID:       job.ID,
			Title:       job.Title + " Assessment",
			Description: "Assessment for the " + job.Title + " position",
			Sections: dbmodels.Sections{
				{
					ID:          fmt.Sprintf("section-%d-1", idx+1),
					Title:       "Technical Skills",
					Description: "Evaluate your technical knowledge",
					Order:       0,
					Questions: []dbmodels.Question{
						{
							ID:       fmt.Sprintf("q-%d-1", idx+1),
							Type:     models.QuestionTypeSingleChoice,
							Text:     "How many years of professional experience do you have?",
							Required: true,
							Order:    0,
							Options:  []string{"0-2 years", "2-5 years", "5-10 years", "10+ years"},
						},
						{
							ID:       fmt.Sprintf("q-%d-2", idx+1),
							Type:     models.QuestionTypeMultiChoice,
							Text:     "Which of the following technologies are you proficient in?",
							Required: true,
							Order:    1,
							Options:  []string{"JavaScript", "TypeScript", "React", "Node.js", "Python", "Java", "Go", "Rust"},
						},
						{
							ID:       fmt.Sprintf("q-%d-3", idx+1),
							Type:     models.QuestionTypeNumeric,
							Text:     "On a scale of 1-10, how would you rate your problem-solving skills?",
							Required: true,
							Order:    2,
							Min:      helpers.Ptr(1),
							Max:      helpers.Ptr(10),
						},
						{
							ID:        fmt.Sprintf("q-%d-4", idx+1),
							Type:      models.QuestionTypeShortText,
							Text:      "What is your current job title?",
							Order:     3,
							MaxLength: helpers.Ptr(100),
						},
						{
							ID:        fmt.Sprintf("q-%d-5", idx+1),
							Type:      models.QuestionTypeLongText,
							Text:      "Describe a challenging project you worked on.",
							Required:  true,
							Order:     4,
							MaxLength: helpers.Ptr(500),
						},
					},
				},
				{
					ID:          fmt.Sprintf("section-%d-2", idx+1),
					Title:       "Work Preferences",
					Description: "Tell us about your work preferences",
					Order:       1,
					Questions: []dbmodels.Question{
						{
							ID:       fmt.Sprintf("q-%d-6", idx+1),
							Type:     models.QuestionTypeSingleChoice,
							Text:     "Are you open to remote work?",
							Required: true,
							Order:    0,
							Options:  []string{"Yes", "No", "Hybrid preferred"},
						},
					},
				},
			},
		}
		if err := db.Create(&rec).Error; err != nil {
			return err
		}
	}
	return nil
}
