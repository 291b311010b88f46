package repositories

import (
	"context"
	"time"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Jobs struct {
	db *gorm.DB
}

func NewJobsRepository(db *gorm.DB) *Jobs {
	return &Jobs{db: db}
}

func (repo *Jobs) Create(ctx context.Context, job *entities.Job) error {
	return repo.db.WithContext(ctx).Create(job).Error
}

func (repo *Jobs) GetByID(ctx context.Context, id int) (*entities.Job, error) {
	var job entities.Job
	if err := repo.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &job, nil
}

func (repo *Jobs) Get(ctx context.Context, limit int, offset int) ([]entities.Job, error) {
	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (repo *Jobs) GetByCompanies(ctx context.Context, companyIDs []int, limit int, offset int) ([]entities.Job, error) {
	var jobs []entities.Job
	if err := repo.db.WithContext(ctx).
		Where("company_id IN ?", companyIDs).
		Order("created_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ApplicationDetail is one application row of the employer aggregate. The
// applicant fields come from the resume's owner.
type ApplicationDetail struct {
	ApplicationID    int
	ResumeID         int
	ApplicantID      int
	ApplicantName    string
	ApplicantSurname string
	ApplicantEmail   string
	Message          *string
	CreatedAt        time.Time
	Resume           entities.Resume
}

type JobWithApplications struct {
	Job              entities.Job
	ApplicationCount int
	Applications     []ApplicationDetail
}

type jobCountRow struct {
	JobID            int
	ApplicationCount int
}

type applicationDetailRow struct {
	ApplicationID    int
	ResumeID         int
	ApplicantID      int
	ApplicantName    string
	ApplicantSurname string
	ApplicantEmail   string
	Message          *string
	CreatedAt        time.Time

	ResumeTitle           string
	ResumeLanguages       entities.StringList
	ResumeSkills          entities.StringList
	ResumeDescription     string
	ResumeYearsExperience float64
	ResumeCreatedAt       time.Time
}

// GetWithApplications returns the employer's jobs that received at least one
// application (most recent first), each with its applications and the
// applicant's resume nested.
func (repo *Jobs) GetWithApplications(ctx context.Context, companyIDs []int, limit int, offset int) ([]JobWithApplications, error) {

	var counts []jobCountRow
	if err := repo.db.WithContext(ctx).
		Model(&entities.Job{}).
		Select("jobs.id AS job_id, COUNT(applications.id) AS application_count").
		Joins("JOIN applications ON applications.job_id = jobs.id").
		Where("jobs.company_id IN ?", companyIDs).
		Group("jobs.id").
		Order("jobs.created_at DESC, jobs.id DESC").
		Limit(limit).
		Offset(offset).
		Scan(&counts).Error; err != nil {
		return nil, errors.Wrap(err, "failed to aggregate applications per job")
	}

	result := make([]JobWithApplications, 0, len(counts))
	for _, row := range counts {

		var job entities.Job
		if err := repo.db.WithContext(ctx).First(&job, "id = ?", row.JobID).Error; err != nil {
			return nil, err
		}

		details, err := repo.getApplicationDetails(ctx, row.JobID)
		if err != nil {
			return nil, err
		}

		result = append(result, JobWithApplications{
			Job:              job,
			ApplicationCount: row.ApplicationCount,
			Applications:     details,
		})
	}

	return result, nil
}

func (repo *Jobs) getApplicationDetails(ctx context.Context, jobID int) ([]ApplicationDetail, error) {

	var rows []applicationDetailRow
	if err := repo.db.WithContext(ctx).
		Model(&entities.Application{}).
		Select("applications.id AS application_id, "+
			"applications.resume_id AS resume_id, "+
			"resumes.owner_id AS applicant_id, "+
			"users.name AS applicant_name, "+
			"users.surname AS applicant_surname, "+
			"users.email AS applicant_email, "+
			"applications.message AS message, "+
			"applications.created_at AS created_at, "+
			"resumes.title AS resume_title, "+
			"resumes.languages AS resume_languages, "+
			"resumes.skills AS resume_skills, "+
			"resumes.description AS resume_description, "+
			"resumes.years_experience AS resume_years_experience, "+
			"resumes.created_at AS resume_created_at").
		Joins("JOIN resumes ON resumes.id = applications.resume_id").
		Joins("JOIN users ON users.id = resumes.owner_id").
		Where("applications.job_id = ?", jobID).
		Order("applications.created_at DESC, applications.id DESC").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load application details")
	}

	details := make([]ApplicationDetail, 0, len(rows))
	for _, row := range rows {
		details = append(details, ApplicationDetail{
			ApplicationID:    row.ApplicationID,
			ResumeID:         row.ResumeID,
			ApplicantID:      row.ApplicantID,
			ApplicantName:    row.ApplicantName,
			ApplicantSurname: row.ApplicantSurname,
			ApplicantEmail:   row.ApplicantEmail,
			Message:          row.Message,
			CreatedAt:        row.CreatedAt,
			Resume: entities.Resume{
				ID:              row.ResumeID,
				OwnerID:         row.ApplicantID,
				Title:           row.ResumeTitle,
				Languages:       row.ResumeLanguages,
				Skills:          row.ResumeSkills,
				Description:     row.ResumeDescription,
				YearsExperience: row.ResumeYearsExperience,
				CreatedAt:       row.ResumeCreatedAt,
			},
		})
	}

	return details, nil
}

func (repo *Jobs) Count(ctx context.Context) (int64, error) {
	var count int64
	err := repo.db.WithContext(ctx).Model(&entities.Job{}).Count(&count).Error
	return count, err
}
