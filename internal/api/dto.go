package api

import (
	"time"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/repositories"
	"github.com/samber/lo"
)

type userResponse struct {
	ID      int    `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	Surname string `json:"surname"`
	Age     int    `json:"age"`
	Role    string `json:"role"`
}

type tokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	User        userResponse `json:"user"`
}

type companyResponse struct {
	ID            int      `json:"id"`
	UserID        int      `json:"userid"`
	Title         string   `json:"title"`
	City          string   `json:"city"`
	BusinessAreas []string `json:"businessAreas"`
}

type resumeResponse struct {
	ID             int      `json:"id"`
	UserID         int      `json:"userid"`
	Title          string   `json:"title"`
	Language       []string `json:"language"`
	Skills         []string `json:"skills"`
	Description    string   `json:"description"`
	WorkExperience float64  `json:"workExperience"`
}

type jobResponse struct {
	ID             int      `json:"id"`
	CompanyID      int      `json:"companyId"`
	Salary         *float64 `json:"salary"`
	Name           string   `json:"name"`
	WorkExperience *string  `json:"workExperience"`
	WorkSchedule   *string  `json:"workSchedule"`
	WorkShift      *string  `json:"workShift"`
	WorkHours      *int     `json:"workHours"`
	Skills         []string `json:"skills"`
	Language       []string `json:"language"`
	Remote         bool     `json:"remote"`
	Hybrid         bool     `json:"hybrid"`
	CreatedAt      string   `json:"created_at"`
}

type applicationResponse struct {
	ApplicationID int     `json:"ApplicationId"`
	ResumeID      int     `json:"resumeId"`
	JobID         int     `json:"jobId"`
	Message       *string `json:"message"`
	CreationTime  string  `json:"creationTime"`
}

type chatResponse struct {
	ID           int `json:"id"`
	EmploymentID int `json:"employmentId"`
	WorkerID     int `json:"workerId"`
}

type messageResponse struct {
	ID       int    `json:"id"`
	SenderID int    `json:"senderId"`
	ChatID   int    `json:"chatId"`
	Text     string `json:"text"`
	Created  string `json:"created"`
}

type applicationDetailResponse struct {
	WorkerID       int            `json:"workerId"`
	ResumeID       int            `json:"resume_id"`
	ApplicationID  int            `json:"application_id"`
	ApplicantID    int            `json:"applicant_id"`
	ApplicantName  string         `json:"applicant_name"`
	ApplicantEmail string         `json:"applicant_email"`
	Message        *string        `json:"message"`
	CreationTime   string         `json:"creation_time"`
	Resume         resumeResponse `json:"resume"`
}

type jobWithApplicationsResponse struct {
	EmploymentID     int                         `json:"employmentId"`
	Job              jobResponse                 `json:"job"`
	ApplicationCount int                         `json:"application_count"`
	Applications     []applicationDetailResponse `json:"applications"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// stringList never returns nil so list fields marshal as [] rather than null.
func stringList(l entities.StringList) []string {
	if l == nil {
		return []string{}
	}
	return l
}

func toUserResponse(user entities.User) userResponse {
	return userResponse{
		ID:      user.ID,
		Email:   user.Email,
		Name:    user.Name,
		Surname: user.Surname,
		Age:     user.Age,
		Role:    string(user.Role),
	}
}

func toCompanyResponse(company entities.Company) companyResponse {
	return companyResponse{
		ID:            company.ID,
		UserID:        company.OwnerID,
		Title:         company.Title,
		City:          company.City,
		BusinessAreas: stringList(company.BusinessAreas),
	}
}

func toResumeResponse(resume entities.Resume) resumeResponse {
	return resumeResponse{
		ID:             resume.ID,
		UserID:         resume.OwnerID,
		Title:          resume.Title,
		Language:       stringList(resume.Languages),
		Skills:         stringList(resume.Skills),
		Description:    resume.Description,
		WorkExperience: resume.YearsExperience,
	}
}

func toJobResponse(job entities.Job) jobResponse {
	var schedule, shift *string
	if job.Schedule != nil {
		s := string(*job.Schedule)
		schedule = &s
	}
	if job.Shift != nil {
		s := string(*job.Shift)
		shift = &s
	}
	return jobResponse{
		ID:             job.ID,
		CompanyID:      job.CompanyID,
		Salary:         job.Salary,
		Name:           job.Name,
		WorkExperience: job.Experience,
		WorkSchedule:   schedule,
		WorkShift:      shift,
		WorkHours:      job.Hours,
		Skills:         stringList(job.Skills),
		Language:       stringList(job.Languages),
		Remote:         job.Remote,
		Hybrid:         job.Hybrid,
		CreatedAt:      formatTime(job.CreatedAt),
	}
}

func toApplicationResponse(application entities.Application) applicationResponse {
	return applicationResponse{
		ApplicationID: application.ID,
		ResumeID:      application.ResumeID,
		JobID:         application.JobID,
		Message:       application.Message,
		CreationTime:  formatTime(application.CreatedAt),
	}
}

func toChatResponse(chat entities.Chat) chatResponse {
	return chatResponse{
		ID:           chat.ID,
		EmploymentID: chat.EmployerID,
		WorkerID:     chat.WorkerID,
	}
}

func toMessageResponse(message entities.Message) messageResponse {
	return messageResponse{
		ID:       message.ID,
		SenderID: message.SenderID,
		ChatID:   message.ChatID,
		Text:     message.Text,
		Created:  formatTime(message.CreatedAt),
	}
}

func toApplicationDetailResponse(detail repositories.ApplicationDetail) applicationDetailResponse {
	return applicationDetailResponse{
		WorkerID:       detail.ApplicantID,
		ResumeID:       detail.ResumeID,
		ApplicationID:  detail.ApplicationID,
		ApplicantID:    detail.ApplicantID,
		ApplicantName:  detail.ApplicantName + " " + detail.ApplicantSurname,
		ApplicantEmail: detail.ApplicantEmail,
		Message:        detail.Message,
		CreationTime:   formatTime(detail.CreatedAt),
		Resume:         toResumeResponse(detail.Resume),
	}
}

func toJobWithApplicationsResponse(aggregate repositories.JobWithApplications) jobWithApplicationsResponse {
	return jobWithApplicationsResponse{
		EmploymentID:     aggregate.Job.ID,
		Job:              toJobResponse(aggregate.Job),
		ApplicationCount: aggregate.ApplicationCount,
		Applications:     lo.Map(aggregate.Applications, func(d repositories.ApplicationDetail, _ int) applicationDetailResponse {
			return toApplicationDetailResponse(d)
		}),
	}
}
