package handler

import (
	"time"

	"github.com/vizerhq/jobboard/internal/core/domain"
)

type createJobRequest struct {
	CompanyName string     `json:"company_name" validate:"required"`
	Title       string     `json:"title"        validate:"required"`
	URL         string     `json:"url"          validate:"required,url"`
	Description string     `json:"description"`
	Location    string     `json:"location"`
	Salary      string     `json:"salary"`
	ExpiresAt   *time.Time `json:"expires_at"`
}

type createCompanyRequest struct {
	Name    string `json:"name" validate:"required"`
	Address string `json:"address"`
	Logo    string `json:"logo" validate:"omitempty,url"`
}

type companyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type applyRequest struct {
	FullName    string `json:"full_name"    validate:"required"`
	Email       string `json:"email"        validate:"required,email"`
	Phone       string `json:"phone"`
	LinkedIn    string `json:"linkedin"     validate:"omitempty,url"`
	GitHub      string `json:"github"       validate:"omitempty,url"`
	Portfolio   string `json:"portfolio"    validate:"omitempty,url"`
	CoverLetter string `json:"cover_letter"`
	ResumeURL   string `json:"resume_url"   validate:"omitempty,url"`
}

type applicationSummary struct {
	ID        int64     `json:"id"`
	JobID     int64     `json:"job_id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	ResumeURL string    `json:"resume_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func toApplicationSummaries(apps []*domain.Application) []applicationSummary {
	out := make([]applicationSummary, 0, len(apps))
	for _, a := range apps {
		out = append(out, applicationSummary{
			ID:        a.ID,
			JobID:     a.JobID,
			FullName:  a.FullName,
			Email:     a.Email,
			ResumeURL: a.ResumeURL,
			CreatedAt: a.CreatedAt,
		})
	}
	return out
}

type profileRequest struct {
	Name       *string `json:"name"`
	Age        *string `json:"age"`
	Location   *string `json:"location"`
	Gender     *string `json:"gender"`
	Skills     *string `json:"skills"`
	Education  *string `json:"education"`
	Experience *string `json:"experience"`
	Interests  *string `json:"interests"`
	Bio        *string `json:"bio"`
}
