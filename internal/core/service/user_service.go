package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vizerhq/jobboard/internal/core/domain"
	"github.com/vizerhq/jobboard/internal/core/ports"
)

// UserService implements profile reads and updates for the authenticated
// account.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

func (s *UserService) GetProfile(ctx context.Context, userID int64) (*ports.ProfileView, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	p := user.Profile
	return &ports.ProfileView{
		Name:       user.FullName,
		Age:        p.Age,
		Location:   p.Location,
		Gender:     p.Gender,
		Skills:     p.Skills,
		Education:  p.Education,
		Experience: p.Experience,
		Interests:  p.Interests,
		Bio:        p.Bio,
	}, nil
}

func (s *UserService) UpdateProfile(ctx context.Context, userID int64, update ports.ProfileUpdate) (*domain.PublicUser, error) {
	user, err := s.repo.UpdateProfile(ctx, userID, update)
	if err != nil {
		return nil, err
	}

	s.log.Info().Int64("user_id", userID).Msg("profile updated")
	return user.Public(), nil
}
