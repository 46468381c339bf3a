package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"campus_match/internal/logger"
	"campus_match/internal/metrics"
	"campus_match/internal/models"
	"campus_match/internal/repository"
	"campus_match/internal/storage"
)

// RegistrationInput is the sign-up form.
type RegistrationInput struct {
	Name        string `json:"name" form:"name" validate:"required,notblank,max=100"`
	Email       string `json:"email" form:"email" validate:"required,email,max=100"`
	Password    string `json:"password" form:"password" validate:"required,notblank,bcryptmax"`
	College     string `json:"college" form:"college" validate:"required,notblank,max=100"`
	Bio         string `json:"bio" form:"bio" validate:"max=300"`
	Contact     string `json:"contact" form:"contact" validate:"max=100"`
	InterestIDs []int  `json:"interests" form:"interests"`
}

// Upload is an optional profile picture.
type Upload struct {
	Filename string
	Size     int64 // -1 when unknown
	Content  io.Reader
}

type RegistrationService struct {
	users    repository.UserRepo
	store    storage.Store
	activity ActivityRecorder
	metrics  *metrics.Metrics
	log      *logger.Logger
}

func NewRegistrationService(users repository.UserRepo, store storage.Store, activity ActivityRecorder, m *metrics.Metrics, log *logger.Logger) *RegistrationService {
	if log == nil {
		log = logger.Nop()
	}
	return &RegistrationService{users: users, store: store, activity: activity, metrics: m, log: log}
}

// Register validates in, stores the optional picture and creates the account
// together with its interest links.
func (s *RegistrationService) Register(ctx context.Context, in RegistrationInput, pic *Upload) (models.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.College = strings.TrimSpace(in.College)
	in.Bio = strings.TrimSpace(in.Bio)
	in.Contact = strings.TrimSpace(in.Contact)

	if err := validateStruct(in); err != nil {
		s.metrics.IncRegistration(metrics.ResultInvalid)
		return models.User{}, err
	}

	existing, err := s.users.GetByEmail(ctx, in.Email)
	if err != nil {
		return models.User{}, fmt.Errorf("check email: %w", err)
	}
	if existing != nil {
		s.metrics.IncRegistration(metrics.ResultDuplicate)
		return models.User{}, ErrDuplicateEmail
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return models.User{}, err
	}

	key, err := s.storePicture(ctx, pic)
	if err != nil {
		return models.User{}, err
	}

	id, err := s.users.Create(ctx, repository.NewUser{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		College:      in.College,
		Bio:          in.Bio,
		ContactInfo:  in.Contact,
		ProfilePic:   key,
		InterestIDs:  uniquePositive(in.InterestIDs),
	})
	if err != nil {
		s.discardPicture(ctx, key)
		if errors.Is(err, repository.ErrDuplicateEmail) {
			s.metrics.IncRegistration(metrics.ResultDuplicate)
			return models.User{}, ErrDuplicateEmail
		}
		s.metrics.IncRegistration(metrics.ResultFailure)
		return models.User{}, fmt.Errorf("create user: %w", err)
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("reload user %d: %w", id, err)
	}
	if u == nil {
		return models.User{}, fmt.Errorf("user %d vanished after create", id)
	}

	s.metrics.IncRegistration(metrics.ResultSuccess)
	s.activity.Record(ctx, models.ActivityEvent{
		UserID:      id,
		Type:        models.ActivityRegister,
		Description: "Account created",
		Metadata:    map[string]any{"college": in.College, "interests": len(u.Interests)},
	})
	return *u, nil
}

func (s *RegistrationService) storePicture(ctx context.Context, pic *Upload) (string, error) {
	if pic == nil || pic.Content == nil || s.store == nil {
		return "", nil
	}
	key, err := s.store.Save(ctx, pic.Filename, pic.Content, pic.Size)
	if errors.Is(err, storage.ErrEmptyName) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("store profile picture: %w", err)
	}
	return key, nil
}

func (s *RegistrationService) discardPicture(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.store.Remove(ctx, key); err != nil {
		s.log.Warnw("profile_pic_cleanup_failed", "key", key, "err", err)
	}
}

// uniquePositive drops duplicates and non-positive ids, keeping first-seen order.
func uniquePositive(ids []int) []int {
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if id <= 0 {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
