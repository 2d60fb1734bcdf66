package handlers

import (
	"firefly/internal/config"
	"firefly/internal/repository"
	"firefly/internal/service"

	"github.com/go-playground/validator/v10"
)

type Handlers struct {
	UserRepo         repository.UserRepository
	PostRepo         repository.PostRepository
	CommentRepo      repository.CommentRepository
	AnnouncementRepo repository.AnnouncementRepository
	TagRepo          repository.TagRepository
	PaymentRepo      repository.PaymentRepository
	TokenService     service.TokenService
	PaymentService   service.PaymentService
	Cfg              *config.Config
	Validate         *validator.Validate
}

func NewHandlers(repo *repository.Repository, services *service.Service, config *config.Config) *Handlers {
	return &Handlers{
		UserRepo:         repo.User,
		PostRepo:         repo.Post,
		CommentRepo:      repo.Comment,
		AnnouncementRepo: repo.Announcement,
		TagRepo:          repo.Tag,
		PaymentRepo:      repo.Payment,
		TokenService:     services.Token,
		PaymentService:   services.Payment,
		Cfg:              config,
		Validate:         validator.New(),
	}
}
