package repository

import (
	"context"

	"firefly/internal/models"

	"github.com/jmoiron/sqlx"
)

type UserRepository interface {
	List(ctx context.Context, name string) ([]models.Document, error)
	GetByEmail(ctx context.Context, email string) (models.Document, error)
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	SetAdminRole(ctx context.Context, userID string) (*models.UpdateResult, error)
	SetBadge(ctx context.Context, email string) (*models.UpdateResult, error)
	Delete(ctx context.Context, userID string) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type PostRepository interface {
	ListAll(ctx context.Context) ([]models.Document, error)
	ListByTag(ctx context.Context, tag string) ([]models.Document, error)
	ListByAuthor(ctx context.Context, email string) ([]models.Document, error)
	ListPage(ctx context.Context, page, size int) ([]models.Document, error)
	GetByID(ctx context.Context, postID string) (models.Document, error)
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	UpdateVotes(ctx context.Context, postID string, votes models.Document) (*models.UpdateResult, error)
	Delete(ctx context.Context, postID string) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

type CommentRepository interface {
	ListAll(ctx context.Context) ([]models.Document, error)
	ListByPost(ctx context.Context, postID string) ([]models.Document, error)
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	SetReport(ctx context.Context, commentID string, report interface{}) (*models.UpdateResult, error)
	Delete(ctx context.Context, commentID string) (*models.DeleteResult, error)
	Count(ctx context.Context) (int64, error)
}

type AnnouncementRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
}

type TagRepository interface {
	List(ctx context.Context) ([]models.Document, error)
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, doc models.Document) (*models.InsertResult, error)
	Revenue(ctx context.Context) (float64, error)
	Count(ctx context.Context) (int64, error)
}

type Repository struct {
	User         UserRepository
	Post         PostRepository
	Comment      CommentRepository
	Announcement AnnouncementRepository
	Tag          TagRepository
	Payment      PaymentRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		User:         NewUserRepository(db),
		Post:         NewPostRepository(db),
		Comment:      NewCommentRepository(db),
		Announcement: NewAnnouncementRepository(db),
		Tag:          NewTagRepository(db),
		Payment:      NewPaymentRepository(db),
	}
}
