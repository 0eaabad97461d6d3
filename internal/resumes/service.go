package resumes

import (
	"context"
	"errors"
	"unicode/utf8"

	"resume-hub/internal/shared/apperr"
	"resume-hub/internal/shared/identity"
)

// MinContentLength is the minimum number of characters in a new resume.
const MinContentLength = 150

const notFoundMessage = "이력서가 존재하지 않습니다."

// CreateInput is the raw create request.
type CreateInput struct {
	Title   string
	Content string
}

// Service implements resume CRUD scoped to the calling user.
type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(ctx context.Context, owner identity.User, in CreateInput) (Resume, error) {
	switch {
	case in.Title == "":
		return Resume{}, apperr.MissingField("title", "제목을 입력해 주세요.")
	case in.Content == "":
		return Resume{}, apperr.MissingField("content", "자기소개를 입력해 주세요.")
	}
	if utf8.RuneCountInString(in.Content) < MinContentLength {
		return Resume{}, apperr.TooShort("content", "자기소개는 150자 이상 작성해야 합니다.")
	}

	return s.Repo.Create(ctx, Resume{
		UserID:  owner.ID,
		Title:   in.Title,
		Content: in.Content,
		Status:  StatusSubmitted,
	})
}

// List returns the caller's resumes ordered by creation time.
func (s *Service) List(ctx context.Context, owner identity.User, order SortOrder) ([]ListItem, error) {
	return s.Repo.List(ctx, Filter{UserID: owner.ID}, order)
}

func (s *Service) Get(ctx context.Context, owner identity.User, id int64) (Resume, error) {
	resume, err := s.Repo.Find(ctx, Filter{UserID: owner.ID, ID: id})
	return resume, mapNotFound(err)
}

// Update changes the supplied fields only. Empty strings count as absent.
// Content length is checked at creation only.
func (s *Service) Update(ctx context.Context, owner identity.User, id int64, patch Patch) (Resume, error) {
	patch = Patch{Title: presentOrNil(patch.Title), Content: presentOrNil(patch.Content)}
	if patch.Empty() {
		return Resume{}, apperr.MissingField("", "수정할 정보를 입력해 주세요.")
	}
	resume, err := s.Repo.Update(ctx, Filter{UserID: owner.ID, ID: id}, patch)
	return resume, mapNotFound(err)
}

func (s *Service) Delete(ctx context.Context, owner identity.User, id int64) (Resume, error) {
	resume, err := s.Repo.Delete(ctx, Filter{UserID: owner.ID, ID: id})
	return resume, mapNotFound(err)
}

func mapNotFound(err error) error {
	if errors.Is(err, ErrNotFound) {
		return apperr.NotFound(notFoundMessage)
	}
	return err
}

func presentOrNil(v *string) *string {
	if v == nil || *v == "" {
		return nil
	}
	return v
}
