package repositories

import (
	"context"
	"errors"
	"time"

	"formyap.link/models"
	"formyap.link/pkg/queryparams"
)

// MemorySubmissionRepository ISubmissionRepository arayüzünü bellek deposu
// üzerinde uygular.
type MemorySubmissionRepository struct {
	store *MemoryStore
}

// NewMemorySubmissionRepository verilen depoyla çalışan gönderim deposu
// oluşturur.
func NewMemorySubmissionRepository(store *MemoryStore) ISubmissionRepository {
	return &MemorySubmissionRepository{store: store}
}

func (r *MemorySubmissionRepository) Create(_ context.Context, submission *models.Submission) error {
	if submission == nil || submission.FormID == 0 {
		return errors.New("geçersiz gönderim: form referansı zorunlu")
	}
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	submission.ID = s.nextSubID
	s.nextSubID++
	submission.CreatedAt = now
	submission.UpdatedAt = now
	s.submissions[submission.ID] = *submission
	return nil
}

func (r *MemorySubmissionRepository) FindByFormPaginated(_ context.Context, formID uint, params queryparams.ListParams) ([]models.Submission, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.sortedSubmissionsByForm(formID)
	total := int64(len(all))
	page := paginate(all, params.CalculateOffset(), params.PerPage)
	return page, total, nil
}

func (r *MemorySubmissionRepository) FindAllByForm(_ context.Context, formID uint) ([]models.Submission, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sortedSubmissionsByForm(formID), nil
}

func (r *MemorySubmissionRepository) FindRecentByForm(_ context.Context, formID uint, limit int) ([]models.Submission, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	all := s.sortedSubmissionsByForm(formID)
	if len(all) > limit {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemorySubmissionRepository) CountByForm(_ context.Context, formID uint) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, submission := range s.submissions {
		if submission.FormID == formID {
			count++
		}
	}
	return count, nil
}

func (r *MemorySubmissionRepository) CountByFormSince(_ context.Context, formID uint, since time.Time) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, submission := range s.submissions {
		if submission.FormID == formID && !submission.CreatedAt.Before(since) {
			count++
		}
	}
	return count, nil
}

func (r *MemorySubmissionRepository) CountBetween(_ context.Context, start, end time.Time) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	var count int64
	for _, submission := range s.submissions {
		if !submission.CreatedAt.Before(start) && submission.CreatedAt.Before(end) {
			count++
		}
	}
	return count, nil
}

func (r *MemorySubmissionRepository) AggregateByDay(_ context.Context, formID uint, since time.Time) (map[string]int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	result := make(map[string]int64)
	for _, submission := range s.submissions {
		if formID != 0 && submission.FormID != formID {
			continue
		}
		if submission.CreatedAt.Before(since) {
			continue
		}
		result[dayKey(submission.CreatedAt)]++
	}
	return result, nil
}

func (r *MemorySubmissionRepository) DeleteAllForForm(_ context.Context, formID uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, submission := range s.submissions {
		if submission.FormID == formID {
			delete(s.submissions, id)
		}
	}
	return nil
}

var _ ISubmissionRepository = (*MemorySubmissionRepository)(nil)
