package repositories

import (
	"context"
	"time"

	"formyap.link/models"
	"formyap.link/pkg/queryparams"
)

// MemoryFormRepository IFormRepository arayüzünü bellek deposu üzerinde
// uygular.
type MemoryFormRepository struct {
	store *MemoryStore
}

// NewMemoryFormRepository verilen depoyla çalışan form deposu oluşturur.
func NewMemoryFormRepository(store *MemoryStore) IFormRepository {
	return &MemoryFormRepository{store: store}
}

func (r *MemoryFormRepository) Create(_ context.Context, form *models.Form) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	form.ID = s.nextFormID
	s.nextFormID++
	form.CreatedAt = now
	form.UpdatedAt = now
	s.forms[form.ID] = *form
	return nil
}

func (r *MemoryFormRepository) FindByID(_ context.Context, id uint) (*models.Form, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.forms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &form, nil
}

func (r *MemoryFormRepository) FindAllPaginated(_ context.Context, params queryparams.ListParams) ([]models.Form, int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	filtered := make([]models.Form, 0)
	for _, form := range s.sortedForms() {
		if params.Status != "" && string(form.Status) != params.Status {
			continue
		}
		if !matchesSearch(form, params.Search) {
			continue
		}
		filtered = append(filtered, form)
	}

	total := int64(len(filtered))
	page := paginate(filtered, params.CalculateOffset(), params.PerPage)
	return page, total, nil
}

func (r *MemoryFormRepository) Update(_ context.Context, form *models.Form) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.forms[form.ID]
	if !ok {
		return ErrNotFound
	}
	form.CreatedAt = existing.CreatedAt
	form.UpdatedAt = time.Now().UTC()
	s.forms[form.ID] = *form
	return nil
}

// Delete formu ve gönderimlerini birlikte siler; kilit tek olduğu için
// cascade tutarlıdır.
func (r *MemoryFormRepository) Delete(ctx context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	if _, ok := s.forms[id]; !ok {
		s.mu.Unlock()
		return ErrNotFound
	}
	delete(s.forms, id)
	s.mu.Unlock()

	// Cascade, gönderim deposunun kendi silme operasyonuyla yürütülür;
	// kilit orada yeniden alınır.
	return NewMemorySubmissionRepository(s).DeleteAllForForm(ctx, id)
}

func (r *MemoryFormRepository) IncrementSubmissionCount(_ context.Context, id uint) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	form, ok := s.forms[id]
	if !ok {
		return ErrNotFound
	}
	form.SubmissionCount++
	form.UpdatedAt = time.Now().UTC()
	s.forms[id] = form
	return nil
}

func (r *MemoryFormRepository) Count(_ context.Context) (int64, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.forms)), nil
}

var _ IFormRepository = (*MemoryFormRepository)(nil)
