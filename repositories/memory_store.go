package repositories

import (
	"sort"
	"strings"
	"sync"
	"time"

	"formyap.link/models"
)

// MemoryStore bellek-içi veri kaynağıdır. Backend'e veritabanı olmadan
// ayağa kalkma imkânı verir (DATA_SOURCE=memory); testlerde de depo
// sözleşmesinin hızlı bir gerçeklemesi olarak kullanılır. Tüm erişim tek
// mutex ile korunur; sayaç artırımı kilit altında yapıldığı için atomiktir.
type MemoryStore struct {
	mu          sync.Mutex
	forms       map[uint]models.Form
	submissions map[uint]models.Submission
	nextFormID  uint
	nextSubID   uint
}

// NewMemoryStore boş bir bellek deposu oluşturur.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		forms:       make(map[uint]models.Form),
		submissions: make(map[uint]models.Submission),
		nextFormID:  1,
		nextSubID:   1,
	}
}

var (
	memoryStoreOnce sync.Once
	memoryStore     *MemoryStore
)

// sharedMemoryStore uygulama genelinde tek bellek deposu döndürür; form ve
// gönderim depoları cascade silmenin tutarlı olması için aynı depoyu paylaşır.
func sharedMemoryStore() *MemoryStore {
	memoryStoreOnce.Do(func() {
		memoryStore = NewMemoryStore()
	})
	return memoryStore
}

// --- Yardımcılar (çağıran kilidi tutuyor olmalı) ---

func (s *MemoryStore) sortedForms() []models.Form {
	forms := make([]models.Form, 0, len(s.forms))
	for _, form := range s.forms {
		forms = append(forms, form)
	}
	// En yeniden eskiye; eşit zaman damgalarında büyük id önce gelir.
	sort.Slice(forms, func(i, j int) bool {
		if forms[i].CreatedAt.Equal(forms[j].CreatedAt) {
			return forms[i].ID > forms[j].ID
		}
		return forms[i].CreatedAt.After(forms[j].CreatedAt)
	})
	return forms
}

func (s *MemoryStore) sortedSubmissionsByForm(formID uint) []models.Submission {
	submissions := make([]models.Submission, 0)
	for _, submission := range s.submissions {
		if submission.FormID == formID {
			submissions = append(submissions, submission)
		}
	}
	sort.Slice(submissions, func(i, j int) bool {
		if submissions[i].CreatedAt.Equal(submissions[j].CreatedAt) {
			return submissions[i].ID > submissions[j].ID
		}
		return submissions[i].CreatedAt.After(submissions[j].CreatedAt)
	})
	return submissions
}

func matchesSearch(form models.Form, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(term)
	return strings.Contains(strings.ToLower(form.Title), lower) ||
		strings.Contains(strings.ToLower(form.Description), lower)
}

func paginate[T any](items []T, offset, limit int) []T {
	if offset >= len(items) {
		return []T{}
	}
	end := offset + limit
	if end > len(items) {
		end = len(items)
	}
	out := make([]T, end-offset)
	copy(out, items[offset:end])
	return out
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
