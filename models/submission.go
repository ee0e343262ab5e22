package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
)

// SubmissionFile bir gönderime eklenmiş tek dosyanın medya sunucusundaki kaydı.
type SubmissionFile struct {
	FieldID  string `json:"fieldId"`
	Filename string `json:"filename"`
	URL      string `json:"url"`
	Size     int64  `json:"size"`
	Mimetype string `json:"mimetype"`
}

// SubmissionFileList JSONB kolonunda tutulan sıralı dosya listesi.
type SubmissionFileList []SubmissionFile

// Value GORM için JSONB serileştirme.
func (l SubmissionFileList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan GORM için JSONB okuma.
func (l *SubmissionFileList) Scan(value interface{}) error {
	if value == nil {
		*l = SubmissionFileList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("SubmissionFileList: desteklenmeyen kolon tipi")
	}
}

// Submission yayınlanmış bir forma verilen tek yanıttır. Intake pipeline
// tarafından bir kez oluşturulur, sonrasında değiştirilemez; yalnızca formu
// silindiğinde cascade ile yok edilir.
type Submission struct {
	BaseModel
	FormID    uint               `gorm:"not null;index" json:"formId"`
	Data      datatypes.JSON     `gorm:"type:jsonb;not null" json:"data"`
	Files     SubmissionFileList `gorm:"type:jsonb;not null;default:'[]'" json:"files"`
	IPAddress string             `gorm:"type:varchar(45)" json:"ipAddress,omitempty"`
	UserAgent string             `gorm:"type:varchar(500)" json:"userAgent,omitempty"`
}

// MarshalJSON orijinal API şekliyle uyum için submittedAt alanını ekler.
func (s Submission) MarshalJSON() ([]byte, error) {
	type alias Submission
	return json.Marshal(struct {
		alias
		SubmittedAt time.Time `json:"submittedAt"`
	}{
		alias:       alias(s),
		SubmittedAt: s.CreatedAt,
	})
}

// DataMap JSONB payload'ı map olarak çözer. Payload bozuksa boş map döner.
func (s *Submission) DataMap() map[string]interface{} {
	out := map[string]interface{}{}
	if len(s.Data) == 0 {
		return out
	}
	_ = json.Unmarshal(s.Data, &out)
	return out
}
