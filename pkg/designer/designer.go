// Package designer form tasarımcısının UI'dan bağımsız mantığını içerir:
// paletten alan üretme, sıralı listede taşıma ve sürükleme sırasında
// taşımanın ne zaman işleneceğine karar veren orta-nokta testi.
package designer

import (
	"fmt"

	"github.com/google/uuid"

	"formyap.link/models"
)

// PaletteEntry palette görünen bir alan türü.
type PaletteEntry struct {
	Type  models.FieldType
	Label string
}

// Palette tasarımcı paletindeki alan türleri, görünüm sırasıyla.
var Palette = []PaletteEntry{
	{Type: models.FieldTypeText, Label: "Text Input"},
	{Type: models.FieldTypeEmail, Label: "Email"},
	{Type: models.FieldTypeSelect, Label: "Select"},
	{Type: models.FieldTypeCheckbox, Label: "Checkbox"},
	{Type: models.FieldTypeRadio, Label: "Radio"},
	{Type: models.FieldTypeTextarea, Label: "Text Area"},
	{Type: models.FieldTypeFile, Label: "File Upload"},
}

// NewField paletten bırakılan tür için üretilen id ve türe uygun
// varsayılanlarla yeni bir alan döndürür. select/radio iki yer tutucu
// seçenekle başlar; aksi halde render edilen form kullanılamaz olur.
func NewField(fieldType models.FieldType) models.FormField {
	field := models.FormField{
		ID:          fmt.Sprintf("field_%s", uuid.NewString()),
		Type:        fieldType,
		Label:       fmt.Sprintf("%s Field", fieldType),
		Placeholder: "",
		Required:    false,
	}
	if fieldType == models.FieldTypeSelect || fieldType == models.FieldTypeRadio {
		field.Options = []string{"Option 1", "Option 2"}
	}
	return field
}

// AppendField paletten bırakılan alanı listenin sonuna ekler.
func AppendField(fields []models.FormField, fieldType models.FieldType) []models.FormField {
	out := make([]models.FormField, 0, len(fields)+1)
	out = append(out, fields...)
	return append(out, NewField(fieldType))
}

// MoveField sürüklenen alanı çıkarıp hedef indekse yeniden ekler.
// İndekslerden biri geçersizse liste değişmeden döner.
func MoveField(fields []models.FormField, dragIndex, hoverIndex int) []models.FormField {
	if dragIndex < 0 || dragIndex >= len(fields) || hoverIndex < 0 || hoverIndex >= len(fields) {
		return fields
	}
	out := make([]models.FormField, 0, len(fields))
	out = append(out, fields...)
	dragged := out[dragIndex]
	out = append(out[:dragIndex], out[dragIndex+1:]...)
	out = append(out[:hoverIndex], append([]models.FormField{dragged}, out[hoverIndex:]...)...)
	return out
}

// Rect hedef alanın dikey sınırları (ekran koordinatında).
type Rect struct {
	Top    float64
	Bottom float64
}

// ShouldCommitMove sürükleme sırasında taşımanın işlenip işlenmeyeceğine
// karar verir. Taşıma yalnızca işaretçi hedefin dikey orta noktasını
// geçtiğinde işlenir: aşağı sürüklerken orta noktanın altına, yukarı
// sürüklerken üstüne geçilmeden taşıma yapılmaz. Bu, hızlı indeks
// salınımını engeller.
func ShouldCommitMove(dragIndex, hoverIndex int, pointerY float64, hoverBounds Rect) bool {
	if dragIndex == hoverIndex {
		return false
	}

	hoverMiddleY := (hoverBounds.Bottom - hoverBounds.Top) / 2
	hoverClientY := pointerY - hoverBounds.Top

	// Aşağı taşınıyor ama orta nokta henüz geçilmedi.
	if dragIndex < hoverIndex && hoverClientY < hoverMiddleY {
		return false
	}
	// Yukarı taşınıyor ama orta nokta henüz geçilmedi.
	if dragIndex > hoverIndex && hoverClientY > hoverMiddleY {
		return false
	}
	return true
}

// UpdateField id eşleşen alanı yenisiyle değiştirip tüm listeyi döndürür
// (fark çıkarma yapılmaz, konfigüratör listeyi bütün olarak yayınlar).
func UpdateField(fields []models.FormField, updated models.FormField) []models.FormField {
	out := make([]models.FormField, len(fields))
	for i, field := range fields {
		if field.ID == updated.ID {
			out[i] = updated
		} else {
			out[i] = field
		}
	}
	return out
}

// RemoveField id eşleşen alanı listeden çıkarır.
func RemoveField(fields []models.FormField, fieldID string) []models.FormField {
	out := make([]models.FormField, 0, len(fields))
	for _, field := range fields {
		if field.ID != fieldID {
			out = append(out, field)
		}
	}
	return out
}
