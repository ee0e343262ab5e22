package designer

import (
	"strings"
	"testing"

	"formyap.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedFields(ids ...string) []models.FormField {
	fields := make([]models.FormField, len(ids))
	for i, id := range ids {
		fields[i] = models.FormField{ID: id, Type: models.FieldTypeText, Label: id}
	}
	return fields
}

func TestNewField_Defaults(t *testing.T) {
	field := NewField(models.FieldTypeText)

	assert.True(t, strings.HasPrefix(field.ID, "field_"))
	assert.Equal(t, models.FieldTypeText, field.Type)
	assert.Equal(t, "text Field", field.Label)
	assert.False(t, field.Required)
	assert.Nil(t, field.Options)
}

func TestNewField_SelectGetsDefaultOptions(t *testing.T) {
	for _, ft := range []models.FieldType{models.FieldTypeSelect, models.FieldTypeRadio} {
		field := NewField(ft)
		assert.Equal(t, []string{"Option 1", "Option 2"}, field.Options)
	}
}

func TestNewField_UniqueIDs(t *testing.T) {
	a := NewField(models.FieldTypeText)
	b := NewField(models.FieldTypeText)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestAppendField(t *testing.T) {
	fields := namedFields("a", "b")
	out := AppendField(fields, models.FieldTypeEmail)

	require.Len(t, out, 3)
	assert.Len(t, fields, 2) // orijinal liste değişmez
	assert.Equal(t, models.FieldTypeEmail, out[2].Type)
}

func TestMoveField(t *testing.T) {
	fields := namedFields("a", "b", "c", "d")

	out := MoveField(fields, 0, 2)
	ids := []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID}
	assert.Equal(t, []string{"b", "c", "a", "d"}, ids)

	out = MoveField(fields, 3, 0)
	ids = []string{out[0].ID, out[1].ID, out[2].ID, out[3].ID}
	assert.Equal(t, []string{"d", "a", "b", "c"}, ids)
}

func TestMoveField_InvalidIndices(t *testing.T) {
	fields := namedFields("a", "b")

	assert.Equal(t, fields, MoveField(fields, -1, 1))
	assert.Equal(t, fields, MoveField(fields, 0, 2))
}

func TestShouldCommitMove_SameIndex(t *testing.T) {
	assert.False(t, ShouldCommitMove(1, 1, 50, Rect{Top: 0, Bottom: 100}))
}

func TestShouldCommitMove_DraggingDown(t *testing.T) {
	bounds := Rect{Top: 100, Bottom: 200} // orta nokta 50 (yerel)

	// İşaretçi hedefin üst yarısında; orta nokta geçilmedi, taşıma yok.
	assert.False(t, ShouldCommitMove(0, 1, 120, bounds))
	// Orta nokta geçildi, taşıma işlenir.
	assert.True(t, ShouldCommitMove(0, 1, 180, bounds))
}

func TestShouldCommitMove_DraggingUp(t *testing.T) {
	bounds := Rect{Top: 100, Bottom: 200}

	// Yukarı taşırken işaretçi hedefin alt yarısındaysa beklenir.
	assert.False(t, ShouldCommitMove(2, 1, 180, bounds))
	assert.True(t, ShouldCommitMove(2, 1, 120, bounds))
}

func TestUpdateField(t *testing.T) {
	fields := namedFields("a", "b")
	updated := models.FormField{ID: "b", Type: models.FieldTypeTextarea, Label: "Changed"}

	out := UpdateField(fields, updated)
	assert.Equal(t, "Changed", out[1].Label)
	assert.Equal(t, models.FieldTypeTextarea, out[1].Type)
	assert.Equal(t, "a", out[0].Label) // diğerleri dokunulmaz
}

func TestRemoveField(t *testing.T) {
	fields := namedFields("a", "b", "c")

	out := RemoveField(fields, "b")
	require.Len(t, out, 2)
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, "c", out[1].ID)

	// Eşleşme yoksa liste aynı kalır.
	assert.Len(t, RemoveField(fields, "zzz"), 3)
}
