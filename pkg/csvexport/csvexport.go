package csvexport

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"formyap.link/models"
)

// Submitted At sütunundaki zaman biçimi (ISO-8601, milisaniyeli, UTC).
const timeLayout = "2006-01-02T15:04:05.000Z"

// Export bir formun gönderimlerini CSV metnine çevirir. Başlık satırı:
// Submitted At, her alanın etiketi (dosya alanları için ek "<etiket> - File
// URLs" sütunu) ve sonda All Uploaded Files. Tüm çıktı bellekte kurulur.
//
// Alan değerleri her zaman çift tırnak içine alınır, içteki tırnaklar
// ikilenir. Gömülü satır sonları için tırnak dışında ek kaçış yapılmaz.
func Export(form *models.Form, submissions []models.Submission) string {
	var sb strings.Builder

	headers := []string{"Submitted At"}
	for _, field := range form.Fields {
		headers = append(headers, field.Label)
		if field.Type == models.FieldTypeFile {
			headers = append(headers, field.Label+" - File URLs")
		}
	}
	headers = append(headers, "All Uploaded Files")
	sb.WriteString(strings.Join(headers, ","))
	sb.WriteString("\n")

	for _, submission := range submissions {
		data := submission.DataMap()
		row := []string{submission.CreatedAt.UTC().Format(timeLayout)}

		for _, field := range form.Fields {
			value := ""
			if raw, ok := data[field.ID]; ok {
				value = stringify(raw)
			}
			row = append(row, quote(value))

			if field.Type == models.FieldTypeFile {
				row = append(row, quote(fileCell(field.ID, submission.Files)))
			}
		}

		urls := make([]string, 0, len(submission.Files))
		for _, file := range submission.Files {
			urls = append(urls, file.URL)
		}
		row = append(row, quote(strings.Join(urls, " | ")))

		sb.WriteString(strings.Join(row, ","))
		sb.WriteString("\n")
	}

	return sb.String()
}

// Filename form başlığından indirme dosya adı türetir. Başlık olduğu gibi
// kullanılır; ayraç/kontrol karakterleri temizlenmez (gözlemlenen davranış).
func Filename(form *models.Form) string {
	return fmt.Sprintf("form-%s-submissions.csv", form.Title)
}

// fileCell yalnızca ilgili alana etiketlenmiş dosyaları listeler.
func fileCell(fieldID string, files models.SubmissionFileList) string {
	var entries []string
	for _, file := range files {
		if file.FieldID != fieldID {
			continue
		}
		name := file.Filename
		if name == "" {
			name = "Unknown file"
		}
		size := "Unknown size"
		if file.Size > 0 {
			size = fmt.Sprintf("%.1fKB", float64(file.Size)/1024)
		}
		entries = append(entries, fmt.Sprintf("%s (%s): %s", name, size, file.URL))
	}
	return strings.Join(entries, " | ")
}

func quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

// stringify payload değerini CSV hücresine uygun düz metne çevirir.
// Listeler virgülle birleştirilir (çoklu checkbox değerleri). false, 0 ve
// null boş hücreye düşer; eksik değerle aynı görünürler (gözlemlenen
// davranış).
func stringify(value interface{}) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		if !v {
			return ""
		}
		return "true"
	case float64:
		if v == 0 {
			return ""
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = stringify(item)
		}
		return strings.Join(parts, ",")
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(b)
	}
}
