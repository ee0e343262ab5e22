package api

import (
	"fmt"
	"mime/multipart"
	"sort"
	"strings"

	"formyap.link/configs"
	"formyap.link/pkg/queryparams"
	"formyap.link/services"

	"github.com/gofiber/fiber/v2"
)

// SubmissionHandler gönderim alma, listeleme ve dışa aktarma uç noktaları.
type SubmissionHandler struct {
	submissionService services.ISubmissionService
}

// NewSubmissionHandler yeni bir SubmissionHandler örneği oluşturur.
func NewSubmissionHandler() *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: services.NewSubmissionService(),
	}
}

// NewSubmissionHandlerWith testler için servis enjeksiyonuna izin verir.
func NewSubmissionHandlerWith(submissionService services.ISubmissionService) *SubmissionHandler {
	return &SubmissionHandler{submissionService: submissionService}
}

// CreateSubmission (POST /api/forms/:id/submissions)
// Hem düz JSON gövdeyi hem de dosyalı multipart gönderimi kabul eder.
// Multipart alanlarında alan adı, dosyanın ait olduğu form alanının ID'sidir.
func (h *SubmissionHandler) CreateSubmission(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	data, files, perr := parseSubmissionBody(c)
	if perr != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": perr.message})
	}
	defer closeIncomingFiles(files)

	meta := services.RequestMeta{
		IPAddress: c.IP(),
		UserAgent: c.Get("User-Agent"),
	}

	submission, err := h.submissionService.SubmitForm(c.UserContext(), id, data, files, meta)
	if err != nil {
		return handleServiceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(submission)
}

// ListSubmissions (GET /api/forms/:id/submissions)
func (h *SubmissionHandler) ListSubmissions(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	var params queryparams.ListParams
	if err := c.QueryParser(&params); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid query parameters"})
	}
	// Gönderim listesi form listesinden daha geniş bir varsayılan kullanır.
	if params.PerPage <= 0 {
		params.PerPage = 50
	}
	params.Validate()

	submissions, meta, err := h.submissionService.GetSubmissionsPaginated(c.UserContext(), id, params)
	if err != nil {
		return handleServiceError(c, err)
	}

	return c.JSON(fiber.Map{
		"submissions": submissions,
		"pagination":  meta,
	})
}

// ExportSubmissions (GET /api/forms/:id/export)
// Formun tüm gönderimlerini CSV dosyası olarak indirir.
func (h *SubmissionHandler) ExportSubmissions(c *fiber.Ctx) error {
	id, err := parseFormID(c)
	if err != nil {
		return handleServiceError(c, err)
	}

	csv, filename, err := h.submissionService.ExportSubmissions(c.UserContext(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.SendString(csv)
}

// parseError 400 olarak yanıtlanacak gövde hatası.
type parseError struct {
	message string
}

func (e *parseError) Error() string { return e.message }

// parseSubmissionBody istek gövdesini data haritası ve dosya listesine çözer.
// Multipart isteklerde metin alanları data'ya, dosyalar files'a gider;
// JSON isteklerde gövde olduğu gibi data olur.
func parseSubmissionBody(c *fiber.Ctx) (map[string]interface{}, []services.IncomingFile, *parseError) {
	contentType := c.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		data := map[string]interface{}{}
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&data); err != nil {
				return nil, nil, &parseError{message: "Invalid request body"}
			}
		}
		return data, nil, nil
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, nil, &parseError{message: "Invalid request body"}
	}

	data := make(map[string]interface{}, len(form.Value))
	for key, values := range form.Value {
		if len(values) == 1 {
			data[key] = values[0]
			continue
		}
		list := make([]interface{}, len(values))
		for i, v := range values {
			list[i] = v
		}
		data[key] = list
	}

	cfg := configs.GetConfig()
	maxSize := int64(cfg.MaxUploadSizeMB) * 1024 * 1024

	// form.File bir map; gezinme sırası rastgele. Gönderimin dosya listesi
	// sıralı tutulduğundan alan adına göre kararlı sıra kurulur.
	fieldKeys := make([]string, 0, len(form.File))
	for fieldID := range form.File {
		fieldKeys = append(fieldKeys, fieldID)
	}
	sort.Strings(fieldKeys)

	var headers []*multipart.FileHeader
	fieldIDs := []string{}
	for _, fieldID := range fieldKeys {
		for _, fh := range form.File[fieldID] {
			headers = append(headers, fh)
			fieldIDs = append(fieldIDs, fieldID)
		}
	}
	if len(headers) > cfg.MaxUploadFiles {
		return nil, nil, &parseError{message: "Too many files"}
	}

	files := make([]services.IncomingFile, 0, len(headers))
	for i, fh := range headers {
		if fh.Size > maxSize {
			closeIncomingFiles(files)
			return nil, nil, &parseError{message: "File too large"}
		}
		content, openErr := fh.Open()
		if openErr != nil {
			closeIncomingFiles(files)
			return nil, nil, &parseError{message: "Invalid request body"}
		}
		files = append(files, services.IncomingFile{
			FieldID:  fieldIDs[i],
			Filename: fh.Filename,
			Size:     fh.Size,
			Mimetype: fh.Header.Get(fiber.HeaderContentType),
			Content:  content,
		})
	}
	return data, files, nil
}

func closeIncomingFiles(files []services.IncomingFile) {
	for _, f := range files {
		if closer, ok := f.Content.(interface{ Close() error }); ok {
			_ = closer.Close()
		}
	}
}
