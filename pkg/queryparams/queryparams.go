package queryparams

// Liste istekleri için varsayılanlar ve üst sınırlar.
const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// ListParams liste uçlarının ortak sorgu parametreleri.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"limit"`
	Status  string `query:"status"`
	Search  string `query:"search"`
}

// Validate parametreleri güvenli aralıklara çeker.
func (p *ListParams) Validate() {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.PerPage < 1 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
}

// CalculateOffset sayfa numarasından SQL offset hesaplar.
func (p *ListParams) CalculateOffset() int {
	return (p.Page - 1) * p.PerPage
}

// CalculateTotalPages toplam kayıt sayısından sayfa sayısını hesaplar:
// pages = ceil(total/perPage).
func CalculateTotalPages(totalCount int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalCount) / perPage
	if int(totalCount)%perPage != 0 {
		pages++
	}
	return pages
}

// PaginationMeta API yanıtlarındaki pagination nesnesi.
type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPaginationMeta parametre ve toplam sayıdan meta üretir.
func NewPaginationMeta(params ListParams, totalCount int64) PaginationMeta {
	return PaginationMeta{
		Page:  params.Page,
		Limit: params.PerPage,
		Total: totalCount,
		Pages: CalculateTotalPages(totalCount, params.PerPage),
	}
}
