package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
	"time"

	"formyap.link/models"
	"formyap.link/pkg/useragent"
	"formyap.link/repositories"
)

// Gün anahtarlarının biçimi (UTC raporlama saat dilimi).
const dayLayout = "2006-01-02"

// recentSubmissionCount form analitiğinde dönen son gönderim sayısı.
const recentSubmissionCount = 10

// TimePoint submissionsOverTime serisinin bir noktası.
type TimePoint struct {
	Date        string `json:"date"`
	Submissions int64  `json:"submissions"`
}

// DeviceCount cihaz kırılımının bir dilimi.
type DeviceCount struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// FormAnalytics tek bir formun analitik özeti.
type FormAnalytics struct {
	TotalSubmissions int64 `json:"totalSubmissions"`
	ThisWeek         int64 `json:"thisWeek"`
	// CompletionRate = thisWeek/total oranıdır; adı kaynaktan miras kalan
	// bir tutarsızlıktır (terk/ tamamlama sinyali yoktur) ve formül bilinçli
	// olarak olduğu gibi korunur.
	CompletionRate      string              `json:"completionRate"`
	AvgTime             string              `json:"avgTime"`
	SubmissionsOverTime []TimePoint         `json:"submissionsOverTime"`
	DeviceTypes         []DeviceCount       `json:"deviceTypes"`
	RecentSubmissions   []models.Submission `json:"recentSubmissions"`
}

// ChartPoint dashboard grafiğinin bir günü.
type ChartPoint struct {
	Name        string `json:"name"` // Haftanın günü kısaltması (Sun..Sat)
	Submissions int64  `json:"submissions"`
	Date        string `json:"date"` // YYYY-MM-DD
}

// DashboardAnalytics tüm formların haftalık özeti.
type DashboardAnalytics struct {
	ChartData        []ChartPoint `json:"chartData"`
	TotalThisWeek    int64        `json:"totalThisWeek"`
	PreviousWeek     int64        `json:"previousWeek"`
	GrowthPercentage string       `json:"growthPercentage"`
}

// IAnalyticsService analitik sorguları için arayüz.
type IAnalyticsService interface {
	FormAnalytics(ctx context.Context, formID uint) (*FormAnalytics, error)
	DashboardAnalytics(ctx context.Context) (*DashboardAnalytics, error)
}

// AnalyticsService IAnalyticsService arayüzünü uygular. Zaman, testlerde
// sabitlenebilsin diye enjekte edilir.
type AnalyticsService struct {
	formRepo repositories.IFormRepository
	subRepo  repositories.ISubmissionRepository
	now      func() time.Time
}

// NewAnalyticsService açılış ayarlarına göre depoları kurar.
func NewAnalyticsService() IAnalyticsService {
	return &AnalyticsService{
		formRepo: repositories.NewFormRepository(),
		subRepo:  repositories.NewSubmissionRepository(),
		now:      time.Now,
	}
}

// NewAnalyticsServiceWith verilen bağımlılıklarla servis oluşturur (test için).
func NewAnalyticsServiceWith(formRepo repositories.IFormRepository, subRepo repositories.ISubmissionRepository, now func() time.Time) IAnalyticsService {
	if now == nil {
		now = time.Now
	}
	return &AnalyticsService{formRepo: formRepo, subRepo: subRepo, now: now}
}

// FormAnalytics tek formun özetini üretir. submissionsOverTime yalnızca
// gönderimi olan günleri içerir; sıfır doldurma yapılmaz (dashboard'un
// aksine).
func (s *AnalyticsService) FormAnalytics(ctx context.Context, formID uint) (*FormAnalytics, error) {
	if _, err := s.formRepo.FindByID(ctx, formID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrFormNotFound
		}
		return nil, err
	}

	now := s.now().UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	thirtyDaysAgo := now.Add(-30 * 24 * time.Hour)

	total, err := s.subRepo.CountByForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	thisWeek, err := s.subRepo.CountByFormSince(ctx, formID, weekAgo)
	if err != nil {
		return nil, err
	}

	byDay, err := s.subRepo.AggregateByDay(ctx, formID, thirtyDaysAgo)
	if err != nil {
		return nil, err
	}
	overTime := make([]TimePoint, 0, len(byDay))
	for day, count := range byDay {
		overTime = append(overTime, TimePoint{Date: day, Submissions: count})
	}
	sort.Slice(overTime, func(i, j int) bool { return overTime[i].Date < overTime[j].Date })

	all, err := s.subRepo.FindAllByForm(ctx, formID)
	if err != nil {
		return nil, err
	}
	deviceTypes := classifyDevices(all)

	recent, err := s.subRepo.FindRecentByForm(ctx, formID, recentSubmissionCount)
	if err != nil {
		return nil, err
	}

	completionRate := "0%"
	if total > 0 {
		completionRate = fmt.Sprintf("%d%%", int(math.Round(float64(thisWeek)/float64(total)*100)))
	}

	return &FormAnalytics{
		TotalSubmissions:    total,
		ThisWeek:            thisWeek,
		CompletionRate:      completionRate,
		AvgTime:             "1m", // Süre ölçümü toplanmıyor; sabit yer tutucu
		SubmissionsOverTime: overTime,
		DeviceTypes:         deviceTypes,
		RecentSubmissions:   recent,
	}, nil
}

// DashboardAnalytics son 7 takvim gününün grafiğini üretir. Form bazlı
// serinin aksine gönderimi olmayan günler sıfırla doldurulur.
func (s *AnalyticsService) DashboardAnalytics(ctx context.Context) (*DashboardAnalytics, error) {
	now := s.now().UTC()
	weekAgo := now.Add(-7 * 24 * time.Hour)
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour)

	byDay, err := s.subRepo.AggregateByDay(ctx, 0, weekAgo)
	if err != nil {
		return nil, err
	}

	chartData := make([]ChartPoint, 0, 7)
	var totalThisWeek int64
	for i := 6; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		key := day.Format(dayLayout)
		count := byDay[key]
		chartData = append(chartData, ChartPoint{
			Name:        day.Weekday().String()[:3],
			Submissions: count,
			Date:        key,
		})
		totalThisWeek += count
	}

	previousWeek, err := s.subRepo.CountBetween(ctx, twoWeeksAgo, weekAgo)
	if err != nil {
		return nil, err
	}

	return &DashboardAnalytics{
		ChartData:        chartData,
		TotalThisWeek:    totalThisWeek,
		PreviousWeek:     previousWeek,
		GrowthPercentage: FormatGrowth(totalThisWeek, previousWeek),
	}, nil
}

// FormatGrowth haftalık büyüme yüzdesini biçimler. Önceki hafta sıfırken bu
// hafta gönderim varsa +100% kabul edilir; iki hafta da sıfırsa işaretsiz
// "0%" döner. Negatif olmayan değerler "+" ile öne eklenir.
func FormatGrowth(totalThisWeek, previousWeek int64) string {
	if previousWeek == 0 && totalThisWeek == 0 {
		return "0%"
	}
	growth := 100
	if previousWeek > 0 {
		growth = int(math.Round(float64(totalThisWeek-previousWeek) / float64(previousWeek) * 100))
	}
	if growth >= 0 {
		return fmt.Sprintf("+%d%%", growth)
	}
	return fmt.Sprintf("%d%%", growth)
}

// classifyDevices gönderimlerin user-agent'larını cihaz sınıflarına ayırır.
// Sonuç sabit sırada (Desktop, Mobile, Tablet, Unknown) ve yalnızca sıfırdan
// büyük dilimlerle döner.
func classifyDevices(submissions []models.Submission) []DeviceCount {
	counts := map[useragent.DeviceType]int64{}
	for _, submission := range submissions {
		counts[useragent.Classify(submission.UserAgent)]++
	}

	order := []useragent.DeviceType{
		useragent.DeviceDesktop,
		useragent.DeviceMobile,
		useragent.DeviceTablet,
		useragent.DeviceUnknown,
	}
	out := make([]DeviceCount, 0, len(order))
	for _, device := range order {
		if counts[device] > 0 {
			out = append(out, DeviceCount{Name: string(device), Value: counts[device]})
		}
	}
	return out
}

var _ IAnalyticsService = (*AnalyticsService)(nil)
