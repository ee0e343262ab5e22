package useragent

import "strings"

// DeviceType user-agent'tan türetilen cihaz sınıfı.
type DeviceType string

const (
	DeviceDesktop DeviceType = "Desktop"
	DeviceMobile  DeviceType = "Mobile"
	DeviceTablet  DeviceType = "Tablet"
	DeviceUnknown DeviceType = "Unknown"
)

var mobileMarkers = []string{"Mobile", "Android", "iPhone", "iPad"}
var tabletMarkers = []string{"iPad", "Tablet"}

// Classify user-agent metnini alt dizgi eşleşmesiyle sınıflar.
// Tablet kontrolü mobile'dan önce yapılır; iPad iki kalıba da uyar.
func Classify(userAgent string) DeviceType {
	if containsAny(userAgent, tabletMarkers) {
		return DeviceTablet
	}
	if containsAny(userAgent, mobileMarkers) {
		return DeviceMobile
	}
	if strings.TrimSpace(userAgent) != "" {
		return DeviceDesktop
	}
	return DeviceUnknown
}

func containsAny(s string, markers []string) bool {
	for _, marker := range markers {
		if strings.Contains(s, marker) {
			return true
		}
	}
	return false
}
