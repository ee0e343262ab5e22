package useragent

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      DeviceType
	}{
		{"desktop chrome", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) Chrome/120.0", DeviceDesktop},
		{"android phone", "Mozilla/5.0 (Linux; Android 14; Pixel 8) Mobile Safari/537.36", DeviceMobile},
		{"iphone", "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)", DeviceMobile},
		{"android tablet", "Mozilla/5.0 (Linux; Android 13; SM-X200) Tablet Safari", DeviceTablet},
		{"empty", "", DeviceUnknown},
		{"whitespace only", "   ", DeviceUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.userAgent))
		})
	}
}

// iPad hem mobil hem tablet kalıbına uyar; tablet kontrolü önce geldiği
// için Tablet olarak sınıflanmalıdır.
func TestClassify_IPadIsTablet(t *testing.T) {
	ua := "Mozilla/5.0 (iPad; CPU OS 17_0 like Mac OS X)"
	assert.Equal(t, DeviceTablet, Classify(ua))
}
