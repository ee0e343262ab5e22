package services

import "formyap.link/pkg/validation"

// ValidationError payload doğrulaması başarısız olduğunda tüm ihlalleri
// birlikte taşır; handler 400 yanıtındaki details listesine çevirir.
type ValidationError struct {
	Details []validation.Detail
}

func (e *ValidationError) Error() string {
	return "Validation failed"
}

// NewValidationError ihlal listesinden hata oluşturur.
func NewValidationError(details []validation.Detail) *ValidationError {
	return &ValidationError{Details: details}
}
