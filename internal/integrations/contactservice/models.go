package contactservice

// Contact модель контакта из ContactService
type Contact struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// EnsureContactRequest запрос на поиск или создание контакта
// ContactService ищет контакт по email и создает новый, если не нашел
type EnsureContactRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone,omitempty"`
}

// ErrorResponse модель ошибки от ContactService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
