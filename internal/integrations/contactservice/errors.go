package contactservice

import "errors"

var (
	// ErrContactNotFound возвращается, когда контакт не найден
	ErrContactNotFound = errors.New("contactservice client: contact not found")

	// ErrInvalidContact возвращается, когда ContactService отклонил данные контакта
	ErrInvalidContact = errors.New("contactservice client: invalid contact data")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("contactservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("contactservice client: invalid response")
)
