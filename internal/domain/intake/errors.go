package intake

import "errors"

var (
	// ErrInvalidDraft é a raiz de todo erro de validação de rascunho
	ErrInvalidDraft = errors.New("pesquisa inválida")

	ErrFirstStep          = errors.New("já está na primeira etapa")
	ErrLastStep           = errors.New("última etapa: a pesquisa deve ser enviada")
	ErrReferralNotAllowed = errors.New("indicações só são aceitas com NPS a partir de 7 e opção de indicar marcada")
)

// ValidationError descreve o campo que impede o avanço ou o envio
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidDraft
}

func invalid(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}
