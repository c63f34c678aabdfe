package sessioning

import (
	"errors"
	"fmt"
)

// Tipos de erros de sessão personalizados
var (
	// Erros de autenticação
	ErrInvalidCredentials = errors.New("credenciais inválidas")
	ErrSessionExpired     = errors.New("sessão expirada")
	ErrUserAlreadyExists  = errors.New("usuário já existe")

	// Erros de validação
	ErrInvalidRequest      = errors.New("requisição inválida")
	ErrMissingRequiredData = errors.New("dados obrigatórios ausentes")

	// Erros de comunicação
	ErrServiceUnavailable = errors.New("serviço de autenticação indisponível")
)

// SessionError é um erro com contexto adicional para a sessão
type SessionError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

// Error implementa a interface error
func (e *SessionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *SessionError) Unwrap() error {
	return e.Err
}

// NewSessionError cria um novo erro de sessão
func NewSessionError(baseErr error, code string, details string) *SessionError {
	return &SessionError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// IsCredentialsError verifica se o erro está relacionado a credenciais inválidas
func IsCredentialsError(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsTransportError verifica se o erro está relacionado a falha de comunicação
func IsTransportError(err error) bool {
	return errors.Is(err, ErrServiceUnavailable)
}
