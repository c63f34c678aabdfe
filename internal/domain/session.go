package domain

// User representa o perfil do usuário autenticado retornado pela API de autenticação
type User struct {
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

// Session representa o estado de identidade do usuário atual.
// Invariante: User presente implica Token presente (o contrário não vale,
// um token persistido pode existir aguardando validação).
type Session struct {
	Token string `json:"token,omitempty"`
	User  *User  `json:"user,omitempty"`
}

// IsAuthenticated indica se existe um token em memória.
// Não faz nenhuma verificação de rede.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}
