// Package sessioning mantém o estado de autenticação do usuário atual:
// token e perfil em memória, semeados do armazenamento persistente na
// construção e atualizados a cada login, logout ou expiração.
package sessioning

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pkg/errors"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/integrator/authapi"
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/sales-dashboard-api/pkg/kvstore"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

const (
	tokenKey = "auth_token_v1"
	userKey  = "auth_user_v1"
)

type SessionStore interface {
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	Register(ctx context.Context, email, password string) (*domain.Session, error)
	Me(ctx context.Context) (*domain.User, error)
	Logout()
	IsAuthenticated() bool
	Token() string
	User() *domain.User
	OnExpired(fn func())
	HandleUnauthorized()
}

type Service struct {
	client authapi.Client
	state  *kvstore.Store

	mu       sync.Mutex
	session  domain.Session
	onExpiry []func()
}

// NewService cria o store de sessão, restaurando a sessão persistida.
// A restauração é otimista: o token só é descartado na partida se o seu
// prazo de expiração já passou; qualquer outra validação acontece na
// primeira chamada protegida que falhar.
func NewService(client authapi.Client, state *kvstore.Store) SessionStore {
	s := &Service{
		client: client,
		state:  state,
	}

	token := kvstore.GetJSON(state, tokenKey, "")
	if token != "" && tokenExpired(token) {
		log.L.Info("Token persistido expirado, descartando sessão anterior")
		state.Delete(tokenKey)
		state.Delete(userKey)
		token = ""
	}

	s.session.Token = token
	if token != "" {
		// Usuário sem token não é restaurado (invariante user => token)
		s.session.User = kvstore.GetJSON[*domain.User](state, userKey, nil)
	}

	return s
}

func (s *Service) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, NewSessionError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	response, err := s.client.Login(ctx, handleEmail(email), password)
	if err != nil {
		return nil, classifyAuthError(err, false)
	}

	return s.acceptSession(response), nil
}

func (s *Service) Register(ctx context.Context, email, password string) (*domain.Session, error) {
	if email == "" || password == "" {
		return nil, NewSessionError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	response, err := s.client.Register(ctx, handleEmail(email), password)
	if err != nil {
		return nil, classifyAuthError(err, true)
	}

	return s.acceptSession(response), nil
}

// acceptSession grava token e usuário em memória e no armazenamento persistente
func (s *Service) acceptSession(response *authapi.LoginResponse) *domain.Session {
	s.mu.Lock()
	s.session = domain.Session{
		Token: response.AccessToken,
		User:  response.User,
	}
	session := s.session
	s.mu.Unlock()

	kvstore.SetJSON(s.state, tokenKey, session.Token)
	kvstore.SetJSON(s.state, userKey, session.User)

	return &session
}

// Me revalida o token atual contra o colaborador de autenticação e atualiza
// o perfil armazenado. Uma resposta de autorização negada dispara o logout
// centralizado; o chamador não precisa tratar isso.
func (s *Service) Me(ctx context.Context) (*domain.User, error) {
	token := s.Token()
	if token == "" {
		return nil, NewSessionError(ErrSessionExpired, apiErrors.ErrExpiredSession, "Nenhuma sessão ativa")
	}

	user, err := s.client.Me(ctx, token)
	if err != nil {
		var serr *authapi.StatusError
		if errors.As(err, &serr) && serr.StatusCode == 401 {
			s.HandleUnauthorized()
			return nil, NewSessionError(ErrSessionExpired, apiErrors.ErrExpiredSession, "Sessão expirada")
		}
		return nil, classifyAuthError(err, false)
	}

	s.mu.Lock()
	s.session.User = user
	s.mu.Unlock()

	kvstore.SetJSON(s.state, userKey, user)

	return user, nil
}

// Logout limpa token e usuário da memória e do armazenamento persistente,
// e notifica os assinantes de fim de sessão.
func (s *Service) Logout() {
	s.mu.Lock()
	s.session = domain.Session{}
	listeners := make([]func(), len(s.onExpiry))
	copy(listeners, s.onExpiry)
	s.mu.Unlock()

	s.state.Delete(tokenKey)
	s.state.Delete(userKey)

	for _, fn := range listeners {
		fn()
	}
}

func (s *Service) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.IsAuthenticated()
}

func (s *Service) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Token
}

func (s *Service) User() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.User
}

// OnExpired registra um assinante para a transição de sessão expirada.
func (s *Service) OnExpired(fn func()) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onExpiry = append(s.onExpiry, fn)
}

// HandleUnauthorized é o ponto central de logout por expiração: qualquer
// camada que observar uma resposta de autorização negada em uma chamada
// protegida (exceto o próprio login) reporta por aqui, e a transição para
// anônimo acontece uma única vez, com notificação aos assinantes.
func (s *Service) HandleUnauthorized() {
	s.mu.Lock()
	wasAuthenticated := s.session.IsAuthenticated()
	s.session = domain.Session{}
	listeners := make([]func(), len(s.onExpiry))
	copy(listeners, s.onExpiry)
	s.mu.Unlock()

	if !wasAuthenticated {
		return
	}

	log.L.Info("Sessão expirada, efetuando logout centralizado")

	s.state.Delete(tokenKey)
	s.state.Delete(userKey)

	for _, fn := range listeners {
		fn()
	}
}

// classifyAuthError traduz o erro do cliente HTTP para a taxonomia da sessão
func classifyAuthError(err error, registering bool) error {
	var serr *authapi.StatusError
	if !errors.As(err, &serr) {
		return NewSessionError(ErrServiceUnavailable, apiErrors.ErrCommunication, "Erro ao comunicar com o serviço de autenticação")
	}

	switch {
	case serr.StatusCode == 0 || serr.StatusCode >= 500:
		return NewSessionError(ErrServiceUnavailable, apiErrors.ErrCommunication, "Serviço de autenticação indisponível")

	case serr.StatusCode == 401 || serr.StatusCode == 403:
		return NewSessionError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, "Credenciais inválidas")

	case registering && serr.StatusCode == 409:
		return NewSessionError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email já cadastrado")

	default:
		return NewSessionError(ErrInvalidRequest, apiErrors.ErrInvalidRequest, serr.Message)
	}
}

// tokenExpired verifica se o token JWT persistido já passou do prazo.
// A assinatura não é verificada aqui; tokens opacos são aceitos como válidos.
func tokenExpired(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}

	return exp.Before(time.Now())
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
