// Package kvstore é o invólucro de persistência do estado do dashboard.
// Qualquer falha de leitura ou escrita (armazenamento indisponível, JSON
// corrompido) é engolida: leituras devolvem o valor de fallback e escritas
// falham em silêncio. Nenhum erro de persistência chega aos chamadores,
// então todo recurso persistido degrada para "usar os padrões" em vez de
// derrubar a sessão.
package kvstore

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/sales-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type Store struct {
	repo repository.StateRepository
}

func New(repo repository.StateRepository) *Store {
	return &Store{
		repo: repo,
	}
}

// Delete remove a chave do armazenamento. Falhas são apenas registradas.
func (s *Store) Delete(key string) {
	if err := s.repo.Delete(key); err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Erro ao remover chave persistida")
	}
}

// GetJSON lê e decodifica o valor persistido para a chave.
// Retorna fallback se a chave não existe, se a leitura falha ou se o
// conteúdo não é um JSON válido para T.
func GetJSON[T any](s *Store, key string, fallback T) T {
	raw, err := s.repo.Get(key)
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Erro ao ler chave persistida, usando fallback")
		return fallback
	}

	if raw == nil {
		return fallback
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Valor persistido corrompido, usando fallback")
		return fallback
	}

	return value
}

// SetJSON codifica e persiste o valor para a chave. Falhas são apenas
// registradas; o chamador nunca recebe um erro.
func SetJSON[T any](s *Store, key string, value T) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Erro ao codificar valor para persistência")
		return
	}

	if err := s.repo.Set(key, raw); err != nil {
		log.L.WithError(err).WithField("key", key).Warn("Erro ao gravar chave persistida")
	}
}
