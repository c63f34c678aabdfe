// Package filtering mantém o filtro de período e o layout do dashboard,
// publicando o filtro para todos os widgets dependentes e persistindo os
// dois de forma independente.
package filtering

import (
	"github.com/vfg2006/sales-dashboard-api/internal/domain"
	"github.com/vfg2006/sales-dashboard-api/pkg/kvstore"
	"github.com/vfg2006/sales-dashboard-api/pkg/observable"
)

const (
	filtersKey = "dashboard_filters_v1"
	layoutKey  = "dashboard_layout_v1"
	sidenavKey = "sidenav_open_v1"
)

type Store struct {
	state   *kvstore.Store
	filters *observable.Value[domain.DateRange]
}

// NewStore cria o store semeado do armazenamento persistente; sem valor
// persistido (ou com valor corrompido) o filtro inicial é vazio.
func NewStore(state *kvstore.Store) *Store {
	initial := kvstore.GetJSON(state, filtersKey, domain.DateRange{})

	return &Store{
		state:   state,
		filters: observable.NewValue(initial),
	}
}

// SetFilters substitui o filtro por inteiro (nunca mescla), persiste de
// forma síncrona e então publica para todos os assinantes.
func (s *Store) SetFilters(filters domain.DateRange) {
	kvstore.SetJSON(s.state, filtersKey, filters)
	s.filters.Set(filters)
}

// Filters retorna o último filtro publicado.
func (s *Store) Filters() domain.DateRange {
	return s.filters.Get()
}

// FilterValues expõe o filtro como fonte observável para composição.
func (s *Store) FilterValues() *observable.Value[domain.DateRange] {
	return s.filters
}

// Subscribe registra um assinante; o valor atual é entregue imediatamente.
func (s *Store) Subscribe(fn func(domain.DateRange)) observable.Subscription {
	return s.filters.Subscribe(fn)
}

// SetLayout persiste o layout imediatamente. O store não escolhe política:
// tanto "salvar a cada arrasto" quanto "botão Salvar" usam esta primitiva.
func (s *Store) SetLayout(items []domain.DashboardItem) {
	kvstore.SetJSON(s.state, layoutKey, items)
}

// Layout retorna o layout persistido, ou fallback se ausente ou corrompido.
func (s *Store) Layout(fallback []domain.DashboardItem) []domain.DashboardItem {
	return kvstore.GetJSON(s.state, layoutKey, fallback)
}

// ResetLayout remove a cópia persistida; o chamador volta a semear o padrão.
func (s *Store) ResetLayout() {
	s.state.Delete(layoutKey)
}

// SetSidenavOpen persiste o estado aberto/fechado do menu lateral.
func (s *Store) SetSidenavOpen(open bool) {
	kvstore.SetJSON(s.state, sidenavKey, open)
}

func (s *Store) SidenavOpen(fallback bool) bool {
	return kvstore.GetJSON(s.state, sidenavKey, fallback)
}
