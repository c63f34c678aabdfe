// Package observable implementa as primitivas de publicação/assinatura que
// mantêm os widgets do dashboard consistentes entre si: um valor observável
// com replay do último valor e a junção combine-latest de duas fontes.
package observable

import "sync"

// Subscription cancela o registro de um assinante quando chamada.
type Subscription func()

// Value é um valor mutável observável. Set publica o novo valor para todos
// os assinantes de forma síncrona, na ordem de registro. Subscribe entrega
// imediatamente o último valor conhecido ao novo assinante, então assinantes
// tardios nunca precisam tratar o "primeiro" valor como caso especial.
//
// Os callbacks não devem reentrar no próprio Value.
type Value[T any] struct {
	mu        sync.Mutex
	current   T
	nextID    int
	order     []int
	listeners map[int]func(T)
}

// NewValue cria um Value com o valor inicial informado.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{
		current:   initial,
		listeners: make(map[int]func(T)),
	}
}

// Get retorna o último valor publicado.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.current
}

// Set substitui o valor atual e notifica todos os assinantes.
func (v *Value[T]) Set(value T) {
	v.mu.Lock()
	v.current = value
	fns := make([]func(T), 0, len(v.order))
	for _, id := range v.order {
		if fn, ok := v.listeners[id]; ok {
			fns = append(fns, fn)
		}
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(value)
	}
}

// Subscribe registra um assinante e entrega imediatamente o valor atual.
func (v *Value[T]) Subscribe(fn func(T)) Subscription {
	v.mu.Lock()
	id := v.nextID
	v.nextID++
	v.listeners[id] = fn
	v.order = append(v.order, id)
	current := v.current
	v.mu.Unlock()

	fn(current)

	return func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.listeners, id)
		for i, other := range v.order {
			if other == id {
				v.order = append(v.order[:i], v.order[i+1:]...)
				break
			}
		}
	}
}

// CombineLatest assina duas fontes e chama fn com o par mais recente.
// A primeira chamada acontece somente depois que ambas as fontes emitiram
// pelo menos um valor; a partir daí fn é chamada a cada atualização de
// qualquer uma das fontes, usando o último valor em cache da outra.
func CombineLatest[A, B any](a *Value[A], b *Value[B], fn func(A, B)) Subscription {
	join := &latestJoin[A, B]{fn: fn}

	unsubA := a.Subscribe(func(value A) {
		join.setA(value)
	})
	unsubB := b.Subscribe(func(value B) {
		join.setB(value)
	})

	return func() {
		unsubA()
		unsubB()
	}
}

// latestJoin guarda os dois slots opcionais da junção sob um único mutex.
type latestJoin[A, B any] struct {
	mu   sync.Mutex
	a    A
	b    B
	hasA bool
	hasB bool
	fn   func(A, B)
}

func (j *latestJoin[A, B]) setA(value A) {
	j.mu.Lock()
	j.a = value
	j.hasA = true
	ready := j.hasA && j.hasB
	a, b := j.a, j.b
	j.mu.Unlock()

	if ready {
		j.fn(a, b)
	}
}

func (j *latestJoin[A, B]) setB(value B) {
	j.mu.Lock()
	j.b = value
	j.hasB = true
	ready := j.hasA && j.hasB
	a, b := j.a, j.b
	j.mu.Unlock()

	if ready {
		j.fn(a, b)
	}
}
