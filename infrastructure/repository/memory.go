package repository

import "sync"

// memoryStateRepository guarda o estado apenas em memória. Usado quando o
// banco não está disponível: o dashboard continua funcionando, perdendo
// somente a durabilidade entre reinícios.
type memoryStateRepository struct {
	mu     sync.Mutex
	values map[string][]byte
}

func NewMemoryStateRepository() StateRepository {
	return &memoryStateRepository{
		values: make(map[string][]byte),
	}
}

func (r *memoryStateRepository) Get(key string) ([]byte, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	value, ok := r.values[key]
	if !ok {
		return nil, nil
	}

	cp := make([]byte, len(value))
	copy(cp, value)
	return cp, nil
}

func (r *memoryStateRepository) Set(key string, value []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cp := make([]byte, len(value))
	copy(cp, value)
	r.values[key] = cp
	return nil
}

func (r *memoryStateRepository) Delete(key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.values, key)
	return nil
}
