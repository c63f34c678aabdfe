package domain

import "time"

// DateRange é o filtro de período compartilhado entre todos os widgets.
// Ambos os limites ausentes significa "sem filtro, mostrar tudo".
// O store não valida From <= To; isso é responsabilidade de quem chama.
type DateRange struct {
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`
}

// IsBounded indica se ambos os limites do período estão presentes.
// Quando apenas um limite é informado o filtro é tratado como ausente.
func (r DateRange) IsBounded() bool {
	return r.From != "" && r.To != ""
}

// Bounds converte os limites para datas de calendário.
// Retorna ok=false se algum limite estiver ausente ou mal formatado.
func (r DateRange) Bounds() (from, to time.Time, ok bool) {
	if !r.IsBounded() {
		return time.Time{}, time.Time{}, false
	}

	from, err := time.Parse(time.DateOnly, r.From)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	to, err = time.Parse(time.DateOnly, r.To)
	if err != nil {
		return time.Time{}, time.Time{}, false
	}

	return from, to, true
}
