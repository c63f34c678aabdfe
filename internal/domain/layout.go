package domain

// DashboardItem é a posição e o tamanho de um widget na grade do dashboard.
// A sequência é ordenada; a unicidade do Label é esperada mas não imposta.
type DashboardItem struct {
	Label string `json:"label"`
	Cols  int    `json:"cols"`
	Rows  int    `json:"rows"`
	X     int    `json:"x"`
	Y     int    `json:"y"`
}
