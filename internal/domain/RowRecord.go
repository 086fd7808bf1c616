package domain

// RowRecord é a linha achatada gravada na planilha. DateStart e DateStop
// sempre igualam a data-alvo da execução; a data reportada pela API é
// ignorada de propósito.
type RowRecord struct {
	Date         string
	CampaignName string
	AdName       string
	Spend        float64
	DateStart    string
	DateStop     string
}

// Values devolve a linha na ordem fixa das colunas A–F da planilha
func (r RowRecord) Values() []interface{} {
	return []interface{}{
		r.Date,
		r.CampaignName,
		r.AdName,
		r.Spend,
		r.DateStart,
		r.DateStop,
	}
}

// DailyRows agrupa as linhas por data-alvo. Em uma execução normal há uma
// única chave (ontem).
type DailyRows map[string][]RowRecord

// Flatten converte o agrupamento em uma matriz de valores para o range update
func (d DailyRows) Flatten() [][]interface{} {
	rows := make([][]interface{}, 0, d.TotalRows())
	for _, records := range d {
		for _, record := range records {
			rows = append(rows, record.Values())
		}
	}
	return rows
}

// TotalRows conta as linhas em todas as datas
func (d DailyRows) TotalRows() int {
	total := 0
	for _, records := range d {
		total += len(records)
	}
	return total
}
