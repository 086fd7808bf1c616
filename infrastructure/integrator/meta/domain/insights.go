package metadomain

import "github.com/vfg2006/ads-sheet-sync/internal/domain"

// Paging é o bloco de paginação por cursor das respostas do Meta. Next,
// quando presente, é uma URL completa já qualificada para a próxima página.
type Paging struct {
	Next string `json:"next"`
}

// InsightsPage é uma página do endpoint de insights (level=ad)
type InsightsPage struct {
	Data   []domain.AdRecord `json:"data"`
	Paging Paging            `json:"paging"`
	Error  *ErrorDetails     `json:"error,omitempty"`
}

// AdDetails é a resposta do endpoint por objeto ao pedir somente created_time
type AdDetails struct {
	CreatedTime string        `json:"created_time"`
	Error       *ErrorDetails `json:"error,omitempty"`
}
