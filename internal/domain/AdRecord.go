package domain

// AdRecord é o registro bruto de um anúncio retornado pelo endpoint de
// insights do Meta (level=ad). Spend chega como string na API.
type AdRecord struct {
	CampaignName string `json:"campaign_name"`
	AdName       string `json:"ad_name"`
	Spend        string `json:"spend"`
	AdID         string `json:"ad_id"`
}
