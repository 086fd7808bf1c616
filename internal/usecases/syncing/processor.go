package syncing

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sheet-sync/internal/domain"
	"github.com/vfg2006/ads-sheet-sync/pkg/utils"
)

const notAvailable = "Not Available"

// ProcessDailyData achata os registros brutos em linhas de planilha, todos
// sob a data-alvo da execução; a data reportada pela API é ignorada.
// Função pura: a mesma entrada produz sempre a mesma saída.
func ProcessDailyData(records []domain.AdRecord, targetDate time.Time) domain.DailyRows {
	logrus.WithField("records", len(records)).Info("Processando dados diários")

	date := targetDate.Format(time.DateOnly)
	daily := domain.DailyRows{}

	for _, entry := range records {
		spend, ok := utils.ParseSpend(entry.Spend)
		if !ok {
			logrus.WithFields(logrus.Fields{
				"ad_id": entry.AdID,
				"spend": entry.Spend,
			}).Warn("Valor de spend inválido, usando 0")
		}

		campaignName := entry.CampaignName
		if campaignName == "" {
			campaignName = notAvailable
		}

		adName := entry.AdName
		if adName == "" {
			adName = notAvailable
		}

		daily[date] = append(daily[date], domain.RowRecord{
			Date:         date,
			CampaignName: campaignName,
			AdName:       adName,
			Spend:        spend,
			DateStart:    date,
			DateStop:     date,
		})
	}

	logrus.WithField("rows", daily.TotalRows()).Info("Processamento concluído")
	return daily
}
