package syncing

import (
	"context"
	"time"

	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
	"github.com/vfg2006/ads-sheet-sync/internal/credentials"
	"github.com/vfg2006/ads-sheet-sync/pkg/log"
	"github.com/vfg2006/ads-sheet-sync/pkg/utils"
)

// Syncer executa a pipeline completa de sincronização para o dia anterior
// a now. "Ontem" é um parâmetro, não um timestamp ambiente, para que a
// pipeline seja testável com datas fixas.
type Syncer interface {
	Sync(ctx context.Context, now time.Time) error
}

type Service struct {
	cfg     *config.Config
	fetcher meta.Integrator
	writer  sheets.Writer
}

func NewService(cfg *config.Config, fetcher meta.Integrator, writer sheets.Writer) Syncer {
	return &Service{
		cfg:     cfg,
		fetcher: fetcher,
		writer:  writer,
	}
}

// Sync é uma pipeline linear sem estado intermediário persistido:
// credenciais → busca paginada com enriquecimento e filtro → processamento →
// escrita única na planilha. Qualquer estágio com erro aborta a execução;
// nada é gravado antes do bulk update final.
func (s *Service) Sync(ctx context.Context, now time.Time) error {
	runID, _ := utils.GenerateID()
	targetDate := utils.Yesterday(now)

	logger := log.ForContext(ctx).WithFields(log.Fields{
		"run_id":      runID,
		"target_date": targetDate.Format(time.DateOnly),
	})
	logger.Info("sync: starting ads data sync")

	creds, err := credentials.Load(s.cfg.AdsSync.ConfigFile)
	if err != nil {
		logger.WithError(err).Error("sync: failed to load ads credentials")
		return err
	}

	ads, err := s.fetcher.FetchAds(ctx, creds, targetDate)
	if err != nil {
		logger.WithError(err).Error("sync: failed to fetch ads data")
		return err
	}

	rows := ProcessDailyData(ads, targetDate)
	logger.Debugf("sync: processed rows: %s", utils.PrettyJson(rows))

	if err := s.writer.Write(ctx, rows); err != nil {
		logger.WithError(err).Error("sync: failed to write rows to spreadsheet")
		return err
	}

	logger.WithField("rows", rows.TotalRows()).Info("sync: completed successfully")
	return nil
}
