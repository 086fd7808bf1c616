package sheets

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
	"github.com/vfg2006/ads-sheet-sync/internal/domain"
	"github.com/vfg2006/ads-sheet-sync/pkg/apiErrors"
)

// Writer grava as linhas processadas na planilha
type Writer interface {
	Write(ctx context.Context, rows domain.DailyRows) error
}

type Service struct {
	cfg    *config.Config
	client sheetsclient.Client
}

func New(cfg *config.Config, client sheetsclient.Client) Writer {
	return &Service{
		cfg:    cfg,
		client: client,
	}
}

// Write acrescenta todas as linhas após a última linha preenchida da coluna A,
// em um único range update cobrindo as colunas A–F. Não há lock entre a
// leitura da coluna e a escrita: execuções simultâneas podem se sobrepor,
// por isso a sync roda serializada pelo serviço de agendamento.
func (s *Service) Write(ctx context.Context, rows domain.DailyRows) error {
	values := rows.Flatten()
	if len(values) == 0 {
		logrus.Warn("Nenhuma linha para gravar na planilha")
		return nil
	}

	nextRow, err := s.nextFreeRow(ctx)
	if err != nil {
		return apiErrors.Newf(apiErrors.ErrSheetWrite, "erro ao localizar a próxima linha livre: %v", err)
	}

	rangeName := fmt.Sprintf("%s!A%d:F%d", s.cfg.Sheets.TabName, nextRow, nextRow+len(values))

	logrus.WithFields(logrus.Fields{
		"rows":  len(values),
		"range": rangeName,
	}).Info("Gravando linhas na planilha")

	if err := s.client.UpdateRange(ctx, rangeName, values); err != nil {
		return apiErrors.Newf(apiErrors.ErrSheetWrite, "erro ao gravar na planilha: %v", err)
	}

	logrus.WithField("rows", len(values)).Info("Linhas gravadas com sucesso na planilha")
	return nil
}

// nextFreeRow lê a coluna A inteira da aba e devolve a primeira linha após a
// última não-vazia
func (s *Service) nextFreeRow(ctx context.Context) (int, error) {
	rangeName := fmt.Sprintf("%s!A:A", s.cfg.Sheets.TabName)

	values, err := s.client.GetRange(ctx, rangeName)
	if err != nil {
		return 0, err
	}

	nextRow := len(values) + 1
	logrus.WithField("next_row", nextRow).Info("Próxima linha livre localizada")
	return nextRow, nil
}
