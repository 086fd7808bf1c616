package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/sheets"
	"github.com/vfg2006/ads-sheet-sync/infrastructure/integrator/sheets/sheetsclient"
	"github.com/vfg2006/ads-sheet-sync/internal/api"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
	"github.com/vfg2006/ads-sheet-sync/internal/scheduler"
	"github.com/vfg2006/ads-sheet-sync/internal/usecases/syncing"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sheetsClient, err := sheetsclient.NewClient(ctx, cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao Google Sheets")
	}
	sheetsWriter := sheets.New(cfg, sheetsClient)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	syncService := syncing.NewService(cfg, metaIntegrator, sheetsWriter)

	// Inicializa o agendador de sincronização diária
	adsSyncService := scheduler.NewAdsSyncService(syncService, cfg)

	if err := adsSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de anúncios")
	} else {
		logrus.Info("Agendador de sincronização de anúncios iniciado com sucesso")
	}

	server, err := api.New(cfg, adsSyncService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
