package sheetsclient

import (
	"context"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-sheet-sync/internal/config"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const spreadsheetsScope = "https://www.googleapis.com/auth/spreadsheets"

type Client interface {
	GetRange(ctx context.Context, rangeName string) ([][]interface{}, error)
	UpdateRange(ctx context.Context, rangeName string, values [][]interface{}) error
}

type GoogleSheetsClient struct {
	service       *sheets.Service
	spreadsheetID string
}

// NewClient autentica com a service account do arquivo de credenciais e cria
// o serviço do Google Sheets com escopo de leitura/escrita de planilhas
func NewClient(ctx context.Context, cfg *config.Config) (Client, error) {
	logrus.Info("Inicializando cliente do Google Sheets")

	raw, err := os.ReadFile(cfg.Sheets.CredentialsFile)
	if err != nil {
		return nil, fmt.Errorf("arquivo de credenciais do Google Sheets %s não encontrado: %w", cfg.Sheets.CredentialsFile, err)
	}

	jwtConfig, err := google.JWTConfigFromJSON(raw, spreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("credenciais do Google Sheets inválidas: %w", err)
	}

	service, err := sheets.NewService(ctx, option.WithHTTPClient(jwtConfig.Client(ctx)))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar o serviço do Google Sheets: %w", err)
	}

	logrus.Info("Cliente do Google Sheets inicializado com sucesso")

	return &GoogleSheetsClient{
		service:       service,
		spreadsheetID: cfg.Sheets.SpreadsheetID,
	}, nil
}

// GetRange lê os valores de um range em notação A1. A API só devolve linhas
// até a última não-vazia.
func (c *GoogleSheetsClient) GetRange(ctx context.Context, rangeName string) ([][]interface{}, error) {
	resp, err := c.service.Spreadsheets.Values.Get(c.spreadsheetID, rangeName).Context(ctx).Do()
	if err != nil {
		return nil, err
	}

	return resp.Values, nil
}

// UpdateRange grava os valores no range informado com valueInputOption=RAW
// (sem interpretação de fórmulas)
func (c *GoogleSheetsClient) UpdateRange(ctx context.Context, rangeName string, values [][]interface{}) error {
	body := &sheets.ValueRange{
		Values: values,
	}

	resp, err := c.service.Spreadsheets.Values.Update(c.spreadsheetID, rangeName, body).
		ValueInputOption("RAW").
		Context(ctx).
		Do()
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"range":         rangeName,
		"updated_cells": resp.UpdatedCells,
		"updated_rows":  resp.UpdatedRows,
	}).Info("Range atualizado no Google Sheets")

	return nil
}
