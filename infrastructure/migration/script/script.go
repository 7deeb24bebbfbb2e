// Script de migração: cria as tabelas e, opcionalmente, carrega planilhas
// locais na tabela de dados sem passar pela API.
//
//	go run ./infrastructure/migration/script -file vendas.xlsx -file estoque.xlsx
package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/repository"
	"github.com/vfg2006/custom-dashboard-api/infrastructure/spreadsheet"
	"github.com/vfg2006/custom-dashboard-api/internal/config"
	"github.com/vfg2006/custom-dashboard-api/pkg/log"
)

// fileList acumula as ocorrências da flag -file
type fileList []string

func (f *fileList) String() string {
	return ""
}

func (f *fileList) Set(value string) error {
	*f = append(*f, value)
	return nil
}

func main() {
	var files fileList
	flag.Var(&files, "file", "planilha a importar (pode ser repetido)")
	schemaOnly := flag.Bool("schema-only", false, "apenas sincroniza o schema")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}
	log.Setup(cfg.App.LogLevel, cfg.App.LogFormat)
	logrus.Info("Iniciando script de migração...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("ERRO ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	if err := repository.SyncSchema(ctx, conn); err != nil {
		logrus.WithError(err).Fatal("ERRO ao sincronizar schema")
	}

	if *schemaOnly || len(files) == 0 {
		logrus.Info("Migração concluída (somente schema)")
		return
	}

	reader := spreadsheet.NewExcelReader()
	excelData := repository.NewExcelDataRepository(conn)

	failures := 0
	for i, path := range files {
		if err := importFile(ctx, reader, excelData, path); err != nil {
			logrus.WithError(err).Errorf("ERRO ao importar planilha [%d/%d] %s", i+1, len(files), path)
			failures++
		}
	}

	logrus.WithFields(logrus.Fields{
		"files":    len(files),
		"failures": failures,
	}).Info("Migração concluída")

	if failures > 0 {
		os.Exit(1)
	}
}

// importFile lê a planilha e insere as linhas; o arquivo de origem não é removido
func importFile(ctx context.Context, reader spreadsheet.Reader, excelData repository.ExcelDataRepository, path string) error {
	startTime := time.Now()

	records, err := reader.ReadFile(path)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		logrus.WithField("file", path).Warn("Planilha vazia, nada a importar")
		return nil
	}

	inserted, err := excelData.BulkInsert(ctx, records)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"file":    path,
		"records": inserted,
		"elapsed": time.Since(startTime).String(),
	}).Info("Planilha importada")

	return nil
}
