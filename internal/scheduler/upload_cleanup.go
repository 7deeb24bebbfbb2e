package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/custom-dashboard-api/internal/config"
)

// UploadCleanupConfig representa a configuração da limpeza de uploads
type UploadCleanupConfig struct {
	Dir          string
	CronSchedule string
	MaxAge       time.Duration
	Enabled      bool
}

// UploadCleanupService remove planilhas que ficaram no diretório de upload
// depois de uma importação com falha. Arquivos importados com sucesso já são
// removidos pela própria importação.
type UploadCleanupService struct {
	scheduler      *gocron.Scheduler
	config         UploadCleanupConfig
	now            func() time.Time
	running        bool
	mutex          sync.Mutex
	lastStartedAt  time.Time
	lastFinishedAt time.Time
	lastRemoved    int
	lastError      string
}

// NewUploadCleanupService cria o serviço a partir da configuração global
func NewUploadCleanupService(appConfig *config.Config) *UploadCleanupService {
	cleanupConfig := UploadCleanupConfig{
		Dir:          appConfig.Upload.Dir,
		CronSchedule: appConfig.UploadCleanup.CronSchedule,
		MaxAge:       appConfig.UploadCleanup.MaxAge,
		Enabled:      appConfig.UploadCleanup.Enabled,
	}

	logrus.WithFields(logrus.Fields{
		"dir":           cleanupConfig.Dir,
		"cron_schedule": cleanupConfig.CronSchedule,
		"max_age":       cleanupConfig.MaxAge.String(),
		"enabled":       cleanupConfig.Enabled,
	}).Info("Configuração da limpeza de uploads carregada")

	return &UploadCleanupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cleanupConfig,
		now:       time.Now,
	}
}

// Start agenda a limpeza. Não faz nada se estiver desabilitada.
func (s *UploadCleanupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpeza de uploads desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de limpeza de uploads")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.run()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpeza de uploads: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de limpeza de uploads")
		s.scheduler.Stop()
	}()

	return nil
}

func (s *UploadCleanupService) run() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza de uploads já em andamento, ignorando")
		return
	}
	s.running = true
	s.lastStartedAt = s.now()
	s.mutex.Unlock()

	removed, err := s.Cleanup()

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.running = false
	s.lastFinishedAt = s.now()
	s.lastRemoved = removed
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
		logrus.WithError(err).Error("Erro na limpeza de uploads")
		return
	}

	logrus.WithField("removed", removed).Info("Limpeza de uploads concluída")
}

// Cleanup remove os arquivos do diretório de upload mais antigos que MaxAge
// e retorna quantos foram removidos.
func (s *UploadCleanupService) Cleanup() (int, error) {
	entries, err := os.ReadDir(s.config.Dir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("erro ao listar %s: %w", s.config.Dir, err)
	}

	cutoff := s.now().Add(-s.config.MaxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removido entre a listagem e a leitura
			continue
		}

		if info.ModTime().After(cutoff) {
			continue
		}

		path := filepath.Join(s.config.Dir, entry.Name())
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			logrus.WithError(err).WithField("file", path).Warn("Não foi possível remover upload antigo")
			continue
		}
		removed++
	}

	return removed, nil
}

// TriggerManualSync executa a limpeza fora do agendamento
func (s *UploadCleanupService) TriggerManualSync() {
	s.mutex.Lock()
	if s.running {
		s.mutex.Unlock()
		logrus.Info("Limpeza de uploads já em andamento, ignorando solicitação manual")
		return
	}
	s.mutex.Unlock()

	logrus.Info("Iniciando limpeza manual de uploads")
	go s.run()
}

// GetStatus retorna o status atual do agendador
func (s *UploadCleanupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"enabled":          s.config.Enabled,
		"cron":             s.config.CronSchedule,
		"max_age":          s.config.MaxAge.String(),
		"running":          s.running,
		"last_started_at":  s.lastStartedAt,
		"last_finished_at": s.lastFinishedAt,
		"last_removed":     s.lastRemoved,
		"last_error":       s.lastError,
	}
}
