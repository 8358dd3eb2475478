package scheduler

import (
	"context"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/internal/config"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
)

const refreshTimeout = 30 * time.Second

// TokenRefresher é implementado por metaclient.TokenManager
type TokenRefresher interface {
	CanRefresh() bool
	RefreshToken(ctx context.Context) error
}

// TokenRefreshConfig representa a configuração do agendador de renovação do token do Meta
type TokenRefreshConfig struct {
	CronSchedule string
	Enabled      bool
}

// TokenRefreshStatus é o retrato do agendador exposto na rota de status
type TokenRefreshStatus struct {
	Enabled         bool      `json:"enabled"`
	CronSchedule    string    `json:"cron"`
	Running         bool      `json:"running"`
	LastStartedAt   time.Time `json:"last_started_at"`
	LastCompletedAt time.Time `json:"last_completed_at"`
	LastError       string    `json:"last_error,omitempty"`
}

// TokenRefreshService renova periodicamente o token de longa duração do Meta
type TokenRefreshService struct {
	scheduler *gocron.Scheduler
	config    TokenRefreshConfig
	refresher TokenRefresher

	mu              sync.Mutex
	running         bool
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       error
}

func NewTokenRefreshService(refresher TokenRefresher, appConfig *config.Config) *TokenRefreshService {
	refreshConfig := TokenRefreshConfig{
		CronSchedule: appConfig.TokenRefresh.CronSchedule,
		Enabled:      appConfig.TokenRefresh.Enabled,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": refreshConfig.CronSchedule,
		"enabled":       refreshConfig.Enabled,
	}).Info("scheduler: token refresh configuration loaded")

	return &TokenRefreshService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    refreshConfig,
		refresher: refresher,
	}
}

// Start agenda a renovação; sem credenciais do app o agendador não é iniciado
func (s *TokenRefreshService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("scheduler: token refresh disabled by configuration")
		return nil
	}
	if s.refresher == nil || !s.refresher.CanRefresh() {
		log.L.Warn("scheduler: token refresh enabled but meta app credentials are missing, skipping")
		return nil
	}

	_, err := s.scheduler.Cron(s.config.CronSchedule).SingletonMode().Do(func() {
		s.Run(ctx)
	})
	if err != nil {
		return errors.Wrap(err, "erro ao agendar renovação do token do Meta")
	}

	s.scheduler.StartAsync()
	log.L.WithField("cron", s.config.CronSchedule).Info("scheduler: token refresh started")

	go func() {
		<-ctx.Done()
		log.L.Info("scheduler: stopping token refresh")
		s.scheduler.Stop()
	}()

	return nil
}

// Run executa uma renovação; ignora a chamada se outra estiver em andamento
func (s *TokenRefreshService) Run(ctx context.Context) bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		log.L.Info("scheduler: token refresh already running, skipping")
		return false
	}
	s.running = true
	s.lastStartedAt = time.Now()
	s.mu.Unlock()

	refreshCtx, cancel := context.WithTimeout(ctx, refreshTimeout)
	defer cancel()

	err := s.refresher.RefreshToken(refreshCtx)

	s.mu.Lock()
	s.running = false
	s.lastError = err
	if err == nil {
		s.lastCompletedAt = time.Now()
	}
	s.mu.Unlock()

	if err != nil {
		log.L.WithError(err).Error("scheduler: token refresh failed")
		return true
	}

	log.L.Info("scheduler: token refresh completed")
	return true
}

// GetStatus retorna o status atual do agendador
func (s *TokenRefreshService) GetStatus() TokenRefreshStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := TokenRefreshStatus{
		Enabled:         s.config.Enabled,
		CronSchedule:    s.config.CronSchedule,
		Running:         s.running,
		LastStartedAt:   s.lastStartedAt,
		LastCompletedAt: s.lastCompletedAt,
	}
	if s.lastError != nil {
		status.LastError = s.lastError.Error()
	}
	return status
}
