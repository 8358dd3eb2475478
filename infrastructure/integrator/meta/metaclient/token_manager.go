package metaclient

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/internal/config"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
)

// ErrRefreshNotConfigured indica ausência de app id/secret para trocar o token
var ErrRefreshNotConfigured = errors.New("meta token refresh requires app id and app secret")

const scheduledRefreshTimeout = 30 * time.Second

// TokenManager guarda o token de acesso atual da API do Meta
type TokenManager struct {
	cfg        config.Meta
	httpClient *http.Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
	lastRefresh time.Time

	refreshMu  sync.Mutex
	refreshing atomic.Bool
	wg         sync.WaitGroup
}

// NewTokenManager cria o gerenciador a partir do token configurado
func NewTokenManager(cfg *config.Config) *TokenManager {
	token := cfg.Meta.AccessToken
	if cfg.Meta.LongLivedToken != "" {
		token = cfg.Meta.LongLivedToken
	}

	return &TokenManager{
		cfg:         cfg.Meta,
		httpClient:  &http.Client{Timeout: 30 * time.Second},
		accessToken: token,
		expiresAt:   cfg.Meta.TokenExpiresAt,
	}
}

func (tm *TokenManager) AccessToken() string {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.accessToken
}

func (tm *TokenManager) ExpiresAt() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.expiresAt
}

func (tm *TokenManager) LastRefresh() time.Time {
	tm.mu.RLock()
	defer tm.mu.RUnlock()
	return tm.lastRefresh
}

// CanRefresh indica se há token e dados do app para a troca
func (tm *TokenManager) CanRefresh() bool {
	return tm.AccessToken() != "" && tm.cfg.AppID != "" && tm.cfg.AppSecret != ""
}

// RefreshToken troca o token atual por um novo token de longa duração.
// Chamadas concorrentes são serializadas.
func (tm *TokenManager) RefreshToken(ctx context.Context) error {
	tm.refreshMu.Lock()
	defer tm.refreshMu.Unlock()

	if !tm.CanRefresh() {
		return ErrRefreshNotConfigured
	}

	logger := log.ForContext(ctx)

	if expiresAt := tm.ExpiresAt(); !expiresAt.IsZero() && time.Until(expiresAt) < time.Hour {
		logger.Warn("meta: token is close to expiration, manual re-authorization may be required")
	}

	tokenResponse, err := GetLongLivedToken(ctx, tm.httpClient, tm.AccessToken(), tm.cfg.AppID, tm.cfg.AppSecret, tm.cfg.URL)
	if err != nil {
		var respErr *ResponseError
		if errors.As(err, &respErr) && respErr.IsTokenExpired() {
			logger.WithError(err).Error("meta: access token expired and cannot be refreshed automatically")
			return errors.Wrap(err, "o token de acesso expirou e é necessário reautorizar o aplicativo")
		}
		return errors.Wrap(err, "erro ao obter novo token de longa duração")
	}

	now := time.Now()

	tm.mu.Lock()
	changed := tm.accessToken != tokenResponse.AccessToken
	tm.accessToken = tokenResponse.AccessToken
	tm.expiresAt = CalculateTokenExpiration(now, tokenResponse.ExpiresIn)
	tm.lastRefresh = now
	expiresAt := tm.expiresAt
	tm.mu.Unlock()

	if changed {
		logger.Infof("meta: long-lived token updated, refresh due at %s", expiresAt.Format(time.RFC3339))
	} else {
		logger.Info("meta: token refreshed but unchanged")
	}

	return nil
}

// ScheduleRefresh dispara a renovação em segundo plano; ignora se já houver uma em andamento
func (tm *TokenManager) ScheduleRefresh() {
	if !tm.CanRefresh() {
		log.L.Warn("meta: token expired and refresh is not configured")
		return
	}
	if !tm.refreshing.CompareAndSwap(false, true) {
		return
	}

	tm.wg.Add(1)
	go func() {
		defer tm.wg.Done()
		defer tm.refreshing.Store(false)

		ctx, cancel := context.WithTimeout(context.Background(), scheduledRefreshTimeout)
		defer cancel()

		if err := tm.RefreshToken(ctx); err != nil {
			log.L.WithError(err).Error("meta: background token refresh failed")
		}
	}()
}

// Wait bloqueia até as renovações em segundo plano terminarem
func (tm *TokenManager) Wait() {
	tm.wg.Wait()
}
