package metaclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/performance-forecast-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/performance-forecast-api/internal/config"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ErrMalformedResponse indica uma resposta 200 que não pôde ser interpretada
var ErrMalformedResponse = errors.New("malformed response from meta api")

// ErrMissingToken indica que não há token de acesso disponível
var ErrMissingToken = errors.New("meta access token not configured")

// ResponseError é devolvido quando a API responde com erro
type ResponseError struct {
	StatusCode int
	Body       string
	Meta       *metadomain.ErrorResponse
}

func (e *ResponseError) Error() string {
	if e.Meta != nil && e.Meta.Error != nil {
		return fmt.Sprintf("meta api error (status %d, code %d): %s", e.StatusCode, e.Meta.Error.Code, e.Meta.Error.Message)
	}
	return fmt.Sprintf("meta api error (status %d): %s", e.StatusCode, e.Body)
}

// IsTokenExpired indica se o erro foi causado por token expirado ou inválido
func (e *ResponseError) IsTokenExpired() bool {
	if e.Meta.IsTokenExpired() {
		return true
	}
	return containsTokenExpirationMessage(e.Body)
}

type ReachEstimateParams struct {
	AdAccountID        string
	TargetingSpec      metadomain.TargetingSpec
	OptimizationGoal   string
	DailyBudgetInCents int64
	Currency           string
}

type Client interface {
	GetReachEstimate(ctx context.Context, params ReachEstimateParams) ([]metadomain.ReachEstimate, error)
	HasToken() bool
	RefreshToken(ctx context.Context) error
	HandleResponse(resp *http.Response) ([]byte, error)
}

type MetaClient struct {
	Cfg          *config.Config
	TokenManager *TokenManager
	HTTPClient   *http.Client
}

func NewClient(cfg *config.Config, tokenManager *TokenManager) Client {
	return &MetaClient{
		Cfg:          cfg,
		TokenManager: tokenManager,
		HTTPClient:   &http.Client{Timeout: 30 * time.Second},
	}
}

// HasToken indica se existe token para autenticar as chamadas
func (c *MetaClient) HasToken() bool {
	return c.TokenManager.AccessToken() != ""
}

// RefreshToken obtém um novo token de longa duração
func (c *MetaClient) RefreshToken(ctx context.Context) error {
	return c.TokenManager.RefreshToken(ctx)
}

// HandleResponse lê o corpo e converte respostas de erro em *ResponseError.
// Quando o token expirou, agenda a renovação em segundo plano sem repetir a chamada.
func (c *MetaClient) HandleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao ler resposta")
	}

	metaErr, _ := ParseErrorResponse(body)
	if resp.StatusCode == http.StatusOK && (metaErr == nil || metaErr.Error == nil) {
		return body, nil
	}

	respErr := &ResponseError{StatusCode: resp.StatusCode, Body: string(body)}
	if metaErr != nil && metaErr.Error != nil {
		respErr.Meta = metaErr
	}

	if respErr.IsTokenExpired() {
		c.TokenManager.ScheduleRefresh()
	}

	return nil, respErr
}

func (c *MetaClient) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	token := c.TokenManager.AccessToken()
	if token == "" {
		return nil, ErrMissingToken
	}
	params.Set("access_token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao criar requisição")
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	return c.HandleResponse(resp)
}

// containsTokenExpirationMessage verifica se a mensagem contém indicação de token expirado
func containsTokenExpirationMessage(message string) bool {
	return strings.Contains(message, "Error validating access token") ||
		strings.Contains(message, "Session has expired") ||
		strings.Contains(message, "The session has been invalidated")
}

// ParseErrorResponse tenta parsear um erro da API do Meta
func ParseErrorResponse(body []byte) (*metadomain.ErrorResponse, error) {
	var errorResp metadomain.ErrorResponse
	if err := json.Unmarshal(body, &errorResp); err != nil {
		return nil, err
	}
	return &errorResp, nil
}
