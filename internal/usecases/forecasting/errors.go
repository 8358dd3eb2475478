package forecasting

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/pkg/apiErrors"
)

// Erros específicos do contexto de previsão
var (
	// Erros de entrada
	ErrCampaignDataRequired = errors.New("campaign data is required")
	ErrInvalidBudget        = errors.New("budget must be greater than zero and within the daily limit")
	ErrNoCitiesSelected     = errors.New("at least one target city is required")

	// Erros internos
	ErrCampaignLookup = errors.New("error fetching campaign data")
	ErrForecastFailed = errors.New("failed to generate performance forecast")
)

// ForecastError é um erro com contexto adicional para a API
type ForecastError struct {
	Err     error  // Erro base
	Code    string // Código de erro para API
	Details string // Detalhes adicionais
}

func (e *ForecastError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

func (e *ForecastError) Unwrap() error {
	return e.Err
}

func NewForecastError(err error, code string, details string) *ForecastError {
	return &ForecastError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func inputError(err error, details string) *ForecastError {
	return NewForecastError(err, apiErrors.ErrMissingRequiredData, details)
}

func internalError(cause error) *ForecastError {
	return NewForecastError(ErrForecastFailed, apiErrors.ErrInternalServer, cause.Error())
}

// IsInputError indica se o erro deve ser tratado como requisição inválida
func IsInputError(err error) bool {
	var fe *ForecastError
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Code == apiErrors.ErrMissingRequiredData || fe.Code == apiErrors.ErrInvalidRequest
}
