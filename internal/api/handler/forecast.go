package handler

import (
	"bytes"
	"io"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/vfg2006/performance-forecast-api/internal/domain"
	"github.com/vfg2006/performance-forecast-api/internal/usecases/forecasting"
	"github.com/vfg2006/performance-forecast-api/pkg/apiErrors"
	"github.com/vfg2006/performance-forecast-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var errRequestTooLarge = errors.New("request body exceeds 1MB")

const (
	maxRequestBody         = 1 << 20
	forecastFailureMessage = "Failed to generate performance forecast"
)

// PerformanceForecast gera a previsão de 7 dias para o perfil de campanha recebido
func PerformanceForecast(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		req, err := decodeForecastRequest(http.MaxBytesReader(w, r.Body, maxRequestBody))
		if errors.Is(err, errRequestTooLarge) {
			logger.WithError(err).Warn("forecast: request body too large")
			apiErrors.WriteError(w, apiErrors.ErrPayloadTooLarge, "Request body too large", err.Error())
			return
		}
		if err != nil {
			logger.WithError(err).Warn("forecast: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Invalid request body", err.Error())
			return
		}

		result, err := service.Forecast(r.Context(), req)
		if err != nil {
			writeForecastError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// Industries lista as categorias conhecidas por cada tabela de referência
func Industries(service forecasting.Forecaster) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"industries": service.Industries(),
		})
	}
}

// decodeForecastRequest aceita corpo vazio como requisição sem dados inline
func decodeForecastRequest(body io.Reader) (*domain.ForecastRequest, error) {
	raw, err := io.ReadAll(body)
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return nil, errRequestTooLarge
	}
	if err != nil {
		return nil, errors.Wrap(err, "error reading request body")
	}

	req := &domain.ForecastRequest{}
	if len(bytes.TrimSpace(raw)) == 0 {
		return req, nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("malformed JSON")
	}
	if err := json.Unmarshal(raw, req); err != nil {
		return nil, err
	}

	return req, nil
}

func writeForecastError(w http.ResponseWriter, err error) {
	var fe *forecasting.ForecastError
	if !errors.As(err, &fe) {
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, forecastFailureMessage, err.Error())
		return
	}

	if forecasting.IsInputError(fe) {
		apiErrors.WriteError(w, fe.Code, fe.Err.Error(), fe.Details)
		return
	}

	apiErrors.WriteError(w, fe.Code, forecastFailureMessage, fe.Details)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithError(err).Warn("error encoding response")
	}
}
