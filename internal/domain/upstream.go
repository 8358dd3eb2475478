package domain

import "fmt"

// Motivos de falha na consulta de alcance da plataforma de anúncios
const (
	UpstreamMissingCredentials = "missing_credentials"
	UpstreamTimeout            = "timeout"
	UpstreamCanceled           = "canceled"
	UpstreamTransport          = "transport"
	UpstreamStatus             = "status"
	UpstreamAPIError           = "api_error"
	UpstreamMalformedResponse  = "malformed_response"
	UpstreamEmptyResult        = "empty_result"
)

// UpstreamFailure é o resultado de falha da consulta ao vivo; sempre recuperado pela heurística
type UpstreamFailure struct {
	Reason string
	Err    error
}

func NewUpstreamFailure(reason string, err error) *UpstreamFailure {
	return &UpstreamFailure{Reason: reason, Err: err}
}

func (e *UpstreamFailure) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("upstream failure: %s", e.Reason)
	}
	return fmt.Sprintf("upstream failure: %s: %s", e.Reason, e.Err.Error())
}

func (e *UpstreamFailure) Unwrap() error {
	return e.Err
}
