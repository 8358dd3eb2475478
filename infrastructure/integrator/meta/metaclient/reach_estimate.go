package metaclient

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	metadomain "github.com/vfg2006/performance-forecast-api/infrastructure/integrator/meta/domain"
)

type reachEstimateResponse struct {
	Data jsoniter.RawMessage `json:"data"`
}

// GetReachEstimate consulta o endpoint reachestimate da conta de anúncios
func (c *MetaClient) GetReachEstimate(ctx context.Context, params ReachEstimateParams) ([]metadomain.ReachEstimate, error) {
	targeting, err := json.Marshal(params.TargetingSpec)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao serializar targeting_spec")
	}

	currency := params.Currency
	if currency == "" {
		currency = "USD"
	}

	query := url.Values{}
	query.Set("targeting_spec", string(targeting))
	query.Set("optimization_goal", params.OptimizationGoal)
	query.Set("daily_budget_amount_cents", strconv.FormatInt(params.DailyBudgetInCents, 10))
	query.Set("currency", currency)

	accountID := strings.TrimPrefix(params.AdAccountID, "act_")
	endpoint := fmt.Sprintf("%s/act_%s/reachestimate", c.Cfg.Meta.URL, accountID)

	body, err := c.do(ctx, endpoint, query)
	if err != nil {
		return nil, err
	}

	return decodeReachEstimates(body)
}

// decodeReachEstimates aceita "data" como lista ou como objeto único
func decodeReachEstimates(body []byte) ([]metadomain.ReachEstimate, error) {
	var resp reachEstimateResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, errors.Wrap(ErrMalformedResponse, err.Error())
	}

	data := bytes.TrimSpace(resp.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil, errors.Wrap(ErrMalformedResponse, "missing data field")
	}

	switch data[0] {
	case '[':
		var estimates []metadomain.ReachEstimate
		if err := json.Unmarshal(data, &estimates); err != nil {
			return nil, errors.Wrap(ErrMalformedResponse, err.Error())
		}
		return estimates, nil
	case '{':
		var estimate metadomain.ReachEstimate
		if err := json.Unmarshal(data, &estimate); err != nil {
			return nil, errors.Wrap(ErrMalformedResponse, err.Error())
		}
		return []metadomain.ReachEstimate{estimate}, nil
	default:
		return nil, errors.Wrapf(ErrMalformedResponse, "unexpected data field %q", string(data))
	}
}
