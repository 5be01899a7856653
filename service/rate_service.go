package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/boilermanc/atlurbanfarms-sub005/metrics"
	"github.com/boilermanc/atlurbanfarms-sub005/models"
	"github.com/boilermanc/atlurbanfarms-sub005/repository"
	"github.com/boilermanc/atlurbanfarms-sub005/utils"

	"github.com/shopspring/decimal"
)

// RateShopClient calls the external rate-shopping gateway over HTTP
type RateShopClient struct {
	baseURL string
	client  *http.Client
}

// NewRateShopClient creates a new RateShopClient for the given gateway URL
func NewRateShopClient(baseURL string) *RateShopClient {
	return &RateShopClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Ensure RateShopClient implements RateShopClientInterface
var _ RateShopClientInterface = (*RateShopClient)(nil)

// FetchRates posts the destination and cart to the gateway and returns the
// raw candidate rates. Amounts come back unadjusted; markup and handling are
// applied later from carrier configuration.
func (c *RateShopClient) FetchRates(ctx context.Context, req models.RateRequest) ([]models.Rate, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode rate request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/rates", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build rate request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("rate shop request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("rate shop returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	var out models.RateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode rate response: %w", err)
	}

	return out.Rates, nil
}

// RateService quotes shipping rates for a cart: fetch from the gateway,
// deduplicate, apply carrier configuration, sort. Implements
// RateServiceInterface.
type RateService struct {
	client      RateShopClientInterface
	carrierRepo repository.CarrierConfigurationRepositoryInterface
	metrics     *metrics.Registry
}

// NewRateService creates a new RateService
func NewRateService(
	client RateShopClientInterface,
	carrierRepo repository.CarrierConfigurationRepositoryInterface,
	reg *metrics.Registry,
) *RateService {
	return &RateService{
		client:      client,
		carrierRepo: carrierRepo,
		metrics:     reg,
	}
}

// Ensure RateService implements RateServiceInterface
var _ RateServiceInterface = (*RateService)(nil)

var oneHundred = decimal.NewFromInt(100)

// QuoteRates returns the adjusted rate options for a cart, cheapest first.
// The gateway can return the same carrier/service pair more than once (one
// per account, or per origin warehouse); only the cheapest of each pair is
// kept. Rates for carriers that are disabled, or not configured at all, are
// dropped.
func (s *RateService) QuoteRates(ctx context.Context, req *models.RateRequest) ([]models.Rate, error) {
	started := time.Now()
	s.metrics.RateQuotes.Inc()

	if err := validateRateRequest(req); err != nil {
		return nil, err
	}

	raw, err := s.client.FetchRates(ctx, *req)
	if err != nil {
		s.metrics.RateQuoteFailures.Inc()
		return nil, fmt.Errorf("failed to fetch rates: %w", err)
	}

	carriers, err := s.carrierRepo.ListEnabled(ctx)
	if err != nil {
		s.metrics.RateQuoteFailures.Inc()
		return nil, fmt.Errorf("failed to load carrier configurations: %w", err)
	}

	rates := dedupeCheapest(raw)
	rates = applyCarrierConfigurations(rates, carriers)

	sort.Slice(rates, func(i, j int) bool {
		return rates[i].Total.LessThan(rates[j].Total)
	})

	s.metrics.RateLatencySec.Observe(time.Since(started).Seconds())
	log.Printf("💰 Quoted %d rates (%d raw) for %s, %s", len(rates), len(raw), req.Address.City, req.Address.State)
	return rates, nil
}

func validateRateRequest(req *models.RateRequest) error {
	if len(req.Items) == 0 {
		return fmt.Errorf("at least one item is required")
	}
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return fmt.Errorf("item quantity must be positive")
		}
	}
	addr := req.Address
	if addr.Street1 == "" || addr.City == "" || addr.State == "" || addr.PostalCode == "" {
		return fmt.Errorf("street1, city, state and postalCode are required")
	}
	return nil
}

// dedupeCheapest keeps the cheapest raw amount per (carrier, service) pair
func dedupeCheapest(raw []models.Rate) []models.Rate {
	best := make(map[string]models.Rate, len(raw))
	for _, r := range raw {
		key := strings.ToLower(r.CarrierCode) + "|" + strings.ToLower(r.ServiceCode)
		if cur, ok := best[key]; ok && !r.Amount.LessThan(cur.Amount) {
			continue
		}
		best[key] = r
	}

	rates := make([]models.Rate, 0, len(best))
	for _, r := range best {
		rates = append(rates, r)
	}
	return rates
}

// applyCarrierConfigurations drops rates for carriers that are not enabled
// and computes each survivor's displayed total:
// amount * (1 + markup/100) + handling, rounded to cents.
func applyCarrierConfigurations(rates []models.Rate, carriers []models.CarrierConfiguration) []models.Rate {
	configs := make(map[string]models.CarrierConfiguration, len(carriers))
	for _, c := range carriers {
		configs[strings.ToLower(c.CarrierCode)] = c
	}

	out := make([]models.Rate, 0, len(rates))
	for _, r := range rates {
		cfg, ok := configs[strings.ToLower(r.CarrierCode)]
		if !ok {
			continue
		}

		multiplier := decimal.NewFromInt(1).Add(cfg.MarkupPercent.Div(oneHundred))
		r.Total = r.Amount.Mul(multiplier).Add(cfg.HandlingFee).Round(2)

		if cfg.DisplayName != "" {
			r.CarrierName = cfg.DisplayName
		} else if r.CarrierName == "" {
			r.CarrierName = utils.MapCarrierToLabel(r.CarrierCode)
		}

		out = append(out, r)
	}
	return out
}
