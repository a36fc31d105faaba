package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/ytget/item-list/internal/model"
)

// ErrUnexpectedStatus is returned when the endpoint answers with a non-2xx status
var ErrUnexpectedStatus = errors.New("unexpected response status")

// Service fetches records over HTTP
type Service struct {
	client *http.Client
	logger *zap.Logger
	flight singleflight.Group
}

// NewService creates a new fetch service. A nil client uses a fresh
// http.Client with the transport defaults; a nil logger disables logging.
func NewService(client *http.Client, logger *zap.Logger) *Service {
	if client == nil {
		client = &http.Client{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		client: client,
		logger: logger.Named("fetch"),
	}
}

// SetTimeout sets the overall request timeout. Zero means no timeout.
func (s *Service) SetTimeout(timeout time.Duration) {
	s.client.Timeout = timeout
}

// Fetch returns the records published at url. Failures are logged and
// reported as an empty slice. Concurrent calls for the same url share one request.
func (s *Service) Fetch(ctx context.Context, url string) []model.Record {
	v, err, shared := s.flight.Do(url, func() (any, error) {
		return s.FetchRecords(ctx, url)
	})
	if err != nil {
		s.logger.Warn("fetch failed, showing empty list", zap.String("url", url), zap.Error(err))
		return []model.Record{}
	}

	records := v.([]model.Record)
	if shared {
		return slices.Clone(records)
	}
	return records
}

// FetchRecords performs a GET on url and decodes the body. Unlike Fetch it
// reports failures to the caller.
func (s *Service) FetchRecords(ctx context.Context, url string) ([]model.Record, error) {
	log := s.logger.With(zap.String("request_id", uuid.NewString()), zap.String("url", url))
	started := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	log.Debug("requesting records")
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	records, err := DecodeRecords(body)
	if err != nil {
		return nil, err
	}

	log.Info("records fetched",
		zap.Int("records", len(records)),
		zap.Int("bytes", len(body)),
		zap.Duration("elapsed", time.Since(started)))
	return records, nil
}

// DecodeRecords parses a JSON array of records. A JSON null yields an empty slice.
func DecodeRecords(body []byte) ([]model.Record, error) {
	var records []model.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if records == nil {
		records = []model.Record{}
	}
	return records, nil
}
