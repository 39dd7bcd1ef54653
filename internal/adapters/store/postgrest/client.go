package postgrest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"github.com/hakambing/bikebuddy-bot/internal/domain"
	"github.com/hakambing/bikebuddy-bot/internal/ports"
)

const (
	maxResponseBytes      = 4 << 20
	defaultPageSize       = 500
	defaultRequestTimeout = 15 * time.Second
	defaultCreatedColumn  = "created_at"
	restPathPrefix        = "/rest/v1"
	recordColumns         = "id,date,maintenance_type,price,location,remarks,total_mileage"
	preferRepresentation  = "return=representation"
)

// NoCreatedColumn is the CreatedColumn value for tables without a creation timestamp.
const NoCreatedColumn = "-"

var errSequenceConsumed = errors.New("record listing already consumed")

type Config struct {
	// BaseURL is the project URL, e.g. https://abc.supabase.co. A URL that already
	// ends in /rest/v1 is used as is.
	BaseURL string
	Table   string
	APIKey  string
	// CreatedColumn orders records by creation. Empty means created_at;
	// NoCreatedColumn orders by id alone.
	CreatedColumn  string
	PageSize       int
	RequestTimeout time.Duration
	HTTPClient     *http.Client
}

// Client talks to a PostgREST table holding one row per maintenance record.
type Client struct {
	endpoint       string
	apiKey         string
	latestOrder    string
	pageSize       int
	requestTimeout time.Duration
	httpClient     *http.Client
}

var _ ports.RecordStore = (*Client)(nil)

func NewClient(cfg Config) (*Client, error) {
	endpoint, err := buildTableURL(cfg.BaseURL, cfg.Table)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("store api key is required")
	}

	latestOrder := "id.desc"
	switch createdColumn := strings.TrimSpace(cfg.CreatedColumn); createdColumn {
	case NoCreatedColumn:
	case "":
		latestOrder = defaultCreatedColumn + ".desc,id.desc"
	default:
		latestOrder = createdColumn + ".desc,id.desc"
	}

	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}

	return &Client{
		endpoint:       endpoint,
		apiKey:         cfg.APIKey,
		latestOrder:    latestOrder,
		pageSize:       pageSize,
		requestTimeout: cfg.RequestTimeout,
		httpClient:     cfg.HTTPClient,
	}, nil
}

func (c *Client) Create(ctx context.Context, record domain.Record) (domain.RecordID, error) {
	rows, err := c.do(ctx, request{
		op:     "create record",
		kind:   domain.ErrRemoteWrite,
		method: http.MethodPost,
		query:  url.Values{"select": {recordColumns}},
		body:   toInsertRow(record),
		prefer: preferRepresentation,
	})
	if err != nil {
		return "", err
	}
	if len(rows) == 0 || rows[0].ID == "" {
		return "", fmt.Errorf("%w: create record: response carried no id", domain.ErrRemoteWrite)
	}

	return domain.RecordID(rows[0].ID), nil
}

func (c *Client) LatestByFilter(ctx context.Context, typeFilter string) (domain.Record, error) {
	query := url.Values{
		"select": {recordColumns},
		"order":  {c.latestOrder},
		"limit":  {"1"},
	}
	if filter := strings.TrimSpace(typeFilter); filter != "" {
		query.Set("maintenance_type", typeFilterParam(filter))
	}

	rows, err := c.do(ctx, request{
		op:     "latest record",
		kind:   domain.ErrRemoteRead,
		method: http.MethodGet,
		query:  query,
	})
	if err != nil {
		return domain.Record{}, err
	}
	if len(rows) == 0 {
		return domain.Record{}, fmt.Errorf("%w: no record matches %q", domain.ErrRecordNotFound, typeFilter)
	}

	return rows[0].toDomain(), nil
}

func (c *Client) FetchByID(ctx context.Context, id domain.RecordID) (domain.Record, error) {
	rows, err := c.do(ctx, request{
		op:     "fetch record",
		kind:   domain.ErrRemoteRead,
		method: http.MethodGet,
		query: url.Values{
			"select": {recordColumns},
			"id":     {"eq." + string(id)},
			"limit":  {"1"},
		},
	})
	if err != nil {
		return domain.Record{}, err
	}
	if len(rows) == 0 {
		return domain.Record{}, fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, id)
	}

	return rows[0].toDomain(), nil
}

func (c *Client) UpdateField(ctx context.Context, id domain.RecordID, field domain.Field, value string) error {
	if !slices.Contains(domain.Fields, field) {
		return fmt.Errorf("%w: %q", domain.ErrUnknownField, field)
	}

	rows, err := c.do(ctx, request{
		op:     "update record",
		kind:   domain.ErrRemoteWrite,
		method: http.MethodPatch,
		query: url.Values{
			"select": {"id"},
			"id":     {"eq." + string(id)},
		},
		body:   map[string]string{string(field): value},
		prefer: preferRepresentation,
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, id)
	}

	return nil
}

func (c *Client) Delete(ctx context.Context, id domain.RecordID) error {
	rows, err := c.do(ctx, request{
		op:     "delete record",
		kind:   domain.ErrRemoteWrite,
		method: http.MethodDelete,
		query: url.Values{
			"select": {"id"},
			"id":     {"eq." + string(id)},
		},
		prefer: preferRepresentation,
	})
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return fmt.Errorf("%w: id %s", domain.ErrRecordNotFound, id)
	}

	return nil
}

// ListAll pages through the table newest date first. The returned sequence fetches
// lazily and yields an error if ranged over a second time.
func (c *Client) ListAll(ctx context.Context) iter.Seq2[domain.Record, error] {
	var consumed atomic.Bool

	return func(yield func(domain.Record, error) bool) {
		if consumed.Swap(true) {
			yield(domain.Record{}, errSequenceConsumed)
			return
		}

		for offset := 0; ; offset += c.pageSize {
			rows, err := c.do(ctx, request{
				op:     "list records",
				kind:   domain.ErrRemoteRead,
				method: http.MethodGet,
				query: url.Values{
					"select": {recordColumns},
					"order":  {"date.desc,id.desc"},
					"limit":  {strconv.Itoa(c.pageSize)},
					"offset": {strconv.Itoa(offset)},
				},
			})
			if err != nil {
				yield(domain.Record{}, err)
				return
			}

			for _, row := range rows {
				if !yield(row.toDomain(), nil) {
					return
				}
			}
			if len(rows) < c.pageSize {
				return
			}
		}
	}
}

type request struct {
	op     string
	kind   error
	method string
	query  url.Values
	body   any
	prefer string
}

func (c *Client) do(ctx context.Context, r request) ([]recordRow, error) {
	var body io.Reader
	if r.body != nil {
		encoded, err := json.Marshal(r.body)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: encode body: %w", r.kind, r.op, err)
		}
		body = bytes.NewReader(encoded)
	}

	requestCtx, cancel := c.requestContext(ctx)
	defer cancel()

	endpoint := c.endpoint
	if len(r.query) > 0 {
		endpoint += "?" + r.query.Encode()
	}

	req, err := http.NewRequestWithContext(requestCtx, r.method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: create request: %w", r.kind, r.op, err)
	}
	req.Header.Set("apikey", c.apiKey)
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.prefer != "" {
		req.Header.Set("Prefer", r.prefer)
	}

	resp, err := c.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", r.kind, r.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: %s: %s", r.kind, r.op, decodeRemoteError(resp))
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var rows []recordRow
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %s: decode response: %w", r.kind, r.op, err)
	}

	return rows, nil
}

func (c *Client) client() *http.Client {
	if c.httpClient != nil {
		return c.httpClient
	}
	return http.DefaultClient
}

func (c *Client) requestContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}
	}

	timeout := c.requestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	return context.WithTimeout(ctx, timeout)
}

// typeFilterParam matches maintenance_type exactly, ignoring case. PostgREST turns every
// "*" in a like pattern into "%" before escaping applies, so such filters go through
// an anchored regex instead.
func typeFilterParam(filter string) string {
	if strings.Contains(filter, "*") {
		return "imatch.^" + regexp.QuoteMeta(filter) + "$"
	}
	return "ilike." + escapeLike(filter)
}

func buildTableURL(baseURL string, table string) (string, error) {
	if strings.TrimSpace(baseURL) == "" {
		return "", errors.New("store base url is required")
	}
	table = strings.TrimSpace(table)
	if table == "" {
		return "", errors.New("store table is required")
	}

	parsed, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse store base url: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return "", errors.New("store base url must use http or https")
	}
	if parsed.Host == "" {
		return "", errors.New("store base url host is required")
	}

	parsed.RawQuery = ""
	parsed.Fragment = ""
	if !strings.HasSuffix(strings.TrimSuffix(parsed.Path, "/"), restPathPrefix) {
		parsed = parsed.JoinPath(restPathPrefix)
	}

	return parsed.JoinPath(table).String(), nil
}

// escapeLike makes an ilike pattern match the value literally.
func escapeLike(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(value)
}
