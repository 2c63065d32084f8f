package backendsvc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/pathshala/admin/core"
	"github.com/pathshala/admin/core/session"
)

// HeaderRequestID carries the id used to correlate client and server logs.
const HeaderRequestID = "X-Request-ID"

var newRequestID = uuid.NewString // mockable

// Client talks to the Pathshala backend.
// Every call issues exactly one request: no retry, no backoff, no timeout beyond ctx.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     core.Logger
}

var _ session.Authenticator = (*Client)(nil)

func NewClient(baseURL string, logger core.Logger, httpClient ...*http.Client) *Client {
	hc := http.DefaultClient
	if len(httpClient) > 0 && httpClient[0] != nil {
		hc = httpClient[0]
	}
	return &Client{
		baseURL:    strings.TrimRight(core.CleanString(baseURL), "/"),
		httpClient: hc,
		logger:     logger,
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// envelope is the {status, message, data} wrapper of most responses.
type envelope struct {
	Status  *bool           `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	raw     []byte
}

// decodeData fails when data is absent, since the endpoints calling it all declare one.
func (env envelope) decodeData(out interface{}, failStatus int) error {
	if len(env.Data) == 0 || string(env.Data) == "null" {
		return envelopeError(failStatus, msgMissingData, nil)
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return envelopeError(failStatus, msgInvalidBody, err)
	}
	return nil
}

// decodeRoot decodes the whole body, for endpoints returning their fields next to status.
func (env envelope) decodeRoot(out interface{}, failStatus int) error {
	if err := json.Unmarshal(env.raw, out); err != nil {
		return envelopeError(failStatus, msgInvalidBody, err)
	}
	return nil
}

// call sends the request and checks the envelope. Only an explicit `"status": true` is a success;
// any other 2xx answer becomes a KindEnvelope error with status `failStatus`.
func (c *Client) call(ctx context.Context, method, endpoint string, payload interface{}, failStatus int) (envelope, error) {
	raw, _, err := c.do(ctx, method, c.baseURL+endpoint, payload)
	if err != nil {
		return envelope{}, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return envelope{}, envelopeError(failStatus, msgInvalidBody, err)
	}
	env.raw = raw
	if env.Status == nil || !*env.Status {
		return envelope{}, envelopeError(failStatus, env.Message, nil)
	}
	return env, nil
}

// do issues one request and returns the body of a 2xx response with its content type.
func (c *Client) do(ctx context.Context, method, url string, payload interface{}) ([]byte, string, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, "", errors.Wrap(err, "encoding request")
		}
		body = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, "", networkError(err)
	}
	req.Header.Set("Content-Type", "application/json")
	reqID := newRequestID()
	req.Header.Set(HeaderRequestID, reqID)

	res, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("backend unreachable", err, map[string]interface{}{"method": method, "url": url, "request_id": reqID})
		return nil, "", networkError(err)
	}
	defer res.Body.Close()

	raw, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, "", networkError(err)
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		var msg struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &msg)
		c.logger.Debug("backend error", map[string]interface{}{
			"method": method, "url": url, "status": res.StatusCode, "request_id": reqID,
		})
		return nil, "", httpError(res.StatusCode, msg.Message)
	}
	return raw, res.Header.Get("Content-Type"), nil
}
