// Package portal talks to the U-Campus student portal: it logs in and
// fetches the raw grades and attendance pages of each tracked course.
package portal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/vytor/edugame/internal/extract"
	"github.com/vytor/edugame/internal/logger"
	"github.com/vytor/edugame/internal/metrics"
	"github.com/vytor/edugame/internal/models"
	"golang.org/x/time/rate"
)

const (
	SessionCookieName = "_ucampus"
	loginPath         = "/auth/api"
)

type Options struct {
	BaseURL   string
	TermPath  string
	UserAgent string
	// RateLimit is the maximum requests per second across all sessions. 0 disables it.
	RateLimit float64
	// Timeout bounds each request. 0 means no timeout.
	Timeout  time.Duration
	Settings Settings
}

// Client creates one independent session per login. Sessions never share
// cookies.
type Client struct {
	baseURL *url.URL
	opts    Options
	limiter *rate.Limiter
	locator extract.Locator
}

func New(opts Options) (*Client, error) {
	baseURL, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse portal base url: %w", err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("portal base url must be absolute: %q", opts.BaseURL)
	}
	opts.TermPath = strings.Trim(opts.TermPath, "/")
	if opts.Settings.Markers == (extract.Markers{}) {
		opts.Settings = DefaultSettings()
	}

	c := &Client{
		baseURL: baseURL,
		opts:    opts,
		locator: extract.NewLocator(opts.Settings.Markers),
	}
	if opts.RateLimit > 0 {
		burst := int(opts.RateLimit)
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}
	return c, nil
}

type loginResponse struct {
	Status int    `json:"status"`
	U      string `json:"u"`
	M      string `json:"m"`
}

func (c *Client) newHTTPClient() (*resty.Client, http.CookieJar, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, nil, err
	}

	hc := resty.New()
	hc.SetBaseURL(c.baseURL.String())
	hc.SetCookieJar(jar)
	hc.SetHeader("user-agent", c.opts.UserAgent)
	hc.SetRedirectPolicy(resty.FlexibleRedirectPolicy(10))
	if c.opts.Timeout > 0 {
		hc.SetTimeout(c.opts.Timeout)
	}

	if c.limiter != nil {
		limiter := c.limiter
		hc.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
			return limiter.Wait(req.Context())
		})
	}
	return hc, jar, nil
}

// Establish logs in with creds and returns a session holding the portal
// cookies. Nothing is retried.
func (c *Client) Establish(ctx context.Context, creds models.Credentials) (SessionInterface, error) {
	log := logger.FromContext(ctx).WithPrefix("portal").WithField("username", creds.Username)
	start := time.Now()

	hc, jar, err := c.newHTTPClient()
	if err != nil {
		return nil, fmt.Errorf("create portal client: %w", err)
	}

	rootURL := c.baseURL.String() + "/"
	metrics.PortalRequestsTotal.WithLabelValues("root").Inc()
	res, err := hc.R().SetContext(ctx).Get("/")
	if err != nil {
		log.Error("failed to reach portal: %v", err)
		return nil, &NetworkError{Op: "GET", URL: rootURL, Err: err}
	}

	sess := sessionCookie(res.Cookies(), jar.Cookies(c.baseURL))
	if sess == "" {
		log.Error("portal did not set %s cookie", SessionCookieName)
		return nil, &AuthError{Kind: SessionCookieMissing}
	}

	metrics.PortalRequestsTotal.WithLabelValues("login").Inc()
	res, err = hc.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"servicio": "ucampus",
			"debug":    "0",
			"_sess":    sess,
			"_LB":      "uah02-int",
			"lang":     "es",
			"username": creds.Username,
			"password": creds.Password,
			"recordar": "1",
		}).
		Post(loginPath)
	if err != nil {
		log.Error("login request failed: %v", err)
		return nil, &NetworkError{Op: "POST", URL: c.baseURL.String() + loginPath, Err: err}
	}

	var login loginResponse
	if err := json.Unmarshal(res.Body(), &login); err != nil {
		log.Error("failed to decode login response: status=%d", res.StatusCode())
		return nil, &NetworkError{Op: "decode", URL: c.baseURL.String() + loginPath, Err: err}
	}
	if login.Status != http.StatusOK {
		log.Warn("login refused: status=%d", login.Status)
		return nil, &AuthError{Kind: InvalidCredentials, Message: login.M}
	}

	if login.U != "" {
		metrics.PortalRequestsTotal.WithLabelValues("landing").Inc()
		if _, err := hc.R().SetContext(ctx).Get(login.U); err != nil {
			log.Error("failed to follow landing url: %v", err)
			return nil, &NetworkError{Op: "GET", URL: login.U, Err: err}
		}
	}

	log.Info("portal session established in %v", time.Since(start))
	return &Session{
		http:    hc,
		term:    c.opts.TermPath,
		locator: c.locator,
	}, nil
}

func sessionCookie(sets ...[]*http.Cookie) string {
	for _, cookies := range sets {
		for _, ck := range cookies {
			if ck.Name == SessionCookieName && ck.Value != "" {
				return ck.Value
			}
		}
	}
	return ""
}
