package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/formkeeper/formkeeper/internal/utils"
	"github.com/formkeeper/formkeeper/models"
)

type HTTPClientConfig struct {
	BaseURL string
	Timeout time.Duration
}

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string
}

func NewHTTPServerAdapter(cfg HTTPClientConfig) ServerAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "http://localhost:8080"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(cfg.Timeout)

	return &httpServerAdapter{client: cli}
}

func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) Register(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.User{}, fmt.Errorf("register parse user id: %w", err)
	}

	h.SetToken(token)
	return models.User{UserID: userID, Login: user.Login, Name: user.Name}, nil
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.Token, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/user/login")
	if err != nil {
		return models.Token{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Token{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse bearer token: %w", err)
	}
	userID, err := utils.ParseUserIDFromJWT(token)
	if err != nil {
		return models.Token{}, fmt.Errorf("login parse user id: %w", err)
	}

	h.SetToken(token)
	return models.Token{SignedString: token, UserID: userID}, nil
}

func (h *httpServerAdapter) CreateForm(ctx context.Context) (models.Form, error) {
	resp, err := h.authedRequest(ctx).Post("/api/form")
	if err != nil {
		return models.Form{}, fmt.Errorf("create form request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Form{}, err
	}

	var form models.Form
	if err = json.Unmarshal(resp.Body(), &form); err != nil {
		return models.Form{}, fmt.Errorf("decode create form response: %w", err)
	}

	return form, nil
}

func (h *httpServerAdapter) ListForms(ctx context.Context) ([]models.Form, error) {
	resp, err := h.authedRequest(ctx).Get("/api/forms")
	if err != nil {
		return nil, fmt.Errorf("list forms request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var forms []models.Form
	if err = json.Unmarshal(resp.Body(), &forms); err != nil {
		return nil, fmt.Errorf("decode list forms response: %w", err)
	}

	return forms, nil
}

func (h *httpServerAdapter) GetForm(ctx context.Context, formID string) (models.FormWithComponents, error) {
	resp, err := h.authedRequest(ctx).Get("/api/form/" + formID)
	if err != nil {
		return models.FormWithComponents{}, fmt.Errorf("get form request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormWithComponents{}, err
	}

	var form models.FormWithComponents
	if err = json.Unmarshal(resp.Body(), &form); err != nil {
		return models.FormWithComponents{}, fmt.Errorf("decode get form response: %w", err)
	}

	return form, nil
}

func (h *httpServerAdapter) SaveComponents(ctx context.Context, formID string, components []models.Component) error {
	if components == nil {
		// an empty save is meaningful: it empties the form
		components = []models.Component{}
	}

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(components).
		Post("/api/form/" + formID)
	if err != nil {
		return fmt.Errorf("save components request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) DeleteForm(ctx context.Context, formID string) error {
	resp, err := h.authedRequest(ctx).Delete("/api/form/" + formID)
	if err != nil {
		return fmt.Errorf("delete form request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetPreview(ctx context.Context, formID string) (models.FormWithComponents, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/preview/" + formID)
	if err != nil {
		return models.FormWithComponents{}, fmt.Errorf("get preview request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.FormWithComponents{}, err
	}

	var form models.FormWithComponents
	if err = json.Unmarshal(resp.Body(), &form); err != nil {
		return models.FormWithComponents{}, fmt.Errorf("decode preview response: %w", err)
	}

	return form, nil
}

func (h *httpServerAdapter) SubmitProspect(ctx context.Context, formID string, answers map[string]string) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(answers).
		Post("/api/prospects/" + formID)
	if err != nil {
		return fmt.Errorf("submit prospect request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListProspects(ctx context.Context, formID string) ([]models.Prospect, error) {
	resp, err := h.authedRequest(ctx).Get("/api/prospects/" + formID)
	if err != nil {
		return nil, fmt.Errorf("list prospects request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var prospects []models.Prospect
	if err = json.Unmarshal(resp.Body(), &prospects); err != nil {
		return nil, fmt.Errorf("decode list prospects response: %w", err)
	}

	return prospects, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
