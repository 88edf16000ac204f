package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/teamgrid/richinfo-server/internal/config"
	"github.com/teamgrid/richinfo-server/internal/logger"
	"github.com/teamgrid/richinfo-server/internal/utils"
	"github.com/teamgrid/richinfo-server/models"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs a [ServerAdapter] speaking the server's
// REST API over HTTP. The returned adapter is safe for concurrent use.
func NewHTTPServerAdapter(cfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.ServerURL, "/")).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: cli, logger: logger}, nil
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
		Post("/api/auth/register")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.adoptSession(resp)
}

func (h *httpServerAdapter) Login(ctx context.Context, user models.User) (models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(user).
		Post("/api/auth/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	return h.adoptSession(resp)
}

func (h *httpServerAdapter) GetRichInfo(ctx context.Context, userID int64) (models.RichInfo, error) {
	resp, err := h.authedRequest(ctx).
		Get(fmt.Sprintf("/api/users/%d/rich_info", userID))
	if err != nil {
		return models.RichInfo{}, fmt.Errorf("get rich info request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RichInfo{}, err
	}

	var richInfo models.RichInfo
	if err = json.Unmarshal(resp.Body(), &richInfo); err != nil {
		return models.RichInfo{}, fmt.Errorf("decode rich info response: %w", err)
	}

	return richInfo, nil
}

func (h *httpServerAdapter) SetRichInfo(ctx context.Context, fields []models.RichField) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.RichInfo{Fields: fields}).
		Put("/api/users/me/rich_info")
	if err != nil {
		return fmt.Errorf("set rich info request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) CreateTeam(ctx context.Context, team models.Team) (models.Team, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(team).
		Post("/api/teams")
	if err != nil {
		return models.Team{}, fmt.Errorf("create team request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Team{}, err
	}

	var created models.Team
	if err = json.Unmarshal(resp.Body(), &created); err != nil {
		return models.Team{}, fmt.Errorf("decode create team response: %w", err)
	}

	return created, nil
}

func (h *httpServerAdapter) AddTeamMember(ctx context.Context, teamID, userID int64) error {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.TeamMembership{UserID: userID}).
		Post(fmt.Sprintf("/api/teams/%d/members", teamID))
	if err != nil {
		return fmt.Errorf("add team member request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpServerAdapter) GetServerVersion(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("get version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var version models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &version); err != nil {
		return "", fmt.Errorf("decode version response: %w", err)
	}

	return version.Version, nil
}

// adoptSession extracts the bearer token from the Authorization response
// header, stores it, and decodes the user record from the response body.
func (h *httpServerAdapter) adoptSession(resp *resty.Response) (models.User, error) {
	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("parse bearer token: %w", err)
	}

	var user models.User
	if body := resp.Body(); len(body) > 0 {
		if err = json.Unmarshal(body, &user); err != nil {
			return models.User{}, fmt.Errorf("decode user response: %w", err)
		}
	}
	if user.UserID == 0 {
		if userID, idErr := utils.ParseUserIDFromJWT(token); idErr == nil {
			user.UserID = userID
		}
	}

	h.SetToken(token)
	return user, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
