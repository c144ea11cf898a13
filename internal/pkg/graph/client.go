// Package graph is a thin Microsoft Graph client covering the slice of the
// API this service needs: user profile, OneDrive and SharePoint file listing,
// and file content download.
package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/microsoft"

	"docintel-be/internal/config"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/logger"
)

const graphBaseURL = "https://graph.microsoft.com/v1.0"

var graphScopes = []string{
	"https://graph.microsoft.com/User.Read",
	"https://graph.microsoft.com/Files.Read.All",
	"https://graph.microsoft.com/Sites.Read.All",
	"offline_access",
}

// MicrosoftUser is the profile slice read from /me.
type MicrosoftUser struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	GivenName   string `json:"givenName"`
	Surname     string `json:"surname"`
}

// MicrosoftFileInfo is one drive item as exposed to clients.
type MicrosoftFileInfo struct {
	Id                   string            `json:"id"`
	Name                 string            `json:"name"`
	WebUrl               string            `json:"webUrl"`
	Size                 int64             `json:"size"`
	MimeType             string            `json:"mimeType"`
	LastModifiedDateTime string            `json:"lastModifiedDateTime"`
	Source               entity.FileSource `json:"source"`
	DownloadUrl          string            `json:"downloadUrl,omitempty"`
	SiteId               string            `json:"siteId,omitempty"`
}

type IGraphClient interface {
	Configured() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*oauth2.Token, error)
	GetUserProfile(ctx context.Context, accessToken string) (*MicrosoftUser, error)
	ListOneDriveFiles(ctx context.Context, accessToken, query string) ([]MicrosoftFileInfo, error)
	ListSharePointFiles(ctx context.Context, accessToken, query string) ([]MicrosoftFileInfo, error)
	DownloadFile(ctx context.Context, accessToken, fileId string, source entity.FileSource, siteId string) ([]byte, error)
}

type graphClient struct {
	conf       *oauth2.Config
	httpClient *http.Client
	log        logger.ILogger
	configured bool
}

func NewClient(cfg config.MicrosoftConfig, redirectURL string, log logger.ILogger) IGraphClient {
	configured := cfg.TenantID != "" && cfg.ClientID != "" && cfg.ClientSecret != ""

	conf := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  redirectURL,
		Scopes:       graphScopes,
		Endpoint:     microsoft.AzureADEndpoint(cfg.TenantID),
	}

	return &graphClient{
		conf:       conf,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        log,
		configured: configured,
	}
}

func (c *graphClient) Configured() bool {
	return c.configured
}

func (c *graphClient) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

func (c *graphClient) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	ctx = context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
	return c.conf.Exchange(ctx, code)
}

func (c *graphClient) get(ctx context.Context, accessToken, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, graphBaseURL+path, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("graph request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("graph returned %d: %s", resp.StatusCode, string(body))
	}

	return decodeJSON(resp.Body, out)
}

func (c *graphClient) GetUserProfile(ctx context.Context, accessToken string) (*MicrosoftUser, error) {
	var raw struct {
		Id                string `json:"id"`
		Mail              string `json:"mail"`
		UserPrincipalName string `json:"userPrincipalName"`
		DisplayName       string `json:"displayName"`
		GivenName         string `json:"givenName"`
		Surname           string `json:"surname"`
	}
	if err := c.get(ctx, accessToken, "/me", &raw); err != nil {
		return nil, err
	}

	email := raw.Mail
	if email == "" {
		email = raw.UserPrincipalName
	}

	return &MicrosoftUser{
		Id:          raw.Id,
		Email:       email,
		DisplayName: raw.DisplayName,
		GivenName:   raw.GivenName,
		Surname:     raw.Surname,
	}, nil
}

type driveItem struct {
	Id                   string `json:"id"`
	Name                 string `json:"name"`
	WebUrl               string `json:"webUrl"`
	Size                 int64  `json:"size"`
	LastModifiedDateTime string `json:"lastModifiedDateTime"`
	DownloadUrl          string `json:"@microsoft.graph.downloadUrl"`
	File                 *struct {
		MimeType string `json:"mimeType"`
	} `json:"file"`
}

func (d driveItem) toFileInfo(source entity.FileSource, siteId string) MicrosoftFileInfo {
	mimeType := "application/octet-stream"
	if d.File != nil && d.File.MimeType != "" {
		mimeType = d.File.MimeType
	}
	return MicrosoftFileInfo{
		Id:                   d.Id,
		Name:                 d.Name,
		WebUrl:               d.WebUrl,
		Size:                 d.Size,
		MimeType:             mimeType,
		LastModifiedDateTime: d.LastModifiedDateTime,
		Source:               source,
		DownloadUrl:          d.DownloadUrl,
		SiteId:               siteId,
	}
}

func (c *graphClient) ListOneDriveFiles(ctx context.Context, accessToken, query string) ([]MicrosoftFileInfo, error) {
	endpoint := "/me/drive/root/children"
	if query != "" {
		endpoint += `?$search="` + url.QueryEscape(query) + `"`
	}

	var raw struct {
		Value []driveItem `json:"value"`
	}
	if err := c.get(ctx, accessToken, endpoint, &raw); err != nil {
		return nil, err
	}

	files := make([]MicrosoftFileInfo, 0, len(raw.Value))
	for _, item := range raw.Value {
		files = append(files, item.toFileInfo(entity.FileSourceOneDrive, ""))
	}
	return files, nil
}

// ListSharePointFiles walks the user's followed sites and lists each site's
// default drive root. Per-site failures are logged and skipped so one broken
// site does not empty the whole listing.
func (c *graphClient) ListSharePointFiles(ctx context.Context, accessToken, query string) ([]MicrosoftFileInfo, error) {
	endpoint := "/me/followedSites"
	if query != "" {
		endpoint += `?$search="` + url.QueryEscape(query) + `"`
	}

	var sites struct {
		Value []struct {
			Id string `json:"id"`
		} `json:"value"`
	}
	if err := c.get(ctx, accessToken, endpoint, &sites); err != nil {
		c.log.Warn("graph", "Failed to list followed sites", map[string]interface{}{"error": err.Error()})
		return []MicrosoftFileInfo{}, nil
	}

	var files []MicrosoftFileInfo
	for _, site := range sites.Value {
		var raw struct {
			Value []driveItem `json:"value"`
		}
		if err := c.get(ctx, accessToken, "/sites/"+site.Id+"/drive/root/children", &raw); err != nil {
			c.log.Warn("graph", "Failed to list site files", map[string]interface{}{
				"site_id": site.Id,
				"error":   err.Error(),
			})
			continue
		}
		for _, item := range raw.Value {
			files = append(files, item.toFileInfo(entity.FileSourceSharePoint, site.Id))
		}
	}
	return files, nil
}

func (c *graphClient) DownloadFile(ctx context.Context, accessToken, fileId string, source entity.FileSource, siteId string) ([]byte, error) {
	var endpoint string
	if source == entity.FileSourceOneDrive {
		endpoint = "/me/drive/items/" + fileId + "/content"
	} else {
		if siteId == "" {
			return nil, fmt.Errorf("siteId is required for sharepoint downloads")
		}
		endpoint = "/sites/" + siteId + "/drive/items/" + fileId + "/content"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, graphBaseURL+endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("graph download failed: %w", err)
	}
	defer resp.Body.Close()

	// Graph redirects content requests to a pre-signed URL; the default
	// client follows it transparently.
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("graph returned %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}

func decodeJSON(r io.Reader, out interface{}) error {
	if err := json.NewDecoder(r).Decode(out); err != nil {
		return fmt.Errorf("decode graph response: %w", err)
	}
	return nil
}

// IsCorporateEmail reports whether the address belongs to the configured
// corporate domain.
func IsCorporateEmail(email, domain string) bool {
	return strings.HasSuffix(strings.ToLower(email), strings.ToLower(domain))
}
