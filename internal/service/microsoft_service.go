package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"docintel-be/internal/dto"
	"docintel-be/internal/entity"
	"docintel-be/internal/pkg/graph"
	"docintel-be/internal/pkg/logger"
	"docintel-be/internal/repository/specification"
	"docintel-be/internal/repository/unitofwork"
)

// OAuth failure codes surfaced to the login page as ?error=<code>.
const (
	OAuthErrAzureNotConfigured = "azure_not_configured"
	OAuthErrCancelled          = "oauth_cancelled"
	OAuthErrInvalidState       = "invalid_state"
	OAuthErrTokenFailed        = "token_failed"
	OAuthErrInvalidDomain      = "invalid_domain"
	OAuthErrApprovalPending    = "approval_pending"
	OAuthErrAccessRejected     = "access_rejected"
	OAuthErrApprovalRequired   = "approval_required"
	OAuthErrNotApproved        = "not_approved"
	OAuthErrAuthFailed         = "auth_failed"
)

var ErrMicrosoftTokenMissing = errors.New("Microsoft access token not available")

// CallbackResult carries either a fresh session token or a failure code for
// the login-page redirect. Exactly one of the two is set.
type CallbackResult struct {
	SessionToken string
	ErrorCode    string
}

type IMicrosoftService interface {
	ConfigStatus() dto.MicrosoftConfigStatusResponse
	BeginAuth(ctx context.Context) (string, string, error)
	HandleCallback(ctx context.Context, code, state, oauthError string) *CallbackResult
	ListFiles(ctx context.Context, user *entity.User, source, query string) (*dto.MicrosoftFilesResponse, error)
	DownloadFile(ctx context.Context, user *entity.User, fileId string, source entity.FileSource, siteId string) ([]byte, error)
}

type microsoftService struct {
	uowFactory  unitofwork.RepositoryFactory
	graphClient graph.IGraphClient
	authService IAuthService
	emailDomain string
	stateSecret string
	log         logger.ILogger
}

func NewMicrosoftService(
	uowFactory unitofwork.RepositoryFactory,
	graphClient graph.IGraphClient,
	authService IAuthService,
	emailDomain string,
	stateSecret string,
	log logger.ILogger,
) IMicrosoftService {
	return &microsoftService{
		uowFactory:  uowFactory,
		graphClient: graphClient,
		authService: authService,
		emailDomain: emailDomain,
		stateSecret: stateSecret,
		log:         log,
	}
}

func (s *microsoftService) ConfigStatus() dto.MicrosoftConfigStatusResponse {
	if s.graphClient.Configured() {
		return dto.MicrosoftConfigStatusResponse{
			MicrosoftGraphEnabled: true,
			Message:               "Microsoft Graph API is configured and ready",
		}
	}
	return dto.MicrosoftConfigStatusResponse{
		MicrosoftGraphEnabled: false,
		Message:               "Microsoft Graph API requires Azure credentials to be configured",
	}
}

// signState issues a short-lived signed state parameter, making the callback
// stateless: no server-side state storage is needed to verify it.
func (s *microsoftService) signState() (string, error) {
	claims := jwt.MapClaims{
		"purpose": "oauth_state",
		"exp":     time.Now().Add(10 * time.Minute).Unix(),
		"iat":     time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.stateSecret))
}

func (s *microsoftService) verifyState(state string) bool {
	token, err := jwt.Parse(state, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.stateSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	return ok && claims["purpose"] == "oauth_state"
}

// BeginAuth returns the vendor authorization URL, or an error code when the
// tenant credentials are unset.
func (s *microsoftService) BeginAuth(ctx context.Context) (string, string, error) {
	if !s.graphClient.Configured() {
		return "", OAuthErrAzureNotConfigured, nil
	}

	state, err := s.signState()
	if err != nil {
		return "", "", err
	}
	return s.graphClient.AuthCodeURL(state), "", nil
}

func (s *microsoftService) HandleCallback(ctx context.Context, code, state, oauthError string) *CallbackResult {
	if oauthError != "" {
		return &CallbackResult{ErrorCode: OAuthErrCancelled}
	}
	if code == "" || !s.verifyState(state) {
		return &CallbackResult{ErrorCode: OAuthErrInvalidState}
	}

	token, err := s.graphClient.Exchange(ctx, code)
	if err != nil || token.AccessToken == "" {
		s.log.Warn("microsoft", "Code exchange failed", map[string]interface{}{"error": fmt.Sprint(err)})
		return &CallbackResult{ErrorCode: OAuthErrTokenFailed}
	}

	profile, err := s.graphClient.GetUserProfile(ctx, token.AccessToken)
	if err != nil {
		s.log.Warn("microsoft", "Profile fetch failed", map[string]interface{}{"error": err.Error()})
		return &CallbackResult{ErrorCode: OAuthErrAuthFailed}
	}

	// Domain policy runs before any account lookup.
	if !graph.IsCorporateEmail(profile.Email, s.emailDomain) {
		return &CallbackResult{ErrorCode: OAuthErrInvalidDomain}
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	user, err := uow.UserRepository().FindOne(ctx, specification.ByMicrosoftId{MicrosoftId: profile.Id})
	if err != nil {
		return &CallbackResult{ErrorCode: OAuthErrAuthFailed}
	}

	if user == nil {
		return s.handleUnknownIdentity(ctx, uow, profile)
	}

	if !user.IsApproved {
		return &CallbackResult{ErrorCode: OAuthErrNotApproved}
	}

	if err := uow.UserRepository().UpdateMicrosoftTokens(ctx, user.Id, token.AccessToken, token.RefreshToken); err != nil {
		s.log.Warn("microsoft", "Token persist failed", map[string]interface{}{"user_id": user.Id, "error": err.Error()})
	}
	if err := uow.UserRepository().UpdateLastLogin(ctx, user.Id, time.Now()); err != nil {
		s.log.Warn("microsoft", "Last login update failed", map[string]interface{}{"user_id": user.Id, "error": err.Error()})
	}

	sessionToken, err := s.authService.CreateSession(ctx, user.Id)
	if err != nil {
		return &CallbackResult{ErrorCode: OAuthErrAuthFailed}
	}

	return &CallbackResult{SessionToken: sessionToken}
}

// handleUnknownIdentity drives the approval state machine for identities with
// no linked account: pending and rejected requests short-circuit with their
// own codes, anything else creates exactly one pending request.
func (s *microsoftService) handleUnknownIdentity(ctx context.Context, uow unitofwork.UnitOfWork, profile *graph.MicrosoftUser) *CallbackResult {
	existing, err := uow.ApprovalRequestRepository().FindOne(ctx, specification.ByEmail{Email: profile.Email})
	if err != nil {
		return &CallbackResult{ErrorCode: OAuthErrAuthFailed}
	}
	if existing != nil {
		switch existing.Status {
		case entity.ApprovalStatusPending:
			return &CallbackResult{ErrorCode: OAuthErrApprovalPending}
		case entity.ApprovalStatusRejected:
			return &CallbackResult{ErrorCode: OAuthErrAccessRejected}
		}
	}

	reason := "Microsoft Graph authentication request"
	req := &entity.ApprovalRequest{
		Email:         profile.Email,
		FirstName:     profile.GivenName,
		LastName:      profile.Surname,
		MicrosoftId:   profile.Id,
		RequestReason: &reason,
		Status:        entity.ApprovalStatusPending,
	}
	if err := uow.ApprovalRequestRepository().Create(ctx, req); err != nil {
		return &CallbackResult{ErrorCode: OAuthErrAuthFailed}
	}

	return &CallbackResult{ErrorCode: OAuthErrApprovalRequired}
}

func (s *microsoftService) ListFiles(ctx context.Context, user *entity.User, source, query string) (*dto.MicrosoftFilesResponse, error) {
	if user.MicrosoftAccessToken == nil || *user.MicrosoftAccessToken == "" {
		return nil, ErrMicrosoftTokenMissing
	}
	accessToken := *user.MicrosoftAccessToken

	var files []graph.MicrosoftFileInfo
	var err error
	switch source {
	case string(entity.FileSourceOneDrive):
		files, err = s.graphClient.ListOneDriveFiles(ctx, accessToken, query)
	case string(entity.FileSourceSharePoint):
		files, err = s.graphClient.ListSharePointFiles(ctx, accessToken, query)
	default:
		var oneDrive, sharePoint []graph.MicrosoftFileInfo
		oneDrive, err = s.graphClient.ListOneDriveFiles(ctx, accessToken, query)
		if err == nil {
			sharePoint, err = s.graphClient.ListSharePointFiles(ctx, accessToken, query)
			files = append(oneDrive, sharePoint...)
		}
	}
	if err != nil {
		return nil, err
	}

	// Cache the listing: upsert keeps one row per (user, remote file).
	uow := s.uowFactory.NewUnitOfWork(ctx)
	for _, f := range files {
		metadata, _ := json.Marshal(map[string]interface{}{
			"size":         f.Size,
			"lastModified": f.LastModifiedDateTime,
			"downloadUrl":  f.DownloadUrl,
		})
		record := &entity.MicrosoftFile{
			UserId:          user.Id,
			MicrosoftFileId: f.Id,
			FileName:        f.Name,
			FilePath:        f.WebUrl,
			FileType:        f.MimeType,
			Source:          f.Source,
			Metadata:        metadata,
		}
		if err := uow.MicrosoftFileRepository().Upsert(ctx, record); err != nil {
			s.log.Warn("microsoft", "File cache upsert failed", map[string]interface{}{
				"file_id": f.Id,
				"error":   err.Error(),
			})
		}
	}

	return &dto.MicrosoftFilesResponse{Files: files}, nil
}

func (s *microsoftService) DownloadFile(ctx context.Context, user *entity.User, fileId string, source entity.FileSource, siteId string) ([]byte, error) {
	if user.MicrosoftAccessToken == nil || *user.MicrosoftAccessToken == "" {
		return nil, ErrMicrosoftTokenMissing
	}

	content, err := s.graphClient.DownloadFile(ctx, *user.MicrosoftAccessToken, fileId, source, siteId)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	cached, err := uow.MicrosoftFileRepository().FindAll(ctx, specification.OwnedBy{UserID: user.Id})
	if err == nil {
		for _, f := range cached {
			if f.MicrosoftFileId == fileId {
				if err := uow.MicrosoftFileRepository().TouchLastAccessed(ctx, f.Id, time.Now()); err != nil {
					s.log.Warn("microsoft", "Last accessed touch failed", map[string]interface{}{
						"file_id": f.Id,
						"error":   err.Error(),
					})
				}
				break
			}
		}
	}

	return content, nil
}
