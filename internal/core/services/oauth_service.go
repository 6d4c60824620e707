package services

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"

	"github.com/heliowash/backoffice/internal/apperrors"
	portssvc "github.com/heliowash/backoffice/internal/core/ports/services"
)

// googleOAuthService exchanges authorization codes for verified Google
// identities.
type googleOAuthService struct {
	BaseService
	oauthConfig *oauth2.Config
}

// NewGoogleOAuthService creates a new Google OAuth service.
func NewGoogleOAuthService(clientID, clientSecret, redirectURL string) portssvc.GoogleOAuthSvcFacade {
	return &googleOAuthService{
		oauthConfig: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

// Ensure googleOAuthService implements the GoogleOAuthSvcFacade interface
var _ portssvc.GoogleOAuthSvcFacade = (*googleOAuthService)(nil)

// ExchangeCodeForIdentity exchanges an authorization code for a validated
// Google ID token and returns the identity claims the backend needs. The
// token signature and audience are verified before any claim is trusted.
func (s *googleOAuthService) ExchangeCodeForIdentity(ctx context.Context, code string) (*portssvc.GoogleIdentity, error) {
	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		s.LogError(ctx, err, "Google code exchange failed")
		return nil, apperrors.NewUnauthorizedError("invalid authorization code")
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok {
		return nil, apperrors.NewUnauthorizedError("token response carries no id_token")
	}

	payload, err := idtoken.Validate(ctx, rawIDToken, s.oauthConfig.ClientID)
	if err != nil {
		s.LogError(ctx, err, "Google id_token validation failed")
		return nil, apperrors.NewUnauthorizedError("invalid id token")
	}

	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	if payload.Subject == "" || email == "" {
		return nil, fmt.Errorf("%w: id token misses subject or email", apperrors.ErrValidation)
	}

	s.LogDebug(ctx, "Google identity validated", slog.String("subject", payload.Subject))
	return &portssvc.GoogleIdentity{
		Subject:       payload.Subject,
		Email:         email,
		Name:          name,
		EmailVerified: emailVerified,
	}, nil
}
