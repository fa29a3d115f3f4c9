package oauth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var ErrMissingIDToken = errors.New("token response carries no id_token")

// Identity is what a verified Google ID token says about the user.
type Identity struct {
	Subject    string
	Email      string
	Name       string
	GivenName  string
	FamilyName string
	Picture    string
}

type GoogleProvider struct {
	cfg      *oauth2.Config
	validate func(ctx context.Context, token, audience string) (*idtoken.Payload, error)
}

func NewGoogleProvider(clientID, clientSecret, redirectURL string) *GoogleProvider {
	return &GoogleProvider{
		cfg: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			RedirectURL:  redirectURL,
			Scopes:       []string{"openid", "email", "profile"},
		},
		validate: idtoken.Validate,
	}
}

// AuthURL asks for offline access and always shows the consent screen.
func (p *GoogleProvider) AuthURL(state string) string {
	return p.cfg.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent"))
}

func (p *GoogleProvider) Exchange(ctx context.Context, code string) (*Identity, error) {
	token, err := p.cfg.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("token exchange failed: %w", err)
	}
	raw, _ := token.Extra("id_token").(string)
	if raw == "" {
		return nil, ErrMissingIDToken
	}

	payload, err := p.validate(ctx, raw, p.cfg.ClientID)
	if err != nil {
		return nil, fmt.Errorf("verify id token: %w", err)
	}
	id := identityFromClaims(payload.Subject, payload.Claims)
	if id.Email == "" {
		return nil, errors.New("id token carries no email")
	}
	return id, nil
}

func identityFromClaims(subject string, claims map[string]interface{}) *Identity {
	str := func(key string) string {
		s, _ := claims[key].(string)
		return s
	}
	return &Identity{
		Subject:    subject,
		Email:      str("email"),
		Name:       str("name"),
		GivenName:  str("given_name"),
		FamilyName: str("family_name"),
		Picture:    str("picture"),
	}
}
