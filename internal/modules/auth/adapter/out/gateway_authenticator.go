package out

import (
	"context"

	"aiact/internal/gateway"
	"aiact/internal/modules/auth/domain"
	authout "aiact/internal/modules/auth/port/out"
)

type GatewayAuthenticator struct {
	client *gateway.Client
}

func NewGatewayAuthenticator(client *gateway.Client) authout.Authenticator {
	return &GatewayAuthenticator{client: client}
}

func (g *GatewayAuthenticator) Login(ctx context.Context, email, password string) (domain.TokenGrant, error) {
	resp, err := g.client.Login(ctx, email, password)
	if err != nil {
		return domain.TokenGrant{}, err
	}
	return domain.TokenGrant{AccessToken: resp.AccessToken, TokenType: resp.TokenType}, nil
}

func (g *GatewayAuthenticator) Register(ctx context.Context, email, password string) (domain.TokenGrant, error) {
	resp, err := g.client.Register(ctx, email, password)
	if err != nil {
		return domain.TokenGrant{}, err
	}
	return domain.TokenGrant{AccessToken: resp.AccessToken, TokenType: resp.TokenType}, nil
}
