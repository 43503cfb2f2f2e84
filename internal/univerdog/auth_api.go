package univerdog

import (
	"context"
	"errors"
	"net/url"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

// ErrNoToken means the server reported success but handed back no
// access token; the caller must not treat the session as established.
var ErrNoToken = errors.New("no access token in response")

// Login exchanges credentials for a token pair. It does not touch the
// session; storing the token is the session manager's job.
func (c *Client) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}

	var pair models.TokenPair
	if err := c.post(ctx, "/login", body, &pair); err != nil {
		return models.TokenPair{}, err
	}
	if pair.AccessToken == "" {
		return models.TokenPair{}, ErrNoToken
	}
	return pair, nil
}

// Register creates an account with the "user" role. The API may log the
// new account straight in; when it does, the returned pair carries the
// access token, otherwise the pair is empty and the caller sends the
// user to the login flow.
func (c *Client) Register(ctx context.Context, name, email, password string) (models.TokenPair, error) {
	body := map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     "user",
	}

	var pair models.TokenPair
	if err := c.post(ctx, "/register", body, &pair); err != nil {
		return models.TokenPair{}, err
	}
	return pair, nil
}

// ForgotPassword asks the server to mail a reset link. The returned
// message is user-facing; 422 and 404 come back as *APIError for the
// screen layer to distinguish.
func (c *Client) ForgotPassword(ctx context.Context, email string) (string, error) {
	var resp struct {
		Message string `json:"message"`
	}
	if err := c.post(ctx, "/forgotpw/"+url.PathEscape(email), nil, &resp); err != nil {
		return "", err
	}
	if resp.Message == "" {
		resp.Message = "A password reset e-mail has been sent. It is valid for 60 minutes."
	}
	return resp.Message, nil
}
