package univerdog

import (
	"context"
	"fmt"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

// CurrentUser fetches the account behind the bearer token.
func (c *Client) CurrentUser(ctx context.Context) (models.User, error) {
	var user models.User
	if err := c.get(ctx, "/user", nil, &user); err != nil {
		return models.User{}, err
	}
	return user, nil
}

// UpdateUser rewrites the account profile.
func (c *Client) UpdateUser(ctx context.Context, user models.User) error {
	return c.put(ctx, fmt.Sprintf("/update/%d", user.ID), user, nil)
}
