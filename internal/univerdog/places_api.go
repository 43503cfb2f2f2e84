package univerdog

import (
	"context"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

// Places lists points of interest for the local-services map. The API
// wraps this collection in an envelope, unlike its other list endpoints.
func (c *Client) Places(ctx context.Context) ([]models.Place, error) {
	var resp struct {
		Places []models.Place `json:"places"`
	}
	if err := c.get(ctx, "/places", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Places, nil
}
