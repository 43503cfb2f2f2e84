package univerdog

import (
	"context"
	"fmt"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

// Dogs lists the dogs belonging to one user.
func (c *Client) Dogs(ctx context.Context, userID int64) ([]models.Dog, error) {
	var dogs []models.Dog
	if err := c.get(ctx, fmt.Sprintf("/dogs_user/%d", userID), nil, &dogs); err != nil {
		return nil, err
	}
	return dogs, nil
}

// CreateDog registers a new dog profile.
func (c *Client) CreateDog(ctx context.Context, dog models.Dog) (models.Dog, error) {
	var created models.Dog
	if err := c.post(ctx, "/dogs", dog, &created); err != nil {
		return models.Dog{}, err
	}
	return created, nil
}

// UpdateDog rewrites an existing dog profile.
func (c *Client) UpdateDog(ctx context.Context, dog models.Dog) error {
	return c.put(ctx, fmt.Sprintf("/dogs/%d", dog.ID), dog, nil)
}

// DeleteDog removes a dog profile.
func (c *Client) DeleteDog(ctx context.Context, id int64) error {
	return c.delete(ctx, fmt.Sprintf("/dogs/%d", id))
}

// DogPhotos lists photo records for all dogs. The upload itself goes
// through the media endpoint outside this client's scope.
func (c *Client) DogPhotos(ctx context.Context) ([]models.DogPhoto, error) {
	var photos []models.DogPhoto
	if err := c.get(ctx, "/dogs-photos", nil, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}
