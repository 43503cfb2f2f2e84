package univerdog

import (
	"context"
	"net/url"

	"github.com/ACHGAR2024/univerdog-client/internal/models"
)

// Professionals lists every registered service provider.
func (c *Client) Professionals(ctx context.Context) ([]models.Professional, error) {
	var pros []models.Professional
	if err := c.get(ctx, "/professionals", nil, &pros); err != nil {
		return nil, err
	}
	return pros, nil
}

// Specialities lists speciality records, optionally filtered by name
// (e.g. "Toiletteur canin", "Vétérinaire").
func (c *Client) Specialities(ctx context.Context, name string) ([]models.Speciality, error) {
	var query url.Values
	if name != "" {
		query = url.Values{"name_speciality": {name}}
	}

	var specs []models.Speciality
	if err := c.get(ctx, "/speciality", query, &specs); err != nil {
		return nil, err
	}
	return specs, nil
}

// ProfessionalsWithSpeciality joins the professional list against the
// speciality records and keeps only providers of the named trade. The
// API has no server-side filter for this, so the join happens here.
func (c *Client) ProfessionalsWithSpeciality(ctx context.Context, name string) ([]models.Professional, error) {
	pros, err := c.Professionals(ctx)
	if err != nil {
		return nil, err
	}
	specs, err := c.Specialities(ctx, name)
	if err != nil {
		return nil, err
	}

	matching := make(map[int64]bool, len(specs))
	for _, s := range specs {
		if s.Name == name {
			matching[s.ProfessionalID] = true
		}
	}

	out := make([]models.Professional, 0, len(pros))
	for _, p := range pros {
		if matching[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}
