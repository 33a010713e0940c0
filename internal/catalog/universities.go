package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"catalog-sync/internal/domain"
)

// FindUniversityByName looks a university up by exact name. Any non-success status
// comes back as *httpx.HTTPError; callers treat every error as "not found".
// A success answer without an id (null or {}) yields nil, nil.
func (c *Client) FindUniversityByName(ctx context.Context, name string) (*domain.UniversityRecord, error) {
	u, err := c.endpoint(universityByNamePath+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}

	var rec domain.UniversityRecord
	if err := c.sendJSON(ctx, http.MethodGet, u, nil, &rec); err != nil {
		return nil, fmt.Errorf("catalog: find university %q: %w", name, err)
	}
	if rec.ID.IsZero() {
		return nil, nil
	}
	return &rec, nil
}

func (c *Client) CreateUniversity(ctx context.Context, p domain.UniversityPayload) (*domain.UniversityRecord, error) {
	u, err := c.endpoint(universitiesPath, nil)
	if err != nil {
		return nil, err
	}

	var rec domain.UniversityRecord
	if err := c.sendJSON(ctx, http.MethodPost, u, p.Wire(), &rec); err != nil {
		return nil, fmt.Errorf("catalog: create university %q: %w", p.Name, err)
	}
	return &rec, nil
}

func (c *Client) UpdateUniversity(ctx context.Context, id domain.ID, p domain.UniversityPayload) error {
	u, err := c.endpoint(universitiesPath+"/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return err
	}

	if err := c.send(ctx, http.MethodPut, u, p.Wire()); err != nil {
		return fmt.Errorf("catalog: update university %s: %w", id, err)
	}
	return nil
}
