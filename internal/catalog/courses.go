package catalog

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"catalog-sync/internal/domain"
)

// FindCourse asks the check endpoint whether a course with this name exists under
// the university. The endpoint is a POST but has no side effects.
// A success answer without an id yields nil, nil.
func (c *Client) FindCourse(ctx context.Context, name string, universityID domain.ID) (*domain.CourseRecord, error) {
	q := url.Values{}
	q.Set("name", name)
	q.Set("universityId", universityID.String())

	u, err := c.endpoint(courseCheckPath, q)
	if err != nil {
		return nil, err
	}

	var rec domain.CourseRecord
	if err := c.sendJSON(ctx, http.MethodPost, u, nil, &rec); err != nil {
		return nil, fmt.Errorf("catalog: check course %q: %w", name, err)
	}
	if rec.ID.IsZero() {
		return nil, nil
	}
	return &rec, nil
}

func (c *Client) CreateCourse(ctx context.Context, p domain.CoursePayload) error {
	u, err := c.endpoint(coursesPath, nil)
	if err != nil {
		return err
	}

	if err := c.send(ctx, http.MethodPost, u, p.Wire()); err != nil {
		return fmt.Errorf("catalog: create course: %w", err)
	}
	return nil
}

func (c *Client) UpdateCourse(ctx context.Context, id domain.ID, p domain.CoursePayload) error {
	u, err := c.endpoint(coursesPath+"/"+url.PathEscape(id.String()), nil)
	if err != nil {
		return err
	}

	if err := c.send(ctx, http.MethodPut, u, p.Wire()); err != nil {
		return fmt.Errorf("catalog: update course %s: %w", id, err)
	}
	return nil
}
