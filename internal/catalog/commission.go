package catalog

import (
	"context"
	"fmt"
	"net/http"

	"catalog-sync/internal/domain"
)

// JoinCommission links a university to a company. The API answers with the
// existing link when one is already present.
func (c *Client) JoinCommission(ctx context.Context, universityID domain.ID, companyID string) (*domain.CommissionLink, error) {
	u, err := c.endpoint(commissionPath, nil)
	if err != nil {
		return nil, err
	}

	payload := map[string]any{
		"universityId": universityID,
		"companyId":    companyID,
	}

	var link domain.CommissionLink
	if err := c.sendJSON(ctx, http.MethodPost, u, payload, &link); err != nil {
		return nil, fmt.Errorf("catalog: join commission: %w", err)
	}
	return &link, nil
}
