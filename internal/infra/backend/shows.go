package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"theater-console/internal/domain/show"
	"theater-console/internal/infra"
	"theater-console/internal/pkg/wallclock"
	"theater-console/internal/usecase/shared"
)

type ShowClient struct {
	*Client
}

func NewShowClient(c *Client) *ShowClient {
	return &ShowClient{Client: c}
}

var (
	_ shared.ShowSource = (*ShowClient)(nil)
	_ shared.ShowWriter = (*ShowClient)(nil)
)

func (c *ShowClient) ListByScreen(ctx context.Context, theaterID string, screenNumber int, from, to time.Time) ([]*show.Show, error) {
	path := fmt.Sprintf("/shows/theater/%s/screen/%d", url.PathEscape(theaterID), screenNumber)
	query := url.Values{
		"startDate": {from.In(c.loc).Format(wallclock.LocalLayout)},
		"endDate":   {to.In(c.loc).Format(wallclock.LocalLayout)},
	}

	var rows []showDTO
	if err := c.do(ctx, http.MethodGet, path, query, nil, &rows); err != nil {
		return nil, err
	}

	shows := make([]*show.Show, 0, len(rows))
	for _, row := range rows {
		s, err := row.toDomain(c.loc)
		if err != nil {
			return nil, infra.WrapRepoErr(c.logger, infra.KindDecode, "invalid show "+row.ID, err)
		}
		shows = append(shows, s)
	}
	return shows, nil
}

func (c *ShowClient) FindByID(ctx context.Context, id string) (*show.Show, error) {
	var row showDTO
	if err := c.do(ctx, http.MethodGet, "/shows/"+url.PathEscape(id), nil, nil, &row); err != nil {
		return nil, err
	}
	return c.decodeShow(row)
}

func (c *ShowClient) Create(ctx context.Context, w shared.ShowWrite) (*show.Show, error) {
	var row showDTO
	if err := c.do(ctx, http.MethodPost, "/shows", nil, toPayload(w, c.loc), &row); err != nil {
		return nil, err
	}
	return c.decodeShow(row)
}

func (c *ShowClient) Update(ctx context.Context, id string, w shared.ShowWrite) (*show.Show, error) {
	var row showDTO
	if err := c.do(ctx, http.MethodPut, "/shows/"+url.PathEscape(id), nil, toPayload(w, c.loc), &row); err != nil {
		return nil, err
	}
	return c.decodeShow(row)
}

func (c *ShowClient) Delete(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/shows/"+url.PathEscape(id), nil, nil, nil)
}

func (c *ShowClient) decodeShow(row showDTO) (*show.Show, error) {
	s, err := row.toDomain(c.loc)
	if err != nil {
		return nil, infra.WrapRepoErr(c.logger, infra.KindDecode, "invalid show "+row.ID, err)
	}
	return s, nil
}
