package backend

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"theater-console/internal/usecase/shared"
)

type MovieClient struct {
	*Client
}

func NewMovieClient(c *Client) *MovieClient {
	return &MovieClient{Client: c}
}

var _ shared.MovieCatalog = (*MovieClient)(nil)

func (c *MovieClient) FindByID(ctx context.Context, id string) (*shared.MovieSnapshot, error) {
	var row movieDTO
	if err := c.do(ctx, http.MethodGet, "/movies/"+url.PathEscape(id), nil, nil, &row); err != nil {
		return nil, err
	}
	if row.ID == "" {
		row.ID = id
	}
	return row.toSnapshot(), nil
}

type ScreenClient struct {
	*Client
}

func NewScreenClient(c *Client) *ScreenClient {
	return &ScreenClient{Client: c}
}

var _ shared.ScreenDirectory = (*ScreenClient)(nil)

func (c *ScreenClient) Find(ctx context.Context, theaterID string, screenNumber int) (*shared.ScreenSnapshot, error) {
	path := "/theaters/" + url.PathEscape(theaterID) + "/screens/" + strconv.Itoa(screenNumber)
	var row screenDTO
	if err := c.do(ctx, http.MethodGet, path, nil, nil, &row); err != nil {
		return nil, err
	}
	if row.TheaterID == "" {
		row.TheaterID = theaterID
		row.ScreenNumber = screenNumber
	}
	return row.toSnapshot(), nil
}
