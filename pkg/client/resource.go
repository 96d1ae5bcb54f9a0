package client

import (
	"net/url"
	"strconv"
)

// ResourceClient talks to one /api/v1/<resource> collection of the CMS API.
type ResourceClient struct {
	httpClient *HttpClient
	basePath   string
}

func NewResourceClient(baseURL, resource string) *ResourceClient {
	return &ResourceClient{
		httpClient: NewHttpClient(baseURL),
		basePath:   "/api/v1/" + resource,
	}
}

func (c *ResourceClient) HTTP() *HttpClient {
	return c.httpClient
}

func (c *ResourceClient) Create(body any) (*Response, error) {
	return c.httpClient.POST(c.basePath, body)
}

// List sends GET with the given filters; page and pageSize are only set when
// positive.
func (c *ResourceClient) List(page, pageSize int, filters url.Values) (*Response, error) {
	q := url.Values{}
	for k, v := range filters {
		q[k] = v
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		q.Set("pageSize", strconv.Itoa(pageSize))
	}

	path := c.basePath
	if encoded := q.Encode(); encoded != "" {
		path += "?" + encoded
	}
	return c.httpClient.GET(path)
}

func (c *ResourceClient) GetByID(id string) (*Response, error) {
	return c.httpClient.GET(c.itemPath(id))
}

func (c *ResourceClient) Update(id string, body any) (*Response, error) {
	return c.httpClient.PUT(c.itemPath(id), body)
}

func (c *ResourceClient) Patch(id string, body any) (*Response, error) {
	return c.httpClient.PATCH(c.itemPath(id), body)
}

func (c *ResourceClient) Delete(id string) (*Response, error) {
	return c.httpClient.DELETE(c.itemPath(id))
}

func (c *ResourceClient) HardDelete(id string) (*Response, error) {
	return c.httpClient.DELETE(c.itemPath(id) + "?hard=true")
}

func (c *ResourceClient) itemPath(id string) string {
	return c.basePath + "/" + url.PathEscape(id)
}
