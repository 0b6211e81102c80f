package storage

import (
	"fmt"
	"path/filepath"
	"time"

	"topclass/config"

	"github.com/go-resty/resty/v2"
)

// Client uploads objects to the external object store over its REST API
// and derives public URLs for them.
type Client struct {
	http    *resty.Client
	baseURL string
	bucket  string
}

// Images is the global storage client for course images
var Images *Client

// InitStorage wires the global client from configuration
func InitStorage() {
	Images = NewClient(config.AppConfig.StorageURL, config.AppConfig.StorageKey, config.AppConfig.StorageBucket)
}

func NewClient(baseURL, serviceKey, bucket string) *Client {
	return &Client{
		http:    resty.New().SetBaseURL(baseURL).SetAuthToken(serviceKey).SetTimeout(30 * time.Second),
		baseURL: baseURL,
		bucket:  bucket,
	}
}

// Upload stores an object under name and returns its public URL.
func (c *Client) Upload(name, contentType string, data []byte) (string, error) {
	resp, err := c.http.R().
		SetHeader("Content-Type", contentType).
		SetHeader("Cache-Control", "max-age=3600").
		SetBody(data).
		Post("/storage/v1/object/" + c.bucket + "/" + name)
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", fmt.Errorf("storage upload failed: %s", resp.Status())
	}

	return c.PublicURL(name), nil
}

// PublicURL returns the unauthenticated download URL for an object.
func (c *Client) PublicURL(name string) string {
	return c.baseURL + "/storage/v1/object/public/" + c.bucket + "/" + name
}

// ObjectName derives a collision-resistant object name for an uploaded
// image: {slot}_{timestamp}{ext}, keeping the original file extension.
func ObjectName(slot, originalFilename string) string {
	ext := filepath.Ext(originalFilename)
	return fmt.Sprintf("%s_%d%s", slot, time.Now().UnixMilli(), ext)
}
