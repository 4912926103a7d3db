package restclient

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

type StorageClient struct {
	restClient
}

func NewStorageClient(baseUrl string) *StorageClient {
	return &StorageClient{newRestClient(baseUrl)}
}

func (c *StorageClient) CreateFolder(ctx context.Context, parentRef string, name string) (string, error) {
	body := map[string]string{"parentRef": parentRef, "name": name}

	var out refResponse
	if err := c.doJson(ctx, http.MethodPost, "/folders", body, &out); err != nil {
		return "", err
	}

	return out.Ref, nil
}

func (c *StorageClient) CopyFile(ctx context.Context, srcRef string, destFolder string, name string) (string, error) {
	path := fmt.Sprintf("/files/%s/copy", url.PathEscape(srcRef))
	body := map[string]string{"destFolder": destFolder, "name": name}

	var out refResponse
	if err := c.doJson(ctx, http.MethodPost, path, body, &out); err != nil {
		return "", err
	}

	return out.Ref, nil
}

func (c *StorageClient) MoveFile(ctx context.Context, srcRef string, destFolder string) (string, error) {
	path := fmt.Sprintf("/files/%s/move", url.PathEscape(srcRef))
	body := map[string]string{"destFolder": destFolder}

	var out refResponse
	if err := c.doJson(ctx, http.MethodPost, path, body, &out); err != nil {
		return "", err
	}

	return out.Ref, nil
}

func (c *StorageClient) CreateBlankDoc(ctx context.Context, folderRef string, name string) (string, error) {
	body := map[string]string{"folderRef": folderRef, "name": name}

	var out refResponse
	if err := c.doJson(ctx, http.MethodPost, "/docs", body, &out); err != nil {
		return "", err
	}

	return out.Ref, nil
}
