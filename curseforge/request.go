package curseforge

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/packwiz/cfinstall/core"
)

type cfApiClient struct {
	httpClient *http.Client
	apiURL     string
}

func newApiClient(httpClient *http.Client, apiURL string) *cfApiClient {
	return &cfApiClient{
		httpClient: httpClient,
		apiURL:     strings.TrimSuffix(apiURL, "/"),
	}
}

func (c *cfApiClient) makeGet(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}

	req.Header.Set("User-Agent", core.UserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("invalid response status: %v", resp.Status)
	}
	return resp, nil
}

// modFileInfo is a subset of the deserialised JSON response from the Curse API for mod files
type modFileInfo struct {
	ID           uint32 `json:"id"`
	FileName     string `json:"fileName"`
	FriendlyName string `json:"displayName"`
	Length       uint64 `json:"fileLength"`
	// According to the CurseForge API T&Cs, this must not be saved or cached
	DownloadURL string `json:"downloadUrl"`
}

func (c *cfApiClient) getFileInfo(ctx context.Context, modID string, fileID string) (modFileInfo, error) {
	var infoRes modFileInfo

	resp, err := c.makeGet(ctx, c.apiURL+"/addon/"+modID+"/file/"+fileID)
	if err != nil {
		return modFileInfo{}, fmt.Errorf("failed to request file data for project ID %s, file ID %s: %w", modID, fileID, err)
	}
	defer resp.Body.Close()

	err = json.NewDecoder(resp.Body).Decode(&infoRes)
	if err != nil {
		return modFileInfo{}, fmt.Errorf("failed to parse file data for project ID %s, file ID %s: %w", modID, fileID, err)
	}

	return infoRes, nil
}

// getArchive downloads the whole file at url into memory
func (c *cfApiClient) getArchive(ctx context.Context, url string) ([]byte, error) {
	dlURL, err := core.ReencodeURL(url)
	if err != nil {
		return nil, err
	}

	resp, err := c.makeGet(ctx, dlURL)
	if err != nil {
		return nil, fmt.Errorf("failed to download modpack from %s: %w", dlURL, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to download modpack from %s: %w", dlURL, err)
	}
	return data, nil
}
