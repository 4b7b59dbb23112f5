package curseforge

import (
	"context"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"
)

const testAPIURL = "https://addons.test/api/v2"

func newMockedClient(t *testing.T) *http.Client {
	t.Helper()
	client := &http.Client{}
	httpmock.ActivateNonDefault(client)
	t.Cleanup(httpmock.DeactivateAndReset)
	return client
}

func registerFileInfo(projectID string, fileID string, displayName string, fileName string, downloadURL string) {
	httpmock.RegisterResponder("GET", testAPIURL+"/addon/"+projectID+"/file/"+fileID,
		httpmock.NewJsonResponderOrPanic(200, map[string]interface{}{
			"displayName": displayName,
			"fileName":    fileName,
			"downloadUrl": downloadURL,
		}))
}

func TestGetFileInfo(t *testing.T) {
	api := newApiClient(newMockedClient(t), testAPIURL+"/")
	httpmock.RegisterResponder("GET", testAPIURL+"/addon/1/file/2",
		httpmock.NewStringResponder(200, `{"id": 2, "displayName": "A", "fileName": "a.jar", "downloadUrl": "http://x/a.jar", "fileLength": 10}`))

	info, err := api.getFileInfo(context.Background(), "1", "2")
	if err != nil {
		t.Fatal(err)
	}
	if info.ID != 2 || info.FriendlyName != "A" || info.FileName != "a.jar" || info.DownloadURL != "http://x/a.jar" || info.Length != 10 {
		t.Errorf("unexpected file info %+v", info)
	}
}

func TestGetFileInfoBadStatus(t *testing.T) {
	api := newApiClient(newMockedClient(t), testAPIURL)
	httpmock.RegisterResponder("GET", testAPIURL+"/addon/1/file/2", httpmock.NewStringResponder(404, "not found"))

	_, err := api.getFileInfo(context.Background(), "1", "2")
	if err == nil {
		t.Fatal("expected an error for a 404 response")
	}
}

func TestGetFileInfoBadJSON(t *testing.T) {
	api := newApiClient(newMockedClient(t), testAPIURL)
	httpmock.RegisterResponder("GET", testAPIURL+"/addon/1/file/2", httpmock.NewStringResponder(200, "<html>"))

	_, err := api.getFileInfo(context.Background(), "1", "2")
	if err == nil {
		t.Fatal("expected an error for an invalid response body")
	}
}

func TestGetArchiveReencodesURL(t *testing.T) {
	api := newApiClient(newMockedClient(t), testAPIURL)
	httpmock.RegisterResponder("GET", "https://edge.test/files/My%20Pack%20%5B1.0%5D.zip",
		httpmock.NewBytesResponder(200, []byte("zipdata")))

	data, err := api.getArchive(context.Background(), "https://edge.test/files/My Pack [1.0].zip")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "zipdata" {
		t.Errorf("unexpected archive data %q", data)
	}
}
