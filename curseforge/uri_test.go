package curseforge

import (
	"errors"
	"testing"
)

func TestParseModpackURI(t *testing.T) {
	tests := []struct {
		uri       string
		projectID string
		fileID    string
	}{
		{"curseforge://install?addonId=123&fileId=456", "123", "456"},
		{"curseforge://install?fileId=456&addonId=123", "123", "456"},
		{"curseforge://install?addonId=285109&fileId=3620451&other=1", "285109", "3620451"},
	}
	for _, tt := range tests {
		ref, err := ParseModpackURI(tt.uri, "target")
		if err != nil {
			t.Errorf("%s: unexpected error %v", tt.uri, err)
			continue
		}
		if ref.ProjectID != tt.projectID || ref.FileID != tt.fileID {
			t.Errorf("%s: expected %s/%s, found %s/%s", tt.uri, tt.projectID, tt.fileID, ref.ProjectID, ref.FileID)
		}
		if ref.TargetDir != "target" {
			t.Errorf("%s: expected target dir to be kept, found %s", tt.uri, ref.TargetDir)
		}
	}
}

func TestParseModpackURIInvalid(t *testing.T) {
	tests := []string{
		"",
		"https://install?addonId=1&fileId=2",
		"curseforge://open?addonId=1&fileId=2",
		"curseforge://install?fileId=2",
		"curseforge://install?addonId=1",
		"curseforge://install?addonId=&fileId=2",
		"curseforge://install",
		"curseforge://%zz",
	}
	for _, uri := range tests {
		_, err := ParseModpackURI(uri, "target")
		if !errors.Is(err, ErrInvalidModpackURI) {
			t.Errorf("%q: expected ErrInvalidModpackURI, found %v", uri, err)
		}
	}
}
