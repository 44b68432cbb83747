package meta

import "testing"

func TestReadBuildInfoNeverReturnsEmptyVersion(t *testing.T) {
	info := ReadBuildInfo()
	if info.Version == "" {
		t.Fatalf("expected a non-empty Version, got %+v", info)
	}
}
