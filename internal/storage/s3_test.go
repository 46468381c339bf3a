package storage

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func newTestS3(t *testing.T, prefix string) *S3 {
	t.Helper()
	s, err := NewS3(S3Config{
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "minio",
		SecretKey: "minio123",
		Bucket:    "campus-match",
		Prefix:    prefix,
	})
	if err != nil {
		t.Fatalf("NewS3: %v", err)
	}
	return s
}

func TestS3_ObjectKey(t *testing.T) {
	t.Parallel()

	cases := []struct {
		prefix string
		key    string
		want   string
	}{
		{prefix: "profile-pics/", key: "me.png", want: "profile-pics/me.png"},
		{prefix: "", key: "me.png", want: "me.png"},
	}
	for _, c := range cases {
		s := newTestS3(t, c.prefix)
		if got := s.objectKey(c.key); got != c.want {
			t.Errorf("objectKey(%q) with prefix %q = %q; want %q", c.key, c.prefix, got, c.want)
		}
	}
}

func TestNewS3_StripsScheme(t *testing.T) {
	t.Parallel()

	s := newTestS3(t, "")
	if got := s.client.EndpointURL().Host; got != "127.0.0.1:9000" {
		t.Fatalf("endpoint host = %q", got)
	}
}

func TestS3_Save_RejectsEmptyName(t *testing.T) {
	t.Parallel()

	s := newTestS3(t, "profile-pics/")
	// nothing listens on the endpoint, so reaching the client would fail differently
	key, err := s.Save(context.Background(), "../..", strings.NewReader("x"), 1)
	if !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	if key != "" {
		t.Fatalf("expected empty key, got %q", key)
	}
}
