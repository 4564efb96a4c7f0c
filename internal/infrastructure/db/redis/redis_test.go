package redis

import (
	"testing"
	"time"
)

func TestNewOptions(t *testing.T) {
	opts := newOptions(Config{Addr: "cache:6379", Username: "content", Password: "s3cret", DB: 2})

	if opts.Addr != "cache:6379" || opts.Username != "content" || opts.Password != "s3cret" || opts.DB != 2 {
		t.Fatalf("connection settings not applied: %+v", opts)
	}
	if opts.ClientName != clientName {
		t.Errorf("expected client name %q, got %q", clientName, opts.ClientName)
	}
	if opts.DialTimeout != defaultTimeout || opts.ReadTimeout != defaultTimeout || opts.WriteTimeout != defaultTimeout {
		t.Errorf("expected default timeouts, got %+v", opts)
	}
}

func TestNewOptions_CustomTimeout(t *testing.T) {
	opts := newOptions(Config{Addr: "cache:6379", Timeout: time.Second})
	if opts.DialTimeout != time.Second || opts.ReadTimeout != time.Second {
		t.Fatalf("expected 1s timeouts, got dial=%v read=%v", opts.DialTimeout, opts.ReadTimeout)
	}
}
