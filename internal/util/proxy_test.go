package util

import (
	"net/http"
	"reflect"
	"testing"
)

func TestNewProxyFunc_ExplicitProxies(t *testing.T) {
	proxyFn := NewProxyFunc("http://proxy.local:3128", "http://secure-proxy.local:3128", "")

	httpReq, _ := http.NewRequest("GET", "http://www.segye.com/news/1", nil)
	u, err := proxyFn(httpReq)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("Expected http proxy, got %v", u)
	}

	httpsReq, _ := http.NewRequest("GET", "https://www.segye.com/news/1", nil)
	u, err = proxyFn(httpsReq)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if u == nil || u.Host != "secure-proxy.local:3128" {
		t.Errorf("Expected https proxy, got %v", u)
	}
}

func TestNewProxyFunc_HTTPProxyCoversHTTPS(t *testing.T) {
	proxyFn := NewProxyFunc("http://proxy.local:3128", "", "")

	httpsReq, _ := http.NewRequest("GET", "https://www.segye.com/news/1", nil)
	u, err := proxyFn(httpsReq)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if u == nil || u.Host != "proxy.local:3128" {
		t.Errorf("Expected fallback to http proxy, got %v", u)
	}
}

func TestNewProxyFunc_DefaultsToEnvironment(t *testing.T) {
	// ProxyFromEnvironment caches the environment on first use, so the
	// fallback is checked by identity rather than by probing env vars.
	proxyFn := NewProxyFunc("", "", "")

	got := reflect.ValueOf(proxyFn).Pointer()
	want := reflect.ValueOf(http.ProxyFromEnvironment).Pointer()
	if got != want {
		t.Error("Expected fallback to http.ProxyFromEnvironment")
	}
}
