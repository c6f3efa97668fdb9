package shorturl

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

const ipLookupURL = "https://api.ipify.org?format=json"

// fallbackIP is used when the lookup service is unreachable; the login
// endpoint still accepts it.
const fallbackIP = "127.0.0.1"

// LookupIP asks the public IP service for the caller's address. It never
// fails: any error degrades to the loopback fallback, same as the original
// login flow.
func LookupIP(ctx context.Context) string {
	return lookupIP(ctx, ipLookupURL)
}

func lookupIP(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fallbackIP
	}

	client := &http.Client{Timeout: 10 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fallbackIP
	}
	defer resp.Body.Close()

	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil || payload.IP == "" {
		return fallbackIP
	}
	return payload.IP
}
