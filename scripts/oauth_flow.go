package main

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"golang.org/x/oauth2"
)

type registration struct {
	ClientID     string `json:"client_id"`
	ClientSecret string `json:"client_secret"`
}

// Walks a local server through register, authorize and token so a developer
// can get a bearer token for /mcp without an MCP client.
func main() {
	serverURL := flag.String("server", "http://localhost:4951", "MCP server URL")
	redirectURI := flag.String("redirect", "http://localhost:8976/callback", "Redirect URI to register")
	flag.Parse()

	base := strings.TrimRight(*serverURL, "/")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	client, err := register(ctx, base, *redirectURI)
	if err != nil {
		log.Fatal("Failed to register client:", err)
	}
	fmt.Printf("✓ Registered client %s\n", client.ClientID)

	conf := &oauth2.Config{
		ClientID:     client.ClientID,
		ClientSecret: client.ClientSecret,
		RedirectURL:  *redirectURI,
		Scopes:       []string{"fbb-mcp"},
		Endpoint: oauth2.Endpoint{
			AuthURL:   base + "/authorize",
			TokenURL:  base + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	verifier := oauth2.GenerateVerifier()
	state := oauth2.GenerateVerifier()

	fmt.Println("\nOpen this URL, enter the server password, then paste the URL you were redirected to:")
	fmt.Println(conf.AuthCodeURL(state, oauth2.S256ChallengeOption(verifier)))
	fmt.Print("\n> ")

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		log.Fatal("Failed to read redirect URL:", err)
	}
	callback, err := url.Parse(strings.TrimSpace(line))
	if err != nil {
		log.Fatal("Invalid redirect URL:", err)
	}
	if got := callback.Query().Get("state"); got != state {
		log.Fatalf("State mismatch: got %q", got)
	}
	if e := callback.Query().Get("error"); e != "" {
		log.Fatalf("Authorization failed: %s (%s)", e, callback.Query().Get("error_description"))
	}

	token, err := conf.Exchange(ctx, callback.Query().Get("code"), oauth2.VerifierOption(verifier))
	if err != nil {
		log.Fatal("Failed to exchange code:", err)
	}

	fmt.Println("\n✓ Access token issued")
	fmt.Printf("Token: %s\n", token.AccessToken)
	fmt.Printf("Expires: %s\n", token.Expiry.Format(time.RFC3339))
	fmt.Println("\nTry it:")
	fmt.Printf("curl -X POST %s/mcp \\\n", base)
	fmt.Printf("  -H 'Authorization: Bearer %s' \\\n", token.AccessToken)
	fmt.Printf("  -H 'Content-Type: application/json' \\\n")
	fmt.Printf("  -d '{\"jsonrpc\":\"2.0\",\"id\":1,\"method\":\"tools/list\"}'\n")
}

func register(ctx context.Context, base, redirectURI string) (*registration, error) {
	body, err := json.Marshal(map[string]any{
		"client_name":                "fbb-mcp dev script",
		"redirect_uris":              []string{redirectURI},
		"grant_types":                []string{"authorization_code"},
		"response_types":             []string{"code"},
		"token_endpoint_auth_method": "client_secret_post",
	})
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/register", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	var reg registration
	if err := json.NewDecoder(resp.Body).Decode(&reg); err != nil {
		return nil, err
	}
	return &reg, nil
}
