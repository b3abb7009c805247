// Package main provides a CLI that tails live preview frames for a profile.
// Useful for debugging the editor-to-preview pipeline without a browser.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/websocket"
)

func main() {
	host := flag.String("host", "localhost:8375", "API server host")
	email := flag.String("email", "demo@example.com", "Account email to authenticate with")
	handle := flag.String("handle", "demo-creator", "Profile handle to watch")
	raw := flag.Bool("raw", false, "Print raw frames instead of a summary line")
	flag.Parse()

	token, err := login(*host, *email)
	if err != nil {
		log.Fatalf("❌ Login failed: %v", err)
	}

	ticket, err := getTicket(*host, token)
	if err != nil {
		log.Fatalf("❌ Ticket issuance failed: %v", err)
	}

	u := url.URL{
		Scheme:   "ws",
		Host:     *host,
		Path:     "/api/ws/preview/" + *handle,
		RawQuery: "ticket=" + ticket,
	}

	conn, resp, err := websocket.DefaultDialer.Dial(u.String(), nil)
	if err != nil {
		log.Fatalf("❌ Dial failed: %v", err)
	}
	if resp != nil && resp.Body != nil {
		defer func() { _ = resp.Body.Close() }()
	}
	defer func() { _ = conn.Close() }()

	log.Printf("👀 Watching /%s. Edit the profile in another window; frames appear here.", *handle)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	frames := make(chan []byte)
	go func() {
		defer close(frames)
		for {
			_, msg, err := conn.ReadMessage()
			if err != nil {
				return
			}
			frames <- msg
		}
	}()

	for {
		select {
		case <-interrupt:
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case msg, ok := <-frames:
			if !ok {
				log.Println("Connection closed by server")
				return
			}
			printFrame(msg, *raw)
		}
	}
}

func login(host, email string) (string, error) {
	loginURL := fmt.Sprintf("http://%s/api/auth/login", host)
	body, _ := json.Marshal(map[string]string{"email": email})

	resp, err := http.Post(loginURL, "application/json", bytes.NewBuffer(body))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("login failed with status %d", resp.StatusCode)
	}

	var result struct {
		Token string `json:"token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Token, nil
}

func getTicket(host, token string) (string, error) {
	ticketURL := fmt.Sprintf("http://%s/api/ws/ticket", host)
	req, _ := http.NewRequest("POST", ticketURL, nil)
	req.Header.Set("Authorization", "Bearer "+token)

	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ticket issuance failed with status %d", resp.StatusCode)
	}

	var result struct {
		Ticket string `json:"ticket"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Ticket, nil
}

func printFrame(msg []byte, raw bool) {
	if raw {
		fmt.Println(string(msg))
		return
	}

	var frame struct {
		Name  string `json:"name"`
		Theme struct {
			Key string `json:"key"`
		} `json:"theme"`
		Blocks []struct {
			Type  string `json:"type"`
			Label string `json:"label"`
		} `json:"blocks"`
	}
	if err := json.Unmarshal(msg, &frame); err != nil {
		log.Printf("frame (%d bytes, unparsed): %s", len(msg), string(msg))
		return
	}

	log.Printf("frame: name=%q theme=%s blocks=%d", frame.Name, frame.Theme.Key, len(frame.Blocks))
	for i, b := range frame.Blocks {
		log.Printf("  [%d] %s %q", i, b.Type, b.Label)
	}
}
