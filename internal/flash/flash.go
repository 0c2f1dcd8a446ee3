// Package flash carries a one-time notification across a redirect in a signed cookie.
package flash

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/gin-gonic/gin"
)

const cookieName = "flash"

type Level string

const (
	Success Level = "success"
	Error   Level = "error"
)

// Message is a notification shown once on the next rendered page.
type Message struct {
	Level Level  `json:"level"`
	Text  string `json:"text"`
}

// Flasher signs and verifies flash cookies with a shared secret.
type Flasher struct {
	secret []byte
}

func New(secret string) *Flasher {
	return &Flasher{secret: []byte(secret)}
}

// Set stores the message for the next request of the same client.
func (f *Flasher) Set(c *gin.Context, level Level, text string) error {
	data, err := json.Marshal(Message{Level: level, Text: text})
	if err != nil {
		return err
	}
	encoded := base64.URLEncoding.EncodeToString(data)
	c.SetCookie(cookieName, f.sign(encoded)+"."+encoded, 0, "/", "", false, true)
	return nil
}

// Pop returns the pending message and removes it from the client. It returns nil if there is no
// message or if the cookie was not signed with our secret.
func (f *Flasher) Pop(c *gin.Context) *Message {
	cookie, err := c.Cookie(cookieName)
	if err != nil {
		return nil
	}
	c.SetCookie(cookieName, "", -1, "/", "", false, true)

	signature, encoded, found := strings.Cut(cookie, ".")
	if !found || !hmac.Equal([]byte(signature), []byte(f.sign(encoded))) {
		return nil
	}
	data, err := base64.URLEncoding.DecodeString(encoded)
	if err != nil {
		return nil
	}
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return nil
	}
	return &message
}

func (f *Flasher) sign(data string) string {
	h := hmac.New(sha256.New, f.secret)
	h.Write([]byte(data))
	return base64.URLEncoding.EncodeToString(h.Sum(nil))
}
