package session

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// ErrNoSession is returned when no session exists for the given ID.
var ErrNoSession = errors.New("session not found")

// Data holds the per-session state. The admin flag is the only thing the
// application tracks server-side.
type Data struct {
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// Store keeps encrypted session payloads in Redis, keyed by session ID.
type Store struct {
	encryptionKey []byte
}

var (
	setSessionValue    = set
	getSessionValue    = get
	delSessionValue    = del
	marshalSessionJSON = json.Marshal
)

// NewStore creates a session store. The 32-byte AES key is derived from the
// configured secret, so any non-empty SECRET_KEY works.
func NewStore(secret string) (*Store, error) {
	if secret == "" {
		return nil, errors.New("session secret must not be empty")
	}
	key := sha256.Sum256([]byte(secret))
	return &Store{encryptionKey: key[:]}, nil
}

// NewSessionID generates a fresh opaque session identifier
func NewSessionID() string {
	return uuid.New().String()
}

// Create stores encrypted session data under the given session ID
func (s *Store) Create(ctx context.Context, sessionID string, data *Data, expiration time.Duration) error {
	jsonData, err := marshalSessionJSON(data)
	if err != nil {
		return err
	}

	encrypted, err := s.encrypt(jsonData)
	if err != nil {
		return err
	}

	return setSessionValue(ctx, "session:"+sessionID, encrypted, expiration)
}

// Get retrieves and decrypts session data. A missing or expired session
// yields ErrNoSession.
func (s *Store) Get(ctx context.Context, sessionID string) (*Data, error) {
	encrypted, err := getSessionValue(ctx, "session:"+sessionID)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrNoSession
		}
		return nil, err
	}

	decrypted, err := s.decrypt(encrypted)
	if err != nil {
		return nil, err
	}

	var data Data
	if err := json.Unmarshal(decrypted, &data); err != nil {
		return nil, err
	}

	return &data, nil
}

// Delete removes a session. Deleting an absent session is a no-op.
func (s *Store) Delete(ctx context.Context, sessionID string) error {
	return delSessionValue(ctx, "session:"+sessionID)
}

func (s *Store) encrypt(plaintext []byte) (string, error) {
	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return "", err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, plaintext, nil)
	return hex.EncodeToString(ciphertext), nil
}

func (s *Store) decrypt(ciphertextHex string) ([]byte, error) {
	ciphertext, err := hex.DecodeString(ciphertextHex)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(s.encryptionKey)
	if err != nil {
		return nil, err
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	if len(ciphertext) < gcm.NonceSize() {
		return nil, errors.New("ciphertext too short")
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
