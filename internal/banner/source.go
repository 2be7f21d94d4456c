package banner

import (
	"context"
	"os"
	"sync"

	"github.com/pkg/errors"
)

// ErrNoPayload means the source holds no banner payload yet.
var ErrNoPayload = errors.New("no banner payload available")

// PayloadSource supplies raw banner payload bytes. Fetching is a collaborator
// concern: the service's contract starts once bytes are in hand.
type PayloadSource interface {
	Latest(ctx context.Context) ([]byte, error)
}

// WritablePayloadSource additionally persists payloads pushed through the
// admin API.
type WritablePayloadSource interface {
	PayloadSource
	Save(ctx context.Context, payload []byte, revision string) error
}

// InMemorySource is a simple in-memory implementation useful for tests and
// the demo binary.
type InMemorySource struct {
	mu       sync.RWMutex
	payload  []byte
	revision string
}

func NewInMemorySource(payload []byte) *InMemorySource {
	return &InMemorySource{payload: payload}
}

func (s *InMemorySource) Latest(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.payload == nil {
		return nil, ErrNoPayload
	}
	out := make([]byte, len(s.payload))
	copy(out, s.payload)
	return out, nil
}

func (s *InMemorySource) Save(ctx context.Context, payload []byte, revision string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.payload = make([]byte, len(payload))
	copy(s.payload, payload)
	s.revision = revision
	return nil
}

// Revision returns the revision recorded by the last Save.
func (s *InMemorySource) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// FileSource reads the payload from a JSON file on disk.
type FileSource struct {
	Path string
}

func NewFileSource(path string) FileSource {
	return FileSource{Path: path}
}

func (s FileSource) Latest(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, errors.Wrapf(ErrNoPayload, "%s: %v", s.Path, err)
	}
	return data, nil
}
