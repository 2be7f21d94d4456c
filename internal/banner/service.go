package banner

import (
	"sync"
	"unicode/utf8"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	// ErrDecode means neither accepted payload shape could be decoded.
	ErrDecode = errors.New("banner payload is not decodable")
	// ErrInvalidInput means the payload text was not valid UTF-8.
	ErrInvalidInput = errors.New("banner payload is not valid UTF-8")
)

// Service holds the current banner collection. Loads replace the collection
// wholesale; a failed load leaves the previous collection untouched. One
// logical writer performs loads while any number of readers query.
type Service struct {
	mu    sync.RWMutex
	items []Item
}

func NewService() *Service {
	return &Service{}
}

// All returns the current collection in payload order.
func (s *Service) All() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

// ByStyle returns items with the given display style, relative order preserved.
func (s *Service) ByStyle(style DisplayStyle) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, 0)
	for _, it := range s.items {
		if it.DisplayStyle == style {
			out = append(out, it)
		}
	}
	return out
}

// Get returns the first item with the given id. A miss is a normal outcome,
// not an error.
func (s *Service) Get(id string) (Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Count returns the number of items currently loaded.
func (s *Service) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// LoadJSON decodes a payload as a bare DTO array, falling back to the wrapped
// { "banners": [...] } shape. On success the whole collection is replaced in
// payload order; duplicate ids are legal and retained as-is.
func (s *Service) LoadJSON(data []byte) error {
	dtos, err := decodePayload(data)
	if err != nil {
		return err
	}

	items := make([]Item, 0, len(dtos))
	for _, dto := range dtos {
		items = append(items, MapToDomain(dto))
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	return nil
}

// LoadJSONString guards against invalid text before delegating to LoadJSON.
func (s *Service) LoadJSONString(text string) error {
	if !utf8.ValidString(text) {
		return errors.Wrap(ErrInvalidInput, "load from string")
	}
	return s.LoadJSON([]byte(text))
}

func decodePayload(data []byte) ([]BannerDTO, error) {
	var dtos []BannerDTO
	arrErr := json.Unmarshal(data, &dtos)
	if arrErr == nil {
		return dtos, nil
	}

	var resp BannerResponse
	wrapErr := json.Unmarshal(data, &resp)
	if wrapErr == nil && resp.Banners != nil {
		return resp.Banners, nil
	}
	if wrapErr == nil {
		wrapErr = errors.New("missing banners key")
	}
	return nil, errors.Wrapf(ErrDecode, "array shape: %v; wrapped shape: %v", arrErr, wrapErr)
}
