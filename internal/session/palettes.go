package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/CodePen-Alt/ColorPicker/internal/colormodel"
)

// Store is the durable string-keyed store backing the session. The sqlite
// KV repository satisfies it; tests use an in-memory map.
type Store interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}

// StoreKeyPalettes is the key the serialized palette list lives under.
const StoreKeyPalettes = "palettes"

var (
	// ErrEmptyName rejects palette saves whose name is blank after trimming.
	ErrEmptyName = errors.New("palette name is empty")
	// ErrImportParse rejects malformed import payloads; nothing is merged.
	ErrImportParse = errors.New("palette import payload is malformed")
)

// Palette is a named, timestamped collection of hex colors. Immutable once
// saved; the only mutations are whole-palette deletion and bulk import.
type Palette struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Colors  []string  `json:"colors"`
	Created time.Time `json:"created"`
}

// Palettes returns the saved palettes in insertion order. The slice is a
// copy; callers cannot mutate session state through it.
func (s *Session) Palettes() []Palette {
	out := make([]Palette, len(s.palettes))
	copy(out, s.palettes)
	return out
}

// LoadPalettes reads the palette list from the store. Call once at session
// start; an absent key means an empty collection.
func (s *Session) LoadPalettes(ctx context.Context) error {
	raw, ok, err := s.store.Get(ctx, StoreKeyPalettes)
	if err != nil {
		return fmt.Errorf("load palettes: %w", err)
	}
	if !ok || strings.TrimSpace(raw) == "" {
		s.palettes = nil
		return nil
	}
	var list []Palette
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return fmt.Errorf("load palettes: %w", err)
	}
	s.palettes = list
	return nil
}

// SavePalette appends a new palette and persists the collection. The name
// must be non-blank after trimming; colors must all be valid hex strings.
func (s *Session) SavePalette(ctx context.Context, name string, colors []string) (Palette, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Palette{}, ErrEmptyName
	}
	normalized := make([]string, len(colors))
	for i, c := range colors {
		rgb, err := colormodel.ParseHex(c)
		if err != nil {
			return Palette{}, err
		}
		normalized[i] = colormodel.Hex(rgb)
	}
	p := Palette{
		ID:      uuid.NewString(),
		Name:    name,
		Colors:  normalized,
		Created: s.now().UTC().Truncate(time.Second),
	}
	merged := append(s.Palettes(), p)
	if err := s.persistList(ctx, merged); err != nil {
		return Palette{}, err
	}
	s.palettes = merged
	return p, nil
}

// DeletePalette removes a palette by id and persists. Deleting an unknown
// id is a no-op and reports false.
func (s *Session) DeletePalette(ctx context.Context, id string) (bool, error) {
	for i, p := range s.palettes {
		if p.ID == id {
			remaining := append(s.Palettes()[:i], s.palettes[i+1:]...)
			if err := s.persistList(ctx, remaining); err != nil {
				return false, err
			}
			s.palettes = remaining
			return true, nil
		}
	}
	return false, nil
}

// ImportPalettes appends a JSON array of palette records wholesale.
// Malformed payloads fail with ErrImportParse and leave the existing
// collection untouched. Records missing an id, or whose id collides with
// an existing or earlier-imported palette, get a fresh one so load and
// delete addressing stays unambiguous. Returns the number imported.
func (s *Session) ImportPalettes(ctx context.Context, raw []byte) (int, error) {
	// json.Unmarshal decodes `null` into a nil slice without complaint, so
	// the array shape has to be checked before decoding.
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return 0, fmt.Errorf("%w: payload is not an array", ErrImportParse)
	}
	var incoming []Palette
	if err := json.Unmarshal(raw, &incoming); err != nil {
		return 0, fmt.Errorf("%w: %v", ErrImportParse, err)
	}
	seen := make(map[string]bool, len(s.palettes)+len(incoming))
	for _, p := range s.palettes {
		seen[p.ID] = true
	}
	for i := range incoming {
		if incoming[i].ID == "" || seen[incoming[i].ID] {
			incoming[i].ID = uuid.NewString()
		}
		seen[incoming[i].ID] = true
		if incoming[i].Created.IsZero() {
			incoming[i].Created = s.now().UTC().Truncate(time.Second)
		}
	}
	merged := append(s.Palettes(), incoming...)
	if err := s.persistList(ctx, merged); err != nil {
		return 0, err
	}
	s.palettes = merged
	return len(incoming), nil
}

// ExportPalettes serializes the full palette list as indented JSON.
func (s *Session) ExportPalettes() ([]byte, error) {
	list := s.palettes
	if list == nil {
		list = []Palette{}
	}
	return json.MarshalIndent(list, "", "  ")
}

// persistList writes the given list to the store before the session adopts
// it, so a write failure never leaves memory and disk disagreeing.
func (s *Session) persistList(ctx context.Context, list []Palette) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("persist palettes: %w", err)
	}
	if err := s.store.Set(ctx, StoreKeyPalettes, string(data)); err != nil {
		return fmt.Errorf("persist palettes: %w", err)
	}
	return nil
}
