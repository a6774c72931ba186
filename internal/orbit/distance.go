package orbit

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// ErrNoDistances is returned for a distance document without a distances
// array.
var ErrNoDistances = errors.New("missing distances array")

// DistanceMap maps orbit slots to orbit radii. Slots without an entry use
// FallbackDistance.
type DistanceMap map[int]float32

// FallbackDistance is the orbit radius used for slots the map does not list.
func FallbackDistance(slot int) float32 {
	return 1 + float32(slot-8)*0.15
}

// Distance returns the orbit radius for slot.
func (m DistanceMap) Distance(slot int) float32 {
	if d, ok := m[slot]; ok {
		return d
	}
	return FallbackDistance(slot)
}

// distanceValue accepts 1.5, "1.5" and "1.5f".
type distanceValue float32

func (d *distanceValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSuffix(strings.TrimSpace(s), "f")
		v, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return fmt.Errorf("distance %q: %w", s, err)
		}
		*d = distanceValue(v)
		return nil
	}

	var v float32
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*d = distanceValue(v)
	return nil
}

type distanceDoc struct {
	Distances []struct {
		Index    *int           `json:"index"`
		Distance *distanceValue `json:"distance"`
	} `json:"distances"`
}

// ParseDistances decodes a {"distances":[{"index":n,"distance":d}]}
// document. Entries missing either key are skipped.
func ParseDistances(data []byte) (DistanceMap, error) {
	var doc distanceDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse distances: %w", err)
	}
	if doc.Distances == nil {
		return nil, ErrNoDistances
	}

	m := make(DistanceMap, len(doc.Distances))
	for _, e := range doc.Distances {
		if e.Index == nil || e.Distance == nil {
			continue
		}
		m[*e.Index] = float32(*e.Distance)
	}
	return m, nil
}

// LoadDistances reads a distance document from path.
func LoadDistances(path string) (DistanceMap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read distances: %w", err)
	}
	return ParseDistances(data)
}
