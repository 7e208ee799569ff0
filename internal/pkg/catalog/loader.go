package catalog

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Vickyvkz7/SIH2025/internal/entity"
)

// Record is one college as stored in the data file.
type Record struct {
	ID          uint     `json:"id"`
	Name        string   `json:"name"`
	District    string   `json:"district"`
	Type        string   `json:"type"`
	Fields      string   `json:"fields"`
	Courses     []string `json:"courses,omitempty"`
	SportsQuota bool     `json:"sports_quota"`
}

// DefaultRecords is used when the data file does not exist.
var DefaultRecords = []Record{
	{ID: 1, Name: "Government College of Engineering", District: "Srinagar", Type: "Engineering", Fields: "Engineering/Tech"},
	{ID: 2, Name: "Government Medical College Srinagar", District: "Srinagar", Type: "Medical", Fields: "Medicine/Biology"},
	{ID: 3, Name: "Arts & Humanities College Jammu", District: "Jammu", Type: "Arts", Fields: "Arts/Design"},
}

// LoadFile reads the catalog at path. A missing file yields DefaultRecords
// and found=false.
func LoadFile(path string) (colleges []entity.College, found bool, err error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return ToEntities(DefaultRecords), false, nil
		}
		return nil, false, err
	}
	defer f.Close()

	colleges, err = Decode(f)
	if err != nil {
		return nil, true, fmt.Errorf("%s: %w", path, err)
	}
	return colleges, true, nil
}

// Decode parses a JSON array of records. Every record needs a non-zero
// unique id and a name.
func Decode(r io.Reader) ([]entity.College, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding colleges: %w", err)
	}

	seen := make(map[uint]struct{}, len(records))
	for i, rec := range records {
		if rec.ID == 0 {
			return nil, fmt.Errorf("college #%d: missing id", i)
		}
		if strings.TrimSpace(rec.Name) == "" {
			return nil, fmt.Errorf("college %d: missing name", rec.ID)
		}
		if _, dup := seen[rec.ID]; dup {
			return nil, fmt.Errorf("college %d: duplicate id", rec.ID)
		}
		seen[rec.ID] = struct{}{}
	}
	return ToEntities(records), nil
}

func ToEntities(records []Record) []entity.College {
	colleges := make([]entity.College, 0, len(records))
	for _, rec := range records {
		courses := "[]"
		if len(rec.Courses) > 0 {
			b, _ := json.Marshal(rec.Courses)
			courses = string(b)
		}
		colleges = append(colleges, entity.College{
			ID:          rec.ID,
			Name:        strings.TrimSpace(rec.Name),
			District:    strings.TrimSpace(rec.District),
			Type:        strings.TrimSpace(rec.Type),
			Fields:      strings.TrimSpace(rec.Fields),
			Courses:     courses,
			SportsQuota: rec.SportsQuota,
		})
	}
	return colleges
}
