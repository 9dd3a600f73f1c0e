package models

import "encoding/json"

// jsonUnmarshal is aliased so model files avoid repeating the import dance
// in custom unmarshalers.
var jsonUnmarshal = json.Unmarshal

// Testimonial is a short attributed message embedded in a Person's
// testimonial list. Entries are append-ordered and carry no identifier of
// their own; the list itself is the unit of addressing.
type Testimonial struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Message      string `json:"message"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	CreatedAt    string `json:"createdAt,omitempty"`
}

// UnmarshalJSON normalizes the field spellings that drifted across older
// clients ("relationShip" for relationship, "photo" for photoUrl, "author"
// for name). Only the canonical shape leaves this boundary.
func (t *Testimonial) UnmarshalJSON(b []byte) error {
	var raw struct {
		Name            string `json:"name"`
		Author          string `json:"author"`
		Relationship    string `json:"relationship"`
		RelationShipOld string `json:"relationShip"`
		Message         string `json:"message"`
		PhotoURL        string `json:"photoUrl"`
		PhotoOld        string `json:"photo"`
		CreatedAt       string `json:"createdAt"`
	}
	if err := jsonUnmarshal(b, &raw); err != nil {
		return err
	}

	t.Name = firstNonEmpty(raw.Name, raw.Author)
	t.Relationship = firstNonEmpty(raw.Relationship, raw.RelationShipOld)
	t.Message = raw.Message
	t.PhotoURL = firstNonEmpty(raw.PhotoURL, raw.PhotoOld)
	t.CreatedAt = raw.CreatedAt
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
