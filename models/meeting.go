package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

const MeetingTable = "meetings"

// Meeting is one ingested webhook payload. session_id is the natural key:
// re-ingesting the same session replaces title and meeting_data in full.
type Meeting struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	SessionID   string         `gorm:"uniqueIndex;size:255;not null" json:"session_id"`
	Title       string         `gorm:"size:255" json:"title"`
	MeetingData datatypes.JSON `gorm:"not null" json:"meeting_data"`
	CreatedAt   time.Time      `json:"created_at"`
}

type Participant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// MeetingPayload is the typed view of the webhook body. Fields the sender
// adds beyond the known ones land in Extra; the raw body is still stored
// verbatim on the Meeting row.
type MeetingPayload struct {
	SessionID    string
	Title        string
	Trigger      string
	Participants []Participant
	Extra        map[string]any
}

func (p *MeetingPayload) UnmarshalJSON(b []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	take := func(key string, dst any) error {
		v, ok := raw[key]
		if !ok {
			return nil
		}
		delete(raw, key)
		return json.Unmarshal(v, dst)
	}
	if err := take("session_id", &p.SessionID); err != nil {
		return err
	}
	if err := take("title", &p.Title); err != nil {
		return err
	}
	if err := take("trigger", &p.Trigger); err != nil {
		return err
	}
	if err := take("participants", &p.Participants); err != nil {
		return err
	}
	if len(raw) > 0 {
		p.Extra = make(map[string]any, len(raw))
		for k, v := range raw {
			var val any
			if err := json.Unmarshal(v, &val); err != nil {
				return err
			}
			p.Extra[k] = val
		}
	}
	return nil
}
