package models

import (
	"encoding/json"
	"time"
)

type pledgeJSON struct {
	OrganizationName string `json:"orgName"`
	Count            int    `json:"count"`
	Timestamp        int64  `json:"timestamp"`
}

// MarshalJSON хранит время обязательства в миллисекундах epoch, как в исходном формате записи
func (p Pledge) MarshalJSON() ([]byte, error) {
	return json.Marshal(pledgeJSON{
		OrganizationName: p.OrganizationName,
		Count:            p.Count,
		Timestamp:        p.PledgedAt.UnixMilli(),
	})
}

func (p *Pledge) UnmarshalJSON(data []byte) error {
	var raw pledgeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	p.OrganizationName = raw.OrganizationName
	p.Count = raw.Count
	p.PledgedAt = time.UnixMilli(raw.Timestamp).UTC()
	return nil
}
