package domain

// Settings is the singleton preferences record.
type Settings struct {
	Theme         string `json:"theme"`
	Currency      string `json:"currency"`
	Language      string `json:"language"`
	Notifications bool   `json:"notifications"`
	AutoSave      bool   `json:"autoSave"`
}

// SettingsPatch is a partial update for Settings.
type SettingsPatch struct {
	Theme         *string `json:"theme,omitempty"`
	Currency      *string `json:"currency,omitempty"`
	Language      *string `json:"language,omitempty"`
	Notifications *bool   `json:"notifications,omitempty"`
	AutoSave      *bool   `json:"autoSave,omitempty"`
}

// Apply merges the patch into s, patch fields take precedence.
func (p SettingsPatch) Apply(s *Settings) {
	if p.Theme != nil {
		s.Theme = *p.Theme
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Notifications != nil {
		s.Notifications = *p.Notifications
	}
	if p.AutoSave != nil {
		s.AutoSave = *p.AutoSave
	}
}
